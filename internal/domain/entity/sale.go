package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale registra una venta sobre un lote. ProfitLoss se calcula una sola vez al
// momento de la venta con el costo del lote en ese instante (snapshot del costo
// base) y no se recalcula nunca, aunque el costo del lote cambie después.
type Sale struct {
	ID            string
	StockID       string
	CustomerName  string
	Quantity      decimal.Decimal
	SalePrice     decimal.Decimal
	TotalAmount   decimal.Decimal // cantidad * precio de venta
	ProfitLoss    decimal.Decimal // (precio de venta - costo del lote) * cantidad
	SaleDate      time.Time
	InvoiceNumber string
	PaymentMethod string
	Notes         string
	CreatedBy     string
	CreatedAt     time.Time
}

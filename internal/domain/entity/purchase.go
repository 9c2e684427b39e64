package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase registra una compra: siempre crea un lote nuevo (las compras no se
// mezclan con lotes existentes).
type Purchase struct {
	ID            string
	StockID       string
	SupplierID    string // opcional
	InvoiceNumber string
	PurchaseDate  time.Time
	TotalAmount   decimal.Decimal // cantidad * precio unitario
	CreatedBy     string
	CreatedAt     time.Time
}

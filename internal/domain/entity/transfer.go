package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Transfer registra un traslado de cantidad entre bodegas. StockID es el lote
// origen; en destino se incrementa un lote existente de la misma variedad o se
// crea uno nuevo con el costo del origen y el batch con sufijo "-TR".
type Transfer struct {
	ID              string
	StockID         string
	FromWarehouseID string
	ToWarehouseID   string
	Quantity        decimal.Decimal
	Reason          string
	CreatedBy       string
	CreatedAt       time.Time
}

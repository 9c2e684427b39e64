package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direcciones de ajuste manual.
const (
	AdjustmentTypeIncrease = "increase"
	AdjustmentTypeDecrease = "decrease"
)

// Adjustment registra una corrección manual de cantidad sobre un lote, con la
// cantidad anterior y la resultante para auditoría. El motivo es obligatorio.
type Adjustment struct {
	ID               string
	StockID          string
	Type             string
	Quantity         decimal.Decimal // siempre positiva; el tipo indica la dirección
	PreviousQuantity decimal.Decimal
	NewQuantity      decimal.Decimal
	Reason           string
	CreatedBy        string
	CreatedAt        time.Time
}

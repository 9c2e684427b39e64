package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Tipos de transacción del libro de inventario.
const (
	TransactionTypePurchase   = "purchase"
	TransactionTypeSale       = "sale"
	TransactionTypeTransfer   = "transfer"
	TransactionTypeAdjustment = "adjustment"
)

// Transaction es una entrada inmutable del libro de inventario: un registro
// por cada evento que afecta la cantidad de un lote. Nunca se actualiza ni se
// borra; la suma de los deltas de un lote reconstruye su cantidad actual.
type Transaction struct {
	ID          string
	Type        string
	ReferenceID string          // id del registro de negocio que originó el evento
	StockID     string          // lote afectado
	Quantity    decimal.Decimal // delta con signo: positivo entrada, negativo salida
	Notes       string
	CreatedBy   string
	CreatedAt   time.Time
}

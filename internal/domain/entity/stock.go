package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Stock representa un lote de una variedad de arroz almacenado en una bodega.
// Cada compra crea su propio lote (batch); la cantidad nunca baja de cero y
// un lote que llega a cero se conserva como registro histórico.
type Stock struct {
	ID                string
	WarehouseID       string
	VarietyID         string
	Quantity          decimal.Decimal // kilogramos, siempre >= 0
	UnitPrice         decimal.Decimal // costo unitario del lote
	BatchNumber       string
	ExpiryDate        *time.Time
	MinimumStockLevel decimal.Decimal
	Notes             string
	CreatedBy         string
	CreatedAt         time.Time
	LastUpdated       time.Time
}

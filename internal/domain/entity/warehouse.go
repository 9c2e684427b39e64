package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Warehouse representa una bodega donde se almacenan lotes (dato maestro,
// administrado por un módulo externo; el motor solo lo lee).
type Warehouse struct {
	ID          string
	Name        string
	Location    string
	Capacity    decimal.Decimal // kilogramos
	ManagerName string
	Status      string // active | inactive
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

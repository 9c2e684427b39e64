package entity

import "time"

// Supplier representa un proveedor (dato maestro de solo lectura, referenciado
// por las compras).
type Supplier struct {
	ID            string
	Name          string
	ContactPerson string
	Phone         string
	Email         string
	Address       string
	Status        string // active | inactive
	CreatedAt     time.Time
}

package entity

import "time"

// Variety representa una variedad de arroz (dato maestro de solo lectura).
type Variety struct {
	ID          string
	Name        string
	Type        string // ej. blanco, integral, jazmín
	Description string
	CreatedAt   time.Time
}

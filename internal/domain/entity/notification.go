package entity

import "time"

// Notification es un aviso generado por el sistema (stock bajo, vencimiento
// próximo). UserID nil significa aviso global.
type Notification struct {
	ID        string
	UserID    *string
	Title     string
	Message   string
	Type      string // info, warning, alert, success
	IsRead    bool
	CreatedAt time.Time
}

package repository

import "github.com/tu-usuario/rice-stock-api/internal/domain/entity"

// NotificationRepository define el puerto de persistencia para avisos.
type NotificationRepository interface {
	Create(notification *entity.Notification) error
	ListUnread(limit int) ([]*entity.Notification, error)
}

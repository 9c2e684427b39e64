package repository

import "github.com/tu-usuario/rice-stock-api/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia para compras.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	ListRecent(limit int) ([]*entity.Purchase, error)
}

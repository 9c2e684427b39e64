package repository

import "github.com/tu-usuario/rice-stock-api/internal/domain/entity"

// AdjustmentRepository define el puerto de persistencia para ajustes manuales.
type AdjustmentRepository interface {
	Create(adjustment *entity.Adjustment) error
	ListRecent(limit int) ([]*entity.Adjustment, error)
}

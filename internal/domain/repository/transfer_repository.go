package repository

import "github.com/tu-usuario/rice-stock-api/internal/domain/entity"

// TransferRepository define el puerto de persistencia para traslados.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	ListRecent(limit int) ([]*entity.Transfer, error)
}

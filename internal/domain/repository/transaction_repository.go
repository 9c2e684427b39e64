package repository

import (
	"time"

	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
)

// TransactionRepository define el puerto del libro de inventario. Solo permite
// agregar y consultar: las entradas son inmutables.
type TransactionRepository interface {
	Create(txn *entity.Transaction) error
	// List filtra por tipo, lote y rango de fechas; valores cero no filtran.
	List(txType, stockID string, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error)
	// ListByStock devuelve todas las entradas de un lote en orden de creación.
	ListByStock(stockID string) ([]*entity.Transaction, error)
}

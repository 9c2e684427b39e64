package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
)

// StockRepository define el puerto de persistencia para los lotes de stock.
// Los métodos *ForUpdate bloquean la fila (SELECT FOR UPDATE) y solo tienen
// sentido dentro de una transacción.
type StockRepository interface {
	GetByID(id string) (*entity.Stock, error)
	// GetForUpdate obtiene el lote y bloquea la fila para update.
	GetForUpdate(id string) (*entity.Stock, error)
	// FindForUpdateByWarehouseVariety busca un lote de la variedad en la bodega
	// destino (para fusionar traslados) y lo bloquea. nil si no existe.
	FindForUpdateByWarehouseVariety(warehouseID, varietyID string) (*entity.Stock, error)
	Create(stock *entity.Stock) error
	// UpdateQuantity escribe la nueva cantidad y actualiza last_updated.
	UpdateQuantity(id string, quantity decimal.Decimal) error
	// List filtra por bodega y/o variedad; cadenas vacías no filtran.
	List(warehouseID, varietyID string, limit, offset int) ([]*entity.Stock, error)
	// SumQuantityByWarehouse devuelve los kilogramos ocupados en una bodega.
	SumQuantityByWarehouse(warehouseID string) (decimal.Decimal, error)
	// SumValueByWarehouse devuelve SUM(cantidad * costo unitario) de una bodega.
	SumValueByWarehouse(warehouseID string) (decimal.Decimal, error)
	// ListBelowMinimum lista lotes con cantidad bajo su nivel mínimo (> 0).
	ListBelowMinimum() ([]*entity.Stock, error)
	// ListExpiringBefore lista lotes con cantidad > 0 que vencen antes de la fecha.
	ListExpiringBefore(date time.Time) ([]*entity.Stock, error)
}

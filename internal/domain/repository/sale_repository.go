package repository

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para ventas.
type SaleRepository interface {
	Create(sale *entity.Sale) error
	ListRecent(limit int) ([]*entity.Sale, error)
	// SumProfitLoss suma el profit_loss almacenado de las ventas del rango.
	// Se apoya en el snapshot del costo base: no recalcula contra costos actuales.
	SumProfitLoss(from, to time.Time) (decimal.Decimal, error)
}

package ledger

import (
	"context"

	"github.com/tu-usuario/rice-stock-api/internal/domain/repository"
)

// Repos agrupa los repositorios atados a una misma transacción de BD.
type Repos struct {
	Stocks       repository.StockRepository
	Transactions repository.TransactionRepository
	Purchases    repository.PurchaseRepository
	Sales        repository.SaleRepository
	Transfers    repository.TransferRepository
	Adjustments  repository.AdjustmentRepository
}

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la atomicidad del motor: o se
// confirman todas las escrituras de una mutación o ninguna.
type TxRunner interface {
	Run(ctx context.Context, fn func(repos Repos) error) error
}

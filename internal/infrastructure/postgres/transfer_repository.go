package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/repository"
)

var _ repository.TransferRepository = (*TransferRepo)(nil)

// TransferRepo implementación de TransferRepository sobre PostgreSQL.
type TransferRepo struct {
	q Querier
}

// NewTransferRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransferRepository(q Querier) *TransferRepo {
	return &TransferRepo{q: q}
}

// Create persiste un traslado.
func (r *TransferRepo) Create(t *entity.Transfer) error {
	query := `
		INSERT INTO stock_transfers (id, stock_id, from_warehouse_id, to_warehouse_id, quantity, reason, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		t.ID, t.StockID, t.FromWarehouseID, t.ToWarehouseID, t.Quantity,
		t.Reason, t.CreatedBy, t.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create transfer: %w", err)
	}
	return nil
}

// ListRecent lista los traslados más recientes.
func (r *TransferRepo) ListRecent(limit int) ([]*entity.Transfer, error) {
	query := `
		SELECT id, stock_id, from_warehouse_id, to_warehouse_id, quantity, reason, created_by, created_at
		FROM stock_transfers ORDER BY created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list transfers: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transfer
	for rows.Next() {
		var t entity.Transfer
		var reason *string
		if err := rows.Scan(&t.ID, &t.StockID, &t.FromWarehouseID, &t.ToWarehouseID,
			&t.Quantity, &reason, &t.CreatedBy, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transfer: %w", err)
		}
		if reason != nil {
			t.Reason = *reason
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

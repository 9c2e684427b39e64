package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

const transactionColumns = `id, transaction_type, reference_id, stock_id, quantity, notes, created_by, created_at`

// TransactionRepo implementación del libro de inventario sobre PostgreSQL.
// Solo INSERT y SELECT: las entradas no se actualizan ni se borran jamás.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create agrega una entrada al libro.
func (r *TransactionRepo) Create(txn *entity.Transaction) error {
	if txn.ID == "" {
		txn.ID = uuid.New().String()
	}
	query := `
		INSERT INTO transactions (id, transaction_type, reference_id, stock_id, quantity, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.q.Exec(context.Background(), query,
		txn.ID, txn.Type, txn.ReferenceID, txn.StockID, txn.Quantity,
		txn.Notes, txn.CreatedBy, txn.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create transaction: %w", err)
	}
	return nil
}

func scanTransaction(row pgx.Row) (*entity.Transaction, error) {
	var t entity.Transaction
	var notes *string
	err := row.Scan(&t.ID, &t.Type, &t.ReferenceID, &t.StockID, &t.Quantity,
		&notes, &t.CreatedBy, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	if notes != nil {
		t.Notes = *notes
	}
	return &t, nil
}

// List lista entradas filtradas por tipo, lote y rango de fechas.
func (r *TransactionRepo) List(txType, stockID string, from, to *time.Time, limit, offset int) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []any{}
	pos := 1
	if txType != "" {
		query += fmt.Sprintf(" AND transaction_type = $%d", pos)
		args = append(args, txType)
		pos++
	}
	if stockID != "" {
		query += fmt.Sprintf(" AND stock_id = $%d", pos)
		args = append(args, stockID)
		pos++
	}
	if from != nil {
		query += fmt.Sprintf(" AND created_at >= $%d", pos)
		args = append(args, *from)
		pos++
	}
	if to != nil {
		query += fmt.Sprintf(" AND created_at <= $%d", pos)
		args = append(args, *to)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

// ListByStock devuelve todas las entradas de un lote en orden de creación.
func (r *TransactionRepo) ListByStock(stockID string) ([]*entity.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE stock_id = $1 ORDER BY created_at`
	rows, err := r.q.Query(context.Background(), query, stockID)
	if err != nil {
		return nil, fmt.Errorf("list transactions by stock: %w", err)
	}
	defer rows.Close()
	var list []*entity.Transaction
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, t)
	}
	return list, rows.Err()
}

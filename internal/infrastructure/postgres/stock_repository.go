package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/repository"
)

var _ repository.StockRepository = (*StockRepo)(nil)

const stockColumns = `id, warehouse_id, variety_id, quantity, unit_price, batch_number,
		expiry_date, minimum_stock_level, notes, created_by, created_at, last_updated`

// StockRepo implementación de StockRepository sobre PostgreSQL (usable con pool o tx).
type StockRepo struct {
	q Querier
}

// NewStockRepository construye el adaptador de lotes. Pasar pool o tx (Querier).
func NewStockRepository(q Querier) *StockRepo {
	return &StockRepo{q: q}
}

func scanStock(row pgx.Row) (*entity.Stock, error) {
	var s entity.Stock
	var expiry *time.Time
	var notes, createdBy *string
	err := row.Scan(
		&s.ID, &s.WarehouseID, &s.VarietyID, &s.Quantity, &s.UnitPrice, &s.BatchNumber,
		&expiry, &s.MinimumStockLevel, &notes, &createdBy, &s.CreatedAt, &s.LastUpdated,
	)
	if err != nil {
		return nil, err
	}
	s.ExpiryDate = expiry
	if notes != nil {
		s.Notes = *notes
	}
	if createdBy != nil {
		s.CreatedBy = *createdBy
	}
	return &s, nil
}

// GetByID obtiene un lote por id. nil si no existe.
func (r *StockRepo) GetByID(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock: %w", err)
	}
	return s, nil
}

// GetForUpdate obtiene el lote y bloquea la fila (SELECT FOR UPDATE) para
// serializar mutaciones concurrentes sobre el mismo lote.
func (r *StockRepo) GetForUpdate(id string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE id = $1 FOR UPDATE`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock for update: %w", err)
	}
	return s, nil
}

// FindForUpdateByWarehouseVariety busca (y bloquea) un lote de la variedad en
// la bodega indicada, para fusionar traslados. nil si no hay ninguno.
func (r *StockRepo) FindForUpdateByWarehouseVariety(warehouseID, varietyID string) (*entity.Stock, error) {
	query := `SELECT ` + stockColumns + `
		FROM stocks WHERE warehouse_id = $1 AND variety_id = $2
		ORDER BY created_at LIMIT 1
		FOR UPDATE`
	s, err := scanStock(r.q.QueryRow(context.Background(), query, warehouseID, varietyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("find stock by warehouse/variety: %w", err)
	}
	return s, nil
}

// Create inserta un lote nuevo.
func (r *StockRepo) Create(stock *entity.Stock) error {
	query := `
		INSERT INTO stocks (id, warehouse_id, variety_id, quantity, unit_price, batch_number,
			expiry_date, minimum_stock_level, notes, created_by, created_at, last_updated)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := r.q.Exec(context.Background(), query,
		stock.ID, stock.WarehouseID, stock.VarietyID, stock.Quantity, stock.UnitPrice,
		stock.BatchNumber, stock.ExpiryDate, stock.MinimumStockLevel, stock.Notes,
		stock.CreatedBy, stock.CreatedAt, stock.LastUpdated,
	)
	if err != nil {
		return fmt.Errorf("create stock: %w", err)
	}
	return nil
}

// UpdateQuantity escribe la nueva cantidad y refresca last_updated.
func (r *StockRepo) UpdateQuantity(id string, quantity decimal.Decimal) error {
	query := `UPDATE stocks SET quantity = $1, last_updated = now() WHERE id = $2`
	tag, err := r.q.Exec(context.Background(), query, quantity, id)
	if err != nil {
		return fmt.Errorf("update stock quantity: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update stock quantity: lote %s no existe", id)
	}
	return nil
}

// List lista lotes filtrando por bodega y/o variedad (cadenas vacías no filtran).
func (r *StockRepo) List(warehouseID, varietyID string, limit, offset int) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + ` FROM stocks WHERE 1=1`
	args := []any{}
	pos := 1
	if warehouseID != "" {
		query += fmt.Sprintf(" AND warehouse_id = $%d", pos)
		args = append(args, warehouseID)
		pos++
	}
	if varietyID != "" {
		query += fmt.Sprintf(" AND variety_id = $%d", pos)
		args = append(args, varietyID)
		pos++
	}
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", pos, pos+1)
	args = append(args, limit, offset)

	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stocks: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// SumQuantityByWarehouse devuelve los kilogramos almacenados en una bodega.
func (r *StockRepo) SumQuantityByWarehouse(warehouseID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity), 0) FROM stocks WHERE warehouse_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, warehouseID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum quantity by warehouse: %w", err)
	}
	return sum, nil
}

// SumValueByWarehouse devuelve SUM(cantidad * costo unitario) de una bodega.
func (r *StockRepo) SumValueByWarehouse(warehouseID string) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(quantity * unit_price), 0) FROM stocks WHERE warehouse_id = $1`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, warehouseID).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum value by warehouse: %w", err)
	}
	return sum, nil
}

// ListBelowMinimum lista lotes con nivel mínimo configurado y cantidad por debajo.
func (r *StockRepo) ListBelowMinimum() ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + `
		FROM stocks
		WHERE minimum_stock_level > 0 AND quantity < minimum_stock_level
		ORDER BY quantity / minimum_stock_level`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list below minimum: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

// ListExpiringBefore lista lotes con existencias que vencen antes de la fecha.
func (r *StockRepo) ListExpiringBefore(date time.Time) ([]*entity.Stock, error) {
	query := `SELECT ` + stockColumns + `
		FROM stocks
		WHERE expiry_date IS NOT NULL AND expiry_date <= $1 AND quantity > 0
		ORDER BY expiry_date`
	rows, err := r.q.Query(context.Background(), query, date)
	if err != nil {
		return nil, fmt.Errorf("list expiring: %w", err)
	}
	defer rows.Close()
	var list []*entity.Stock
	for rows.Next() {
		s, err := scanStock(rows)
		if err != nil {
			return nil, fmt.Errorf("scan stock: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

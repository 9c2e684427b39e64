package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository sobre PostgreSQL.
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

// Create persiste una venta con su total y profit/loss ya congelados.
func (r *SaleRepo) Create(s *entity.Sale) error {
	query := `
		INSERT INTO sales (id, stock_id, customer_name, quantity, sale_price, total_amount,
			profit_loss, sale_date, invoice_number, payment_method, notes, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`
	_, err := r.q.Exec(context.Background(), query,
		s.ID, s.StockID, s.CustomerName, s.Quantity, s.SalePrice, s.TotalAmount,
		s.ProfitLoss, s.SaleDate, s.InvoiceNumber, s.PaymentMethod, s.Notes,
		s.CreatedBy, s.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create sale: %w", err)
	}
	return nil
}

// ListRecent lista las ventas más recientes.
func (r *SaleRepo) ListRecent(limit int) ([]*entity.Sale, error) {
	query := `
		SELECT id, stock_id, customer_name, quantity, sale_price, total_amount,
			profit_loss, sale_date, invoice_number, payment_method, notes, created_by, created_at
		FROM sales ORDER BY sale_date DESC, created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list sales: %w", err)
	}
	defer rows.Close()
	var list []*entity.Sale
	for rows.Next() {
		var s entity.Sale
		var paymentMethod, notes *string
		if err := rows.Scan(&s.ID, &s.StockID, &s.CustomerName, &s.Quantity, &s.SalePrice,
			&s.TotalAmount, &s.ProfitLoss, &s.SaleDate, &s.InvoiceNumber,
			&paymentMethod, &notes, &s.CreatedBy, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan sale: %w", err)
		}
		if paymentMethod != nil {
			s.PaymentMethod = *paymentMethod
		}
		if notes != nil {
			s.Notes = *notes
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// SumProfitLoss suma el profit_loss almacenado de las ventas del rango.
func (r *SaleRepo) SumProfitLoss(from, to time.Time) (decimal.Decimal, error) {
	query := `SELECT COALESCE(SUM(profit_loss), 0) FROM sales WHERE sale_date >= $1 AND sale_date <= $2`
	var sum decimal.Decimal
	if err := r.q.QueryRow(context.Background(), query, from, to).Scan(&sum); err != nil {
		return decimal.Zero, fmt.Errorf("sum profit loss: %w", err)
	}
	return sum, nil
}

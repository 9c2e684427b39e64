package postgres

import (
	"context"
	"fmt"

	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/repository"
)

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL.
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

// Create persiste una compra.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (id, stock_id, supplier_id, invoice_number, purchase_date, total_amount, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	supplierID := (*string)(nil)
	if p.SupplierID != "" {
		supplierID = &p.SupplierID
	}
	_, err := r.q.Exec(context.Background(), query,
		p.ID, p.StockID, supplierID, p.InvoiceNumber, p.PurchaseDate,
		p.TotalAmount, p.CreatedBy, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create purchase: %w", err)
	}
	return nil
}

// ListRecent lista las compras más recientes.
func (r *PurchaseRepo) ListRecent(limit int) ([]*entity.Purchase, error) {
	query := `
		SELECT id, stock_id, supplier_id, invoice_number, purchase_date, total_amount, created_by, created_at
		FROM purchases ORDER BY purchase_date DESC, created_at DESC LIMIT $1`
	rows, err := r.q.Query(context.Background(), query, limit)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		var supplierID *string
		if err := rows.Scan(&p.ID, &p.StockID, &supplierID, &p.InvoiceNumber,
			&p.PurchaseDate, &p.TotalAmount, &p.CreatedBy, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		if supplierID != nil {
			p.SupplierID = *supplierID
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}

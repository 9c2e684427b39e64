package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tu-usuario/rice-stock-api/internal/domain/entity"
	"github.com/tu-usuario/rice-stock-api/internal/domain/repository"
)

var _ repository.VarietyRepository = (*VarietyRepo)(nil)

// VarietyRepo lectura de variedades de arroz sobre PostgreSQL.
type VarietyRepo struct {
	q Querier
}

// NewVarietyRepository construye el adaptador. Pasar pool o tx (Querier).
func NewVarietyRepository(q Querier) *VarietyRepo {
	return &VarietyRepo{q: q}
}

func scanVariety(row pgx.Row) (*entity.Variety, error) {
	var v entity.Variety
	var description *string
	err := row.Scan(&v.ID, &v.Name, &v.Type, &description, &v.CreatedAt)
	if err != nil {
		return nil, err
	}
	if description != nil {
		v.Description = *description
	}
	return &v, nil
}

// GetByID devuelve una variedad, o nil si no existe.
func (r *VarietyRepo) GetByID(id string) (*entity.Variety, error) {
	query := `SELECT id, name, type, description, created_at FROM rice_varieties WHERE id = $1`
	v, err := scanVariety(r.q.QueryRow(context.Background(), query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get variety: %w", err)
	}
	return v, nil
}

// List devuelve todas las variedades ordenadas por nombre.
func (r *VarietyRepo) List() ([]*entity.Variety, error) {
	query := `SELECT id, name, type, description, created_at FROM rice_varieties ORDER BY name`
	rows, err := r.q.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("list varieties: %w", err)
	}
	defer rows.Close()
	var list []*entity.Variety
	for rows.Next() {
		v, err := scanVariety(rows)
		if err != nil {
			return nil, fmt.Errorf("scan variety: %w", err)
		}
		list = append(list, v)
	}
	return list, rows.Err()
}

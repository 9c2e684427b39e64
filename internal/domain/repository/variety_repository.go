package repository

import "github.com/tu-usuario/rice-stock-api/internal/domain/entity"

// VarietyRepository define el puerto de lectura de variedades de arroz.
type VarietyRepository interface {
	GetByID(id string) (*entity.Variety, error)
	List() ([]*entity.Variety, error)
}

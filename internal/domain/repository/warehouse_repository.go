package repository

import "github.com/tu-usuario/rice-stock-api/internal/domain/entity"

// WarehouseRepository define el puerto de lectura de bodegas (dato maestro
// administrado fuera del motor).
type WarehouseRepository interface {
	GetByID(id string) (*entity.Warehouse, error)
	List() ([]*entity.Warehouse, error)
}

package repository

import "github.com/tu-usuario/rice-stock-api/internal/domain/entity"

// SupplierRepository define el puerto de lectura de proveedores.
type SupplierRepository interface {
	GetByID(id string) (*entity.Supplier, error)
	List() ([]*entity.Supplier, error)
}

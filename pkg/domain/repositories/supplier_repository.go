package repositories

import "github.com/mvidal/opskpi/pkg/domain/entities"

// SupplierRepository provides access to the supplier catalog
type SupplierRepository interface {
	GetSupplier(id entities.SupplierID) (*entities.Supplier, error)
	GetAllSuppliers() ([]*entities.Supplier, error)
	LoadSuppliers(suppliers []*entities.Supplier) error
}

package memory

import (
	"fmt"

	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/domain/repositories"
)

// SupplierRepository provides in-memory supplier storage
type SupplierRepository struct {
	suppliers []entities.Supplier
	index     map[entities.SupplierID]int
}

// NewSupplierRepository creates a new in-memory supplier repository
func NewSupplierRepository(expected int) *SupplierRepository {
	return &SupplierRepository{
		suppliers: make([]entities.Supplier, 0, expected),
		index:     make(map[entities.SupplierID]int, expected),
	}
}

// Verify interface compliance
var _ repositories.SupplierRepository = (*SupplierRepository)(nil)

// LoadSuppliers loads suppliers into the repository
func (r *SupplierRepository) LoadSuppliers(suppliers []*entities.Supplier) error {
	for _, s := range suppliers {
		r.index[s.ID] = len(r.suppliers)
		r.suppliers = append(r.suppliers, *s)
	}
	return nil
}

// GetSupplier returns the supplier with the given ID
func (r *SupplierRepository) GetSupplier(id entities.SupplierID) (*entities.Supplier, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("supplier not found: %s", id)
	}
	return &r.suppliers[i], nil
}

// GetAllSuppliers returns all suppliers
func (r *SupplierRepository) GetAllSuppliers() ([]*entities.Supplier, error) {
	out := make([]*entities.Supplier, 0, len(r.suppliers))
	for i := range r.suppliers {
		out = append(out, &r.suppliers[i])
	}
	return out, nil
}

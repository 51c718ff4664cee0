package memory

import (
	"fmt"

	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/domain/repositories"
)

// SKURepository provides in-memory SKU catalog storage
type SKURepository struct {
	skus  []entities.SKU
	index map[entities.SKUCode]int
}

// NewSKURepository creates a new in-memory SKU repository
func NewSKURepository(expected int) *SKURepository {
	return &SKURepository{
		skus:  make([]entities.SKU, 0, expected),
		index: make(map[entities.SKUCode]int, expected),
	}
}

// Verify interface compliance
var _ repositories.SKURepository = (*SKURepository)(nil)

// LoadSKUs loads SKUs into the repository
func (r *SKURepository) LoadSKUs(skus []*entities.SKU) error {
	for _, s := range skus {
		r.index[s.Code] = len(r.skus)
		r.skus = append(r.skus, *s)
	}
	return nil
}

// GetSKU returns the SKU with the given code
func (r *SKURepository) GetSKU(code entities.SKUCode) (*entities.SKU, error) {
	i, ok := r.index[code]
	if !ok {
		return nil, fmt.Errorf("SKU not found: %s", code)
	}
	return &r.skus[i], nil
}

// GetAllSKUs returns all SKUs
func (r *SKURepository) GetAllSKUs() ([]*entities.SKU, error) {
	out := make([]*entities.SKU, 0, len(r.skus))
	for i := range r.skus {
		out = append(out, &r.skus[i])
	}
	return out, nil
}

package entities

import "fmt"

// SupplierID represents a unique supplier identifier
type SupplierID string

// Supplier represents a vendor purchase orders are placed against
type Supplier struct {
	ID               SupplierID
	Name             string
	Type             string // e.g. Nacional, Internacional
	PaymentTermsDays int
	Rating           float64
}

// NewSupplier creates a validated Supplier
func NewSupplier(id SupplierID, name, supplierType string, paymentTermsDays int, rating float64) (*Supplier, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("supplier ID cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("supplier name cannot be empty")
	}
	if paymentTermsDays < 0 {
		return nil, fmt.Errorf("payment terms cannot be negative, got %d", paymentTermsDays)
	}
	if rating < 0 {
		return nil, fmt.Errorf("rating cannot be negative, got %f", rating)
	}

	return &Supplier{
		ID:               id,
		Name:             name,
		Type:             supplierType,
		PaymentTermsDays: paymentTermsDays,
		Rating:           rating,
	}, nil
}

package entities

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// SKUCode represents a unique product identifier
type SKUCode string

// SKU represents a product in the catalog
type SKU struct {
	Code     SKUCode
	Name     string
	Category string
	UnitCost decimal.Decimal
	Unit     string // UN, KG, LT, CJ
	Active   bool
}

// NewSKU creates a validated SKU
func NewSKU(code SKUCode, name, category string, unitCost decimal.Decimal, unit string, active bool) (*SKU, error) {
	if string(code) == "" {
		return nil, fmt.Errorf("SKU code cannot be empty")
	}
	if category == "" {
		return nil, fmt.Errorf("SKU category cannot be empty")
	}
	if unitCost.IsNegative() {
		return nil, fmt.Errorf("unit cost cannot be negative, got %s", unitCost)
	}

	return &SKU{
		Code:     code,
		Name:     name,
		Category: category,
		UnitCost: unitCost,
		Unit:     unit,
		Active:   active,
	}, nil
}

package repositories

import "github.com/mvidal/opskpi/pkg/domain/entities"

// SKURepository provides access to the product catalog
type SKURepository interface {
	GetSKU(code entities.SKUCode) (*entities.SKU, error)
	GetAllSKUs() ([]*entities.SKU, error)
	LoadSKUs(skus []*entities.SKU) error
}

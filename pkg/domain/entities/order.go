package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// OrderID represents a unique purchase order identifier
type OrderID string

// OrderStatus represents the lifecycle state of a purchase order
type OrderStatus int

const (
	OrderPending OrderStatus = iota
	OrderCompleted
)

// String method for OrderStatus enum
func (s OrderStatus) String() string {
	switch s {
	case OrderPending:
		return "Pending"
	case OrderCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// PurchaseOrder represents a procurement order placed with a supplier
// and worked by an analyst. Records are immutable inputs to the KPI
// engines; derived figures (margins, workloads) are never written back.
type PurchaseOrder struct {
	ID           OrderID
	OrderDate    time.Time
	SupplierID   SupplierID
	AnalystID    AnalystID
	NumSKUs      int
	TotalCost    decimal.Decimal
	SaleAmount   decimal.Decimal
	Status       OrderStatus
	DeliveryDate time.Time
}

// NewPurchaseOrder creates a validated PurchaseOrder
func NewPurchaseOrder(
	id OrderID,
	orderDate time.Time,
	supplierID SupplierID,
	analystID AnalystID,
	numSKUs int,
	totalCost, saleAmount decimal.Decimal,
	status OrderStatus,
	deliveryDate time.Time,
) (*PurchaseOrder, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("order ID cannot be empty")
	}
	if string(supplierID) == "" {
		return nil, fmt.Errorf("supplier ID cannot be empty")
	}
	if string(analystID) == "" {
		return nil, fmt.Errorf("analyst ID cannot be empty")
	}
	if numSKUs < 1 {
		return nil, fmt.Errorf("num SKUs must be at least 1, got %d", numSKUs)
	}
	if totalCost.IsNegative() {
		return nil, fmt.Errorf("total cost cannot be negative, got %s", totalCost)
	}
	if saleAmount.IsNegative() {
		return nil, fmt.Errorf("sale amount cannot be negative, got %s", saleAmount)
	}

	return &PurchaseOrder{
		ID:           id,
		OrderDate:    orderDate,
		SupplierID:   supplierID,
		AnalystID:    analystID,
		NumSKUs:      numSKUs,
		TotalCost:    totalCost,
		SaleAmount:   saleAmount,
		Status:       status,
		DeliveryDate: deliveryDate,
	}, nil
}

// Margin returns the absolute margin (sale minus cost)
func (o *PurchaseOrder) Margin() decimal.Decimal {
	return o.SaleAmount.Sub(o.TotalCost)
}

// OrderLine represents a single SKU line within a purchase order
type OrderLine struct {
	OrderID   OrderID
	SKU       SKUCode
	Quantity  int
	UnitPrice decimal.Decimal
	LineTotal decimal.Decimal
}

// NewOrderLine creates a validated OrderLine
func NewOrderLine(orderID OrderID, sku SKUCode, quantity int, unitPrice, lineTotal decimal.Decimal) (*OrderLine, error) {
	if string(orderID) == "" {
		return nil, fmt.Errorf("order ID cannot be empty")
	}
	if string(sku) == "" {
		return nil, fmt.Errorf("SKU cannot be empty")
	}
	if quantity < 1 {
		return nil, fmt.Errorf("quantity must be at least 1, got %d", quantity)
	}
	if unitPrice.IsNegative() {
		return nil, fmt.Errorf("unit price cannot be negative, got %s", unitPrice)
	}

	return &OrderLine{
		OrderID:   orderID,
		SKU:       sku,
		Quantity:  quantity,
		UnitPrice: unitPrice,
		LineTotal: lineTotal,
	}, nil
}

package repositories

import "github.com/mvidal/opskpi/pkg/domain/entities"

// OrderRepository provides access to purchase orders
type OrderRepository interface {
	GetOrder(id entities.OrderID) (*entities.PurchaseOrder, error)
	GetAllOrders() ([]*entities.PurchaseOrder, error)
	GetOrdersByAnalyst(id entities.AnalystID) ([]*entities.PurchaseOrder, error)
	LoadOrders(orders []*entities.PurchaseOrder) error
}

// OrderLineRepository provides access to purchase order lines
type OrderLineRepository interface {
	GetLinesByOrder(id entities.OrderID) ([]*entities.OrderLine, error)
	GetAllLines() ([]*entities.OrderLine, error)
	LoadLines(lines []*entities.OrderLine) error
}

package memory

import (
	"fmt"

	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/domain/repositories"
)

// OrderRepository provides in-memory purchase order storage
type OrderRepository struct {
	orders    []entities.PurchaseOrder
	index     map[entities.OrderID]int
	byAnalyst map[entities.AnalystID][]int
}

// NewOrderRepository creates a new in-memory order repository
func NewOrderRepository(expected int) *OrderRepository {
	return &OrderRepository{
		orders:    make([]entities.PurchaseOrder, 0, expected),
		index:     make(map[entities.OrderID]int, expected),
		byAnalyst: make(map[entities.AnalystID][]int),
	}
}

// Verify interface compliance
var _ repositories.OrderRepository = (*OrderRepository)(nil)

// LoadOrders loads purchase orders into the repository
func (r *OrderRepository) LoadOrders(orders []*entities.PurchaseOrder) error {
	for _, o := range orders {
		pos := len(r.orders)
		r.index[o.ID] = pos
		r.byAnalyst[o.AnalystID] = append(r.byAnalyst[o.AnalystID], pos)
		r.orders = append(r.orders, *o)
	}
	return nil
}

// GetOrder returns the purchase order with the given ID
func (r *OrderRepository) GetOrder(id entities.OrderID) (*entities.PurchaseOrder, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("order not found: %s", id)
	}
	return &r.orders[i], nil
}

// GetAllOrders returns all purchase orders
func (r *OrderRepository) GetAllOrders() ([]*entities.PurchaseOrder, error) {
	out := make([]*entities.PurchaseOrder, 0, len(r.orders))
	for i := range r.orders {
		out = append(out, &r.orders[i])
	}
	return out, nil
}

// GetOrdersByAnalyst returns the orders worked by one analyst
func (r *OrderRepository) GetOrdersByAnalyst(id entities.AnalystID) ([]*entities.PurchaseOrder, error) {
	positions := r.byAnalyst[id]
	out := make([]*entities.PurchaseOrder, 0, len(positions))
	for _, pos := range positions {
		out = append(out, &r.orders[pos])
	}
	return out, nil
}

// OrderLineRepository provides in-memory order line storage
type OrderLineRepository struct {
	lines   []entities.OrderLine
	byOrder map[entities.OrderID][]int
}

// NewOrderLineRepository creates a new in-memory order line repository
func NewOrderLineRepository(expected int) *OrderLineRepository {
	return &OrderLineRepository{
		lines:   make([]entities.OrderLine, 0, expected),
		byOrder: make(map[entities.OrderID][]int),
	}
}

// Verify interface compliance
var _ repositories.OrderLineRepository = (*OrderLineRepository)(nil)

// LoadLines loads order lines into the repository
func (r *OrderLineRepository) LoadLines(lines []*entities.OrderLine) error {
	for _, l := range lines {
		r.byOrder[l.OrderID] = append(r.byOrder[l.OrderID], len(r.lines))
		r.lines = append(r.lines, *l)
	}
	return nil
}

// GetLinesByOrder returns the lines of one purchase order
func (r *OrderLineRepository) GetLinesByOrder(id entities.OrderID) ([]*entities.OrderLine, error) {
	positions := r.byOrder[id]
	out := make([]*entities.OrderLine, 0, len(positions))
	for _, pos := range positions {
		out = append(out, &r.lines[pos])
	}
	return out, nil
}

// GetAllLines returns all order lines
func (r *OrderLineRepository) GetAllLines() ([]*entities.OrderLine, error) {
	out := make([]*entities.OrderLine, 0, len(r.lines))
	for i := range r.lines {
		out = append(out, &r.lines[i])
	}
	return out, nil
}

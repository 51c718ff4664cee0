package memory

import (
	"fmt"

	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/domain/repositories"
)

// InvoiceRepository provides in-memory invoice storage
type InvoiceRepository struct {
	invoices []entities.Invoice
	index    map[entities.InvoiceID]int
	byPeriod map[entities.Period][]int
}

// NewInvoiceRepository creates a new in-memory invoice repository
func NewInvoiceRepository(expected int) *InvoiceRepository {
	return &InvoiceRepository{
		invoices: make([]entities.Invoice, 0, expected),
		index:    make(map[entities.InvoiceID]int, expected),
		byPeriod: make(map[entities.Period][]int),
	}
}

// Verify interface compliance
var _ repositories.InvoiceRepository = (*InvoiceRepository)(nil)

// LoadInvoices loads invoices into the repository
func (r *InvoiceRepository) LoadInvoices(invoices []*entities.Invoice) error {
	for _, inv := range invoices {
		pos := len(r.invoices)
		r.index[inv.ID] = pos
		r.byPeriod[inv.Period()] = append(r.byPeriod[inv.Period()], pos)
		r.invoices = append(r.invoices, *inv)
	}
	return nil
}

// GetInvoice returns the invoice with the given ID
func (r *InvoiceRepository) GetInvoice(id entities.InvoiceID) (*entities.Invoice, error) {
	i, ok := r.index[id]
	if !ok {
		return nil, fmt.Errorf("invoice not found: %s", id)
	}
	return &r.invoices[i], nil
}

// GetAllInvoices returns all invoices
func (r *InvoiceRepository) GetAllInvoices() ([]*entities.Invoice, error) {
	out := make([]*entities.Invoice, 0, len(r.invoices))
	for i := range r.invoices {
		out = append(out, &r.invoices[i])
	}
	return out, nil
}

// GetInvoicesByPeriod returns the invoices processed in one ISO week
func (r *InvoiceRepository) GetInvoicesByPeriod(period entities.Period) ([]*entities.Invoice, error) {
	positions := r.byPeriod[period]
	out := make([]*entities.Invoice, 0, len(positions))
	for _, pos := range positions {
		out = append(out, &r.invoices[pos])
	}
	return out, nil
}

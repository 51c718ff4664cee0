package repositories

import "github.com/mvidal/opskpi/pkg/domain/entities"

// InvoiceRepository provides access to invoice processing records
type InvoiceRepository interface {
	GetInvoice(id entities.InvoiceID) (*entities.Invoice, error)
	GetAllInvoices() ([]*entities.Invoice, error)
	GetInvoicesByPeriod(period entities.Period) ([]*entities.Invoice, error)
	LoadInvoices(invoices []*entities.Invoice) error
}

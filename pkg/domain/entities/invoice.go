package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceID represents a unique invoice identifier
type InvoiceID string

// Invoice represents one invoice processing record. Assigned and
// Completed are explicit flags so the completion KPI never has to be
// inferred from dates.
type Invoice struct {
	ID             InvoiceID
	OrderID        OrderID
	AnalystID      AnalystID
	InvoiceDate    time.Time
	ProcessedDate  time.Time
	ProcessingDays int
	Amount         decimal.Decimal
	Assigned       bool
	Completed      bool
	HasError       bool
	ErrorType      string
}

// NewInvoice creates a validated Invoice
func NewInvoice(
	id InvoiceID,
	orderID OrderID,
	analystID AnalystID,
	invoiceDate, processedDate time.Time,
	processingDays int,
	amount decimal.Decimal,
	assigned, completed, hasError bool,
	errorType string,
) (*Invoice, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("invoice ID cannot be empty")
	}
	if string(orderID) == "" {
		return nil, fmt.Errorf("order ID cannot be empty")
	}
	if string(analystID) == "" {
		return nil, fmt.Errorf("analyst ID cannot be empty")
	}
	if processingDays < 0 {
		return nil, fmt.Errorf("processing days cannot be negative, got %d", processingDays)
	}
	if completed && !assigned {
		return nil, fmt.Errorf("invoice cannot be completed without being assigned")
	}
	if hasError && errorType == "" {
		return nil, fmt.Errorf("error type required when invoice has an error")
	}

	return &Invoice{
		ID:             id,
		OrderID:        orderID,
		AnalystID:      analystID,
		InvoiceDate:    invoiceDate,
		ProcessedDate:  processedDate,
		ProcessingDays: processingDays,
		Amount:         amount,
		Assigned:       assigned,
		Completed:      completed,
		HasError:       hasError,
		ErrorType:      errorType,
	}, nil
}

// Period returns the ISO week the invoice was processed in
func (i *Invoice) Period() Period {
	return PeriodOf(i.ProcessedDate)
}

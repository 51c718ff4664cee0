// Package csv loads the six input tables from CSV files and writes
// them back out. A missing required column is fatal for the whole
// batch; extra columns are ignored so callers can feed wider exports
// (the original files carry precomputed margin columns, for example).
package csv

import (
	"encoding/csv"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"

	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/domain/errs"
)

// Loader reads KPI input data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// columns maps required column names to their positions in the header.
// Matching is case-insensitive and ignores surrounding whitespace.
type columns map[string]int

func readTable(filename string, required ...string) (columns, [][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to open CSV file", goerr.V("path", filename))
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return nil, nil, goerr.Wrap(err, "failed to read CSV file", goerr.V("path", filename))
	}
	if len(records) < 1 {
		return nil, nil, goerr.New("CSV file has no header row",
			goerr.T(errs.ErrTagMissingField), goerr.V("path", filename))
	}

	cols := make(columns, len(required))
	for i, name := range records[0] {
		cols[strings.ToLower(strings.TrimSpace(name))] = i
	}
	for _, name := range required {
		if _, ok := cols[name]; !ok {
			return nil, nil, goerr.New("required column missing",
				goerr.T(errs.ErrTagMissingField),
				goerr.V("path", filename), goerr.V("column", name))
		}
	}

	return cols, records[1:], nil
}

func (c columns) get(record []string, name string) (string, error) {
	i := c[name]
	if i >= len(record) {
		return "", goerr.New("row has too few columns",
			goerr.T(errs.ErrTagMissingField), goerr.V("column", name))
	}
	return strings.TrimSpace(record[i]), nil
}

// LoadAnalysts loads the analyst roster from a CSV file
func (l *Loader) LoadAnalysts(filename string) ([]*entities.Analyst, error) {
	cols, rows, err := readTable(filename, "analyst_id", "analyst_name", "hire_date", "specialization")
	if err != nil {
		return nil, err
	}

	analysts := make([]*entities.Analyst, 0, len(rows))
	for i, record := range rows {
		analyst, err := parseAnalyst(cols, record)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid analyst row",
				goerr.V("path", filename), goerr.V("row", i+2))
		}
		analysts = append(analysts, analyst)
	}
	return analysts, nil
}

// LoadSuppliers loads the supplier catalog from a CSV file
func (l *Loader) LoadSuppliers(filename string) ([]*entities.Supplier, error) {
	cols, rows, err := readTable(filename, "supplier_id", "supplier_name", "supplier_type", "payment_terms", "rating")
	if err != nil {
		return nil, err
	}

	suppliers := make([]*entities.Supplier, 0, len(rows))
	for i, record := range rows {
		supplier, err := parseSupplier(cols, record)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid supplier row",
				goerr.V("path", filename), goerr.V("row", i+2))
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, nil
}

// LoadSKUs loads the product catalog from a CSV file
func (l *Loader) LoadSKUs(filename string) ([]*entities.SKU, error) {
	cols, rows, err := readTable(filename, "sku", "product_name", "category", "unit_cost", "unit", "active")
	if err != nil {
		return nil, err
	}

	skus := make([]*entities.SKU, 0, len(rows))
	for i, record := range rows {
		sku, err := parseSKU(cols, record)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid SKU row",
				goerr.V("path", filename), goerr.V("row", i+2))
		}
		skus = append(skus, sku)
	}
	return skus, nil
}

// LoadOrders loads purchase orders from a CSV file
func (l *Loader) LoadOrders(filename string) ([]*entities.PurchaseOrder, error) {
	cols, rows, err := readTable(filename,
		"order_id", "order_date", "supplier_id", "analyst_id",
		"num_skus", "total_cost", "sale_amount", "status", "delivery_date")
	if err != nil {
		return nil, err
	}

	orders := make([]*entities.PurchaseOrder, 0, len(rows))
	for i, record := range rows {
		order, err := parseOrder(cols, record)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid purchase order row",
				goerr.V("path", filename), goerr.V("row", i+2))
		}
		orders = append(orders, order)
	}
	return orders, nil
}

// LoadOrderLines loads purchase order lines from a CSV file
func (l *Loader) LoadOrderLines(filename string) ([]*entities.OrderLine, error) {
	cols, rows, err := readTable(filename, "order_id", "sku", "quantity", "unit_price", "line_total")
	if err != nil {
		return nil, err
	}

	lines := make([]*entities.OrderLine, 0, len(rows))
	for i, record := range rows {
		line, err := parseOrderLine(cols, record)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid order line row",
				goerr.V("path", filename), goerr.V("row", i+2))
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// LoadInvoices loads invoice processing records from a CSV file
func (l *Loader) LoadInvoices(filename string) ([]*entities.Invoice, error) {
	cols, rows, err := readTable(filename,
		"invoice_id", "order_id", "assigned_to", "invoice_date", "processed_date",
		"processing_days", "amount", "assigned", "completed", "has_error", "error_type")
	if err != nil {
		return nil, err
	}

	invoices := make([]*entities.Invoice, 0, len(rows))
	for i, record := range rows {
		invoice, err := parseInvoice(cols, record)
		if err != nil {
			return nil, goerr.Wrap(err, "invalid invoice row",
				goerr.V("path", filename), goerr.V("row", i+2))
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

// Row parsing helpers

func parseAnalyst(cols columns, record []string) (*entities.Analyst, error) {
	id, err := cols.get(record, "analyst_id")
	if err != nil {
		return nil, err
	}
	name, err := cols.get(record, "analyst_name")
	if err != nil {
		return nil, err
	}
	hireDateStr, err := cols.get(record, "hire_date")
	if err != nil {
		return nil, err
	}
	hireDate, err := parseDate(hireDateStr)
	if err != nil {
		return nil, err
	}
	specialization, err := cols.get(record, "specialization")
	if err != nil {
		return nil, err
	}

	return entities.NewAnalyst(entities.AnalystID(id), name, hireDate, specialization)
}

func parseSupplier(cols columns, record []string) (*entities.Supplier, error) {
	id, err := cols.get(record, "supplier_id")
	if err != nil {
		return nil, err
	}
	name, err := cols.get(record, "supplier_name")
	if err != nil {
		return nil, err
	}
	supplierType, err := cols.get(record, "supplier_type")
	if err != nil {
		return nil, err
	}
	terms, err := parseIntField(cols, record, "payment_terms")
	if err != nil {
		return nil, err
	}
	ratingStr, err := cols.get(record, "rating")
	if err != nil {
		return nil, err
	}
	rating, err := strconv.ParseFloat(ratingStr, 64)
	if err != nil {
		return nil, goerr.New("invalid rating", goerr.V("value", ratingStr))
	}

	return entities.NewSupplier(entities.SupplierID(id), name, supplierType, terms, rating)
}

func parseSKU(cols columns, record []string) (*entities.SKU, error) {
	code, err := cols.get(record, "sku")
	if err != nil {
		return nil, err
	}
	name, err := cols.get(record, "product_name")
	if err != nil {
		return nil, err
	}
	category, err := cols.get(record, "category")
	if err != nil {
		return nil, err
	}
	unitCost, err := parseDecimalField(cols, record, "unit_cost")
	if err != nil {
		return nil, err
	}
	unit, err := cols.get(record, "unit")
	if err != nil {
		return nil, err
	}
	active, err := parseBoolField(cols, record, "active")
	if err != nil {
		return nil, err
	}

	return entities.NewSKU(entities.SKUCode(code), name, category, unitCost, unit, active)
}

func parseOrder(cols columns, record []string) (*entities.PurchaseOrder, error) {
	id, err := cols.get(record, "order_id")
	if err != nil {
		return nil, err
	}
	orderDateStr, err := cols.get(record, "order_date")
	if err != nil {
		return nil, err
	}
	orderDate, err := parseDate(orderDateStr)
	if err != nil {
		return nil, err
	}
	supplierID, err := cols.get(record, "supplier_id")
	if err != nil {
		return nil, err
	}
	analystID, err := cols.get(record, "analyst_id")
	if err != nil {
		return nil, err
	}
	numSKUs, err := parseIntField(cols, record, "num_skus")
	if err != nil {
		return nil, err
	}
	totalCost, err := parseDecimalField(cols, record, "total_cost")
	if err != nil {
		return nil, err
	}
	saleAmount, err := parseDecimalField(cols, record, "sale_amount")
	if err != nil {
		return nil, err
	}
	statusStr, err := cols.get(record, "status")
	if err != nil {
		return nil, err
	}
	status, err := parseOrderStatus(statusStr)
	if err != nil {
		return nil, err
	}
	deliveryDateStr, err := cols.get(record, "delivery_date")
	if err != nil {
		return nil, err
	}
	deliveryDate, err := parseDate(deliveryDateStr)
	if err != nil {
		return nil, err
	}

	return entities.NewPurchaseOrder(
		entities.OrderID(id), orderDate,
		entities.SupplierID(supplierID), entities.AnalystID(analystID),
		numSKUs, totalCost, saleAmount, status, deliveryDate)
}

func parseOrderLine(cols columns, record []string) (*entities.OrderLine, error) {
	orderID, err := cols.get(record, "order_id")
	if err != nil {
		return nil, err
	}
	sku, err := cols.get(record, "sku")
	if err != nil {
		return nil, err
	}
	quantity, err := parseIntField(cols, record, "quantity")
	if err != nil {
		return nil, err
	}
	unitPrice, err := parseDecimalField(cols, record, "unit_price")
	if err != nil {
		return nil, err
	}
	lineTotal, err := parseDecimalField(cols, record, "line_total")
	if err != nil {
		return nil, err
	}

	return entities.NewOrderLine(entities.OrderID(orderID), entities.SKUCode(sku), quantity, unitPrice, lineTotal)
}

func parseInvoice(cols columns, record []string) (*entities.Invoice, error) {
	id, err := cols.get(record, "invoice_id")
	if err != nil {
		return nil, err
	}
	orderID, err := cols.get(record, "order_id")
	if err != nil {
		return nil, err
	}
	analystID, err := cols.get(record, "assigned_to")
	if err != nil {
		return nil, err
	}
	invoiceDateStr, err := cols.get(record, "invoice_date")
	if err != nil {
		return nil, err
	}
	invoiceDate, err := parseDate(invoiceDateStr)
	if err != nil {
		return nil, err
	}
	processedDateStr, err := cols.get(record, "processed_date")
	if err != nil {
		return nil, err
	}
	processedDate, err := parseDate(processedDateStr)
	if err != nil {
		return nil, err
	}
	processingDays, err := parseIntField(cols, record, "processing_days")
	if err != nil {
		return nil, err
	}
	amount, err := parseDecimalField(cols, record, "amount")
	if err != nil {
		return nil, err
	}
	assigned, err := parseBoolField(cols, record, "assigned")
	if err != nil {
		return nil, err
	}
	completed, err := parseBoolField(cols, record, "completed")
	if err != nil {
		return nil, err
	}
	hasError, err := parseBoolField(cols, record, "has_error")
	if err != nil {
		return nil, err
	}
	errorType, err := cols.get(record, "error_type")
	if err != nil {
		return nil, err
	}

	return entities.NewInvoice(
		entities.InvoiceID(id), entities.OrderID(orderID), entities.AnalystID(analystID),
		invoiceDate, processedDate, processingDays, amount,
		assigned, completed, hasError, errorType)
}

// Field parsing helpers

func parseDate(s string) (time.Time, error) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, goerr.New("invalid date format (expected YYYY-MM-DD)", goerr.V("value", s))
}

func parseIntField(cols columns, record []string, name string) (int, error) {
	s, err := cols.get(record, name)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, goerr.New("invalid integer", goerr.V("column", name), goerr.V("value", s))
	}
	return v, nil
}

func parseDecimalField(cols columns, record []string, name string) (decimal.Decimal, error) {
	s, err := cols.get(record, name)
	if err != nil {
		return decimal.Zero, err
	}
	v, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, goerr.New("invalid decimal", goerr.V("column", name), goerr.V("value", s))
	}
	return v, nil
}

func parseBoolField(cols columns, record []string, name string) (bool, error) {
	s, err := cols.get(record, name)
	if err != nil {
		return false, err
	}
	v, err := strconv.ParseBool(strings.ToLower(s))
	if err != nil {
		return false, goerr.New("invalid boolean", goerr.V("column", name), goerr.V("value", s))
	}
	return v, nil
}

func parseOrderStatus(s string) (entities.OrderStatus, error) {
	switch strings.ToLower(s) {
	case "completed":
		return entities.OrderCompleted, nil
	case "pending":
		return entities.OrderPending, nil
	default:
		return entities.OrderPending, goerr.New("invalid order status (expected Completed or Pending)",
			goerr.V("value", s))
	}
}

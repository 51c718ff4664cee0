package csv

import (
	"encoding/csv"
	"os"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

// Writer persists the input tables back to CSV files, one table per
// file. Column order matches what Loader expects.
type Writer struct{}

// NewWriter creates a new CSV writer
func NewWriter() *Writer {
	return &Writer{}
}

const dateLayout = "2006-01-02"

func writeTable(filename string, header []string, rows [][]string) error {
	file, err := os.Create(filename)
	if err != nil {
		return goerr.Wrap(err, "failed to create CSV file", goerr.V("path", filename))
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return goerr.Wrap(err, "failed to write CSV header", goerr.V("path", filename))
	}
	if err := w.WriteAll(rows); err != nil {
		return goerr.Wrap(err, "failed to write CSV rows", goerr.V("path", filename))
	}
	w.Flush()
	return w.Error()
}

// WriteAnalysts writes the analyst roster
func (w *Writer) WriteAnalysts(filename string, analysts []*entities.Analyst) error {
	rows := make([][]string, 0, len(analysts))
	for _, a := range analysts {
		rows = append(rows, []string{
			string(a.ID), a.Name, a.HireDate.Format(dateLayout), a.Specialization,
		})
	}
	return writeTable(filename, []string{"analyst_id", "analyst_name", "hire_date", "specialization"}, rows)
}

// WriteSuppliers writes the supplier catalog
func (w *Writer) WriteSuppliers(filename string, suppliers []*entities.Supplier) error {
	rows := make([][]string, 0, len(suppliers))
	for _, s := range suppliers {
		rows = append(rows, []string{
			string(s.ID), s.Name, s.Type,
			strconv.Itoa(s.PaymentTermsDays),
			strconv.FormatFloat(s.Rating, 'f', 1, 64),
		})
	}
	return writeTable(filename, []string{"supplier_id", "supplier_name", "supplier_type", "payment_terms", "rating"}, rows)
}

// WriteSKUs writes the product catalog
func (w *Writer) WriteSKUs(filename string, skus []*entities.SKU) error {
	rows := make([][]string, 0, len(skus))
	for _, s := range skus {
		rows = append(rows, []string{
			string(s.Code), s.Name, s.Category,
			s.UnitCost.StringFixed(2), s.Unit,
			strconv.FormatBool(s.Active),
		})
	}
	return writeTable(filename, []string{"sku", "product_name", "category", "unit_cost", "unit", "active"}, rows)
}

// WriteOrders writes purchase orders
func (w *Writer) WriteOrders(filename string, orders []*entities.PurchaseOrder) error {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			string(o.ID), o.OrderDate.Format(dateLayout),
			string(o.SupplierID), string(o.AnalystID),
			strconv.Itoa(o.NumSKUs),
			o.TotalCost.StringFixed(2), o.SaleAmount.StringFixed(2),
			o.Status.String(), o.DeliveryDate.Format(dateLayout),
		})
	}
	return writeTable(filename, []string{
		"order_id", "order_date", "supplier_id", "analyst_id",
		"num_skus", "total_cost", "sale_amount", "status", "delivery_date",
	}, rows)
}

// WriteOrderLines writes purchase order lines
func (w *Writer) WriteOrderLines(filename string, lines []*entities.OrderLine) error {
	rows := make([][]string, 0, len(lines))
	for _, l := range lines {
		rows = append(rows, []string{
			string(l.OrderID), string(l.SKU),
			strconv.Itoa(l.Quantity),
			l.UnitPrice.StringFixed(2), l.LineTotal.StringFixed(2),
		})
	}
	return writeTable(filename, []string{"order_id", "sku", "quantity", "unit_price", "line_total"}, rows)
}

// WriteInvoices writes invoice processing records
func (w *Writer) WriteInvoices(filename string, invoices []*entities.Invoice) error {
	rows := make([][]string, 0, len(invoices))
	for _, inv := range invoices {
		rows = append(rows, []string{
			string(inv.ID), string(inv.OrderID), string(inv.AnalystID),
			inv.InvoiceDate.Format(dateLayout), inv.ProcessedDate.Format(dateLayout),
			strconv.Itoa(inv.ProcessingDays),
			inv.Amount.StringFixed(2),
			strconv.FormatBool(inv.Assigned),
			strconv.FormatBool(inv.Completed),
			strconv.FormatBool(inv.HasError),
			inv.ErrorType,
		})
	}
	return writeTable(filename, []string{
		"invoice_id", "order_id", "assigned_to", "invoice_date", "processed_date",
		"processing_days", "amount", "assigned", "completed", "has_error", "error_type",
	}, rows)
}

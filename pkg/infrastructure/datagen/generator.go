// Package datagen produces synthetic but realistic purchase order,
// catalog and invoice data for demos and integration tests. Output is
// deterministic for a given seed.
package datagen

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/shopspring/decimal"

	"github.com/mvidal/opskpi/pkg/domain/entities"
)

// Config holds generation parameters
type Config struct {
	Suppliers int       // Number of suppliers
	Analysts  int       // Number of analysts
	SKUs      int       // Number of catalog SKUs
	Orders    int       // Number of purchase orders
	Seed      int64     // Random seed, 0 means time-based
	DateStart time.Time // Earliest order date
	DateEnd   time.Time // Latest order date
}

// DefaultConfig mirrors the scale of a mid-size B2B operation over one year
func DefaultConfig() Config {
	return Config{
		Suppliers: 50,
		Analysts:  8,
		SKUs:      500,
		Orders:    2000,
		Seed:      42,
		DateStart: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		DateEnd:   time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

// Dataset holds one complete synthetic batch
type Dataset struct {
	Suppliers []*entities.Supplier
	SKUs      []*entities.SKU
	Analysts  []*entities.Analyst
	Orders    []*entities.PurchaseOrder
	Lines     []*entities.OrderLine
	Invoices  []*entities.Invoice
}

// Generator creates synthetic datasets
type Generator struct {
	config Config
	rand   *rand.Rand
}

// New creates a generator seeded from config
func New(config Config) (*Generator, error) {
	if config.Suppliers < 1 || config.Analysts < 1 || config.SKUs < 1 || config.Orders < 1 {
		return nil, goerr.New("all entity counts must be at least 1",
			goerr.V("suppliers", config.Suppliers), goerr.V("analysts", config.Analysts),
			goerr.V("skus", config.SKUs), goerr.V("orders", config.Orders))
	}
	if !config.DateEnd.After(config.DateStart) {
		return nil, goerr.New("date range must span at least one day")
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		config: config,
		rand:   rand.New(rand.NewSource(seed)),
	}, nil
}

var productCategories = []string{
	"Alimentos secos",
	"Alimentos refrigerados",
	"Bebidas",
	"Productos de limpieza",
	"Suministros de oficina",
	"Equipamiento",
	"Insumos industriales",
	"Tecnología",
}

var units = []string{"UN", "KG", "LT", "CJ"}

var paymentTerms = []int{30, 45, 60, 90}

var invoiceErrorTypes = []string{"Monto incorrecto", "Datos faltantes", "SKU incorrecto"}

// skuCountChoices skews order size towards small orders, with a long tail
// of very large ones.
var skuCountChoices = []int{1, 2, 3, 5, 8, 15, 25, 50, 100}
var skuCountWeights = []float64{0.15, 0.20, 0.18, 0.15, 0.12, 0.10, 0.05, 0.03, 0.02}

var supplierNameParts = []string{
	"Comercial", "Distribuidora", "Importadora", "Logística", "Abastecimientos",
	"Suministros", "Industrias", "Alimentos", "Servicios", "Proveedora",
}
var supplierNameSuffixes = []string{
	"del Sur", "Andina", "Pacífico", "Central", "Austral",
	"Norte", "Global", "Express", "Premium", "Mayorista",
}

var analystFirstNames = []string{
	"Carolina", "Felipe", "Valentina", "Matías", "Francisca",
	"Sebastián", "Camila", "Rodrigo", "Javiera", "Ignacio",
}
var analystLastNames = []string{
	"González", "Muñoz", "Rojas", "Díaz", "Pérez",
	"Soto", "Contreras", "Silva", "Martínez", "Morales",
}

var productAdjectives = []string{
	"Premium", "Industrial", "Clásico", "Reforzado", "Compacto",
	"Profesional", "Económico", "Extra", "Selecto", "Estándar",
}
var productNouns = []string{
	"Pack", "Lote", "Caja", "Bidón", "Set",
	"Unidad", "Formato", "Envase", "Rollo", "Kit",
}

// Generate produces one complete dataset
func (g *Generator) Generate() (*Dataset, error) {
	suppliers, err := g.generateSuppliers()
	if err != nil {
		return nil, err
	}
	skus, err := g.generateSKUs()
	if err != nil {
		return nil, err
	}
	analysts, err := g.generateAnalysts()
	if err != nil {
		return nil, err
	}
	orders, lines, err := g.generateOrders(suppliers, skus, analysts)
	if err != nil {
		return nil, err
	}
	invoices, err := g.generateInvoices(orders, analysts)
	if err != nil {
		return nil, err
	}

	return &Dataset{
		Suppliers: suppliers,
		SKUs:      skus,
		Analysts:  analysts,
		Orders:    orders,
		Lines:     lines,
		Invoices:  invoices,
	}, nil
}

func (g *Generator) generateSuppliers() ([]*entities.Supplier, error) {
	suppliers := make([]*entities.Supplier, 0, g.config.Suppliers)
	for i := 0; i < g.config.Suppliers; i++ {
		supplierType := "Nacional"
		if g.rand.Intn(2) == 1 {
			supplierType = "Internacional"
		}
		name := fmt.Sprintf("%s %s %d",
			supplierNameParts[g.rand.Intn(len(supplierNameParts))],
			supplierNameSuffixes[g.rand.Intn(len(supplierNameSuffixes))],
			i+1)
		rating := 3.0 + g.rand.Float64()*2.0

		supplier, err := entities.NewSupplier(
			entities.SupplierID(fmt.Sprintf("SUP%04d", i+1)),
			name, supplierType,
			paymentTerms[g.rand.Intn(len(paymentTerms))],
			float64(int(rating*10))/10)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to generate supplier")
		}
		suppliers = append(suppliers, supplier)
	}
	return suppliers, nil
}

func (g *Generator) generateSKUs() ([]*entities.SKU, error) {
	skus := make([]*entities.SKU, 0, g.config.SKUs)
	for i := 0; i < g.config.SKUs; i++ {
		name := fmt.Sprintf("%s %s %d",
			productNouns[g.rand.Intn(len(productNouns))],
			productAdjectives[g.rand.Intn(len(productAdjectives))],
			i+1)
		unitCost := decimal.NewFromFloat(100 + g.rand.Float64()*49900).Round(2)

		sku, err := entities.NewSKU(
			entities.SKUCode(fmt.Sprintf("SKU%06d", i+1)),
			name,
			productCategories[g.rand.Intn(len(productCategories))],
			unitCost,
			units[g.rand.Intn(len(units))],
			g.rand.Float64() < 0.75)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to generate SKU")
		}
		skus = append(skus, sku)
	}
	return skus, nil
}

func (g *Generator) generateAnalysts() ([]*entities.Analyst, error) {
	analysts := make([]*entities.Analyst, 0, g.config.Analysts)
	for i := 0; i < g.config.Analysts; i++ {
		name := fmt.Sprintf("%s %s",
			analystFirstNames[g.rand.Intn(len(analystFirstNames))],
			analystLastNames[g.rand.Intn(len(analystLastNames))])

		// Hired between five years and six months before the window opens
		hireOffset := time.Duration(g.rand.Intn(365*4+180)+180) * 24 * time.Hour
		hireDate := g.config.DateStart.Add(-hireOffset)

		// 70% of analysts specialize in one category
		specialization := ""
		if g.rand.Float64() < 0.7 {
			specialization = productCategories[g.rand.Intn(len(productCategories))]
		}

		analyst, err := entities.NewAnalyst(
			entities.AnalystID(fmt.Sprintf("AN%03d", i+1)),
			name, hireDate, specialization)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to generate analyst")
		}
		analysts = append(analysts, analyst)
	}
	return analysts, nil
}

func (g *Generator) generateOrders(
	suppliers []*entities.Supplier,
	skus []*entities.SKU,
	analysts []*entities.Analyst,
) ([]*entities.PurchaseOrder, []*entities.OrderLine, error) {
	byCategory := make(map[string][]*entities.SKU)
	for _, sku := range skus {
		byCategory[sku.Category] = append(byCategory[sku.Category], sku)
	}

	orders := make([]*entities.PurchaseOrder, 0, g.config.Orders)
	var lines []*entities.OrderLine
	windowDays := int(g.config.DateEnd.Sub(g.config.DateStart).Hours() / 24)

	for i := 0; i < g.config.Orders; i++ {
		orderID := entities.OrderID(fmt.Sprintf("OC%06d", i+1))
		orderDate := g.config.DateStart.AddDate(0, 0, g.rand.Intn(windowDays+1))
		supplier := suppliers[g.rand.Intn(len(suppliers))]
		analyst := analysts[g.rand.Intn(len(analysts))]

		// Specialists place 70% of their orders inside their category
		pool := skus
		if analyst.Specialization != "" && g.rand.Float64() < 0.7 {
			if catSKUs := byCategory[analyst.Specialization]; len(catSKUs) > 0 {
				pool = catSKUs
			}
		}

		numSKUs := g.sampleSKUCount()
		if numSKUs > len(pool) {
			numSKUs = len(pool)
		}
		selected := g.sampleSKUs(pool, numSKUs)

		totalCost := decimal.Zero
		for _, sku := range selected {
			quantity := g.rand.Intn(100) + 1
			lineTotal := sku.UnitCost.Mul(decimal.NewFromInt(int64(quantity)))
			totalCost = totalCost.Add(lineTotal)

			line, err := entities.NewOrderLine(orderID, sku.Code, quantity, sku.UnitCost, lineTotal)
			if err != nil {
				return nil, nil, goerr.Wrap(err, "failed to generate order line")
			}
			lines = append(lines, line)
		}

		// Sale price carries a 5% to 25% markup over cost
		marginPct := 0.05 + g.rand.Float64()*0.20
		saleAmount := totalCost.Mul(decimal.NewFromFloat(1 + marginPct)).Round(2)

		status := entities.OrderCompleted
		if g.rand.Intn(4) == 0 {
			status = entities.OrderPending
		}
		deliveryDate := orderDate.AddDate(0, 0, g.rand.Intn(28)+3)

		order, err := entities.NewPurchaseOrder(
			orderID, orderDate, supplier.ID, analyst.ID,
			len(selected), totalCost.Round(2), saleAmount, status, deliveryDate)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to generate purchase order")
		}
		orders = append(orders, order)
	}
	return orders, lines, nil
}

// generateInvoices produces one invoice per completed order. A small
// fraction stay unassigned, assigned ones usually complete, and 5% of
// all invoices carry processing errors.
func (g *Generator) generateInvoices(
	orders []*entities.PurchaseOrder,
	analysts []*entities.Analyst,
) ([]*entities.Invoice, error) {
	var invoices []*entities.Invoice
	for _, order := range orders {
		if order.Status != entities.OrderCompleted {
			continue
		}

		invoiceDate := order.OrderDate.AddDate(0, 0, g.rand.Intn(5)+1)
		processor := analysts[g.rand.Intn(len(analysts))]
		processingDays := g.rand.Intn(7) + 1
		processedDate := invoiceDate.AddDate(0, 0, processingDays)

		assigned := g.rand.Float64() < 0.97
		completed := assigned && g.rand.Float64() < 0.94
		hasError := g.rand.Float64() < 0.05
		errorType := ""
		if hasError {
			errorType = invoiceErrorTypes[g.rand.Intn(len(invoiceErrorTypes))]
		}

		invoice, err := entities.NewInvoice(
			entities.InvoiceID("INV"+string(order.ID)[2:]),
			order.ID, processor.ID,
			invoiceDate, processedDate, processingDays,
			order.SaleAmount,
			assigned, completed, hasError, errorType)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to generate invoice")
		}
		invoices = append(invoices, invoice)
	}
	return invoices, nil
}

func (g *Generator) sampleSKUCount() int {
	r := g.rand.Float64()
	cumulative := 0.0
	for i, w := range skuCountWeights {
		cumulative += w
		if r < cumulative {
			return skuCountChoices[i]
		}
	}
	return skuCountChoices[len(skuCountChoices)-1]
}

// sampleSKUs picks n distinct SKUs from the pool via a partial shuffle
func (g *Generator) sampleSKUs(pool []*entities.SKU, n int) []*entities.SKU {
	indices := g.rand.Perm(len(pool))[:n]
	selected := make([]*entities.SKU, n)
	for i, idx := range indices {
		selected[i] = pool[idx]
	}
	return selected
}

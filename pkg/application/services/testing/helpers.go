// Package testing provides shared fixtures for service-level tests.
package testing

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mvidal/opskpi/pkg/application/services"
	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/infrastructure/repositories/memory"
)

// mustCreateAnalyst is a helper for tests - panics on validation error
func mustCreateAnalyst(id, name, specialization string) *entities.Analyst {
	analyst, err := entities.NewAnalyst(
		entities.AnalystID(id), name,
		time.Date(2021, 3, 1, 0, 0, 0, 0, time.UTC),
		specialization,
	)
	if err != nil {
		panic(err)
	}
	return analyst
}

// mustCreateSupplier is a helper for tests - panics on validation error
func mustCreateSupplier(id, name, supplierType string) *entities.Supplier {
	supplier, err := entities.NewSupplier(entities.SupplierID(id), name, supplierType, 30, 4.2)
	if err != nil {
		panic(err)
	}
	return supplier
}

// mustCreateSKU is a helper for tests - panics on validation error
func mustCreateSKU(code, name, category string, unitCost float64) *entities.SKU {
	sku, err := entities.NewSKU(
		entities.SKUCode(code), name, category,
		decimal.NewFromFloat(unitCost), "UN", true,
	)
	if err != nil {
		panic(err)
	}
	return sku
}

// mustCreateOrder is a helper for tests - panics on validation error
func mustCreateOrder(
	id string, date time.Time, supplierID, analystID string,
	numSKUs int, totalCost, saleAmount float64, status entities.OrderStatus,
) *entities.PurchaseOrder {
	order, err := entities.NewPurchaseOrder(
		entities.OrderID(id), date,
		entities.SupplierID(supplierID), entities.AnalystID(analystID),
		numSKUs,
		decimal.NewFromFloat(totalCost), decimal.NewFromFloat(saleAmount),
		status, date.AddDate(0, 0, 7),
	)
	if err != nil {
		panic(err)
	}
	return order
}

// mustCreateLine is a helper for tests - panics on validation error
func mustCreateLine(orderID, sku string, quantity int, unitPrice float64) *entities.OrderLine {
	price := decimal.NewFromFloat(unitPrice)
	line, err := entities.NewOrderLine(
		entities.OrderID(orderID), entities.SKUCode(sku),
		quantity, price, price.Mul(decimal.NewFromInt(int64(quantity))),
	)
	if err != nil {
		panic(err)
	}
	return line
}

// mustCreateInvoice is a helper for tests - panics on validation error
func mustCreateInvoice(
	id, orderID, analystID string, date time.Time,
	assigned, completed, hasError bool,
) *entities.Invoice {
	errorType := ""
	if hasError {
		errorType = "Datos faltantes"
	}
	invoice, err := entities.NewInvoice(
		entities.InvoiceID(id), entities.OrderID(orderID), entities.AnalystID(analystID),
		date, date.AddDate(0, 0, 2), 2,
		decimal.NewFromInt(1000),
		assigned, completed, hasError, errorType,
	)
	if err != nil {
		panic(err)
	}
	return invoice
}

// BuildRetailTestData loads a small deterministic B2B dataset into
// memory repositories. It spans two ISO weeks (2024-W06 and 2024-W07),
// three analysts (one with no orders) and two product categories.
func BuildRetailTestData() services.Repositories {
	week6 := time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC)  // 2024-W06
	week7 := time.Date(2024, 2, 13, 0, 0, 0, 0, time.UTC) // 2024-W07

	analysts := []*entities.Analyst{
		mustCreateAnalyst("AN001", "Carolina Soto", "Bebidas"),
		mustCreateAnalyst("AN002", "Felipe Rojas", ""),
		mustCreateAnalyst("AN003", "Javiera Díaz", ""),
	}

	suppliers := []*entities.Supplier{
		mustCreateSupplier("SUP0001", "Distribuidora Andina", "Nacional"),
		mustCreateSupplier("SUP0002", "Importadora Pacífico", "Internacional"),
	}

	skus := []*entities.SKU{
		mustCreateSKU("SKU000001", "Bidón Agua 20L", "Bebidas", 2500),
		mustCreateSKU("SKU000002", "Caja Jugo Natural", "Bebidas", 4800),
		mustCreateSKU("SKU000003", "Pack Papel Oficina", "Suministros de oficina", 12000),
		mustCreateSKU("SKU000004", "Kit Limpieza Industrial", "Productos de limpieza", 35000),
	}

	// AN003 places no orders and should surface with undefined averages
	orders := []*entities.PurchaseOrder{
		mustCreateOrder("OC000001", week6, "SUP0001", "AN001", 2, 100000, 120000, entities.OrderCompleted),
		mustCreateOrder("OC000002", week6, "SUP0001", "AN001", 30, 400000, 440000, entities.OrderCompleted),
		mustCreateOrder("OC000003", week7, "SUP0002", "AN002", 60, 900000, 990000, entities.OrderCompleted),
		mustCreateOrder("OC000004", week7, "SUP0002", "AN002", 5, 50000, 62500, entities.OrderPending),
	}

	lines := []*entities.OrderLine{
		mustCreateLine("OC000001", "SKU000001", 20, 2500),
		mustCreateLine("OC000001", "SKU000002", 10, 4800),
		mustCreateLine("OC000002", "SKU000002", 50, 4800),
		mustCreateLine("OC000003", "SKU000003", 40, 12000),
		mustCreateLine("OC000003", "SKU000004", 12, 35000),
		mustCreateLine("OC000004", "SKU000004", 1, 35000),
	}

	invoices := []*entities.Invoice{
		mustCreateInvoice("INV000001", "OC000001", "AN001", week6, true, true, false),
		mustCreateInvoice("INV000002", "OC000002", "AN001", week7, true, true, false),
		mustCreateInvoice("INV000003", "OC000003", "AN002", week7, true, true, true),
		mustCreateInvoice("INV000004", "OC000004", "AN002", week7, true, false, false),
	}

	analystRepo := memory.NewAnalystRepository(len(analysts))
	if err := analystRepo.LoadAnalysts(analysts); err != nil {
		panic(err)
	}
	supplierRepo := memory.NewSupplierRepository(len(suppliers))
	if err := supplierRepo.LoadSuppliers(suppliers); err != nil {
		panic(err)
	}
	skuRepo := memory.NewSKURepository(len(skus))
	if err := skuRepo.LoadSKUs(skus); err != nil {
		panic(err)
	}
	orderRepo := memory.NewOrderRepository(len(orders))
	if err := orderRepo.LoadOrders(orders); err != nil {
		panic(err)
	}
	lineRepo := memory.NewOrderLineRepository(len(lines))
	if err := lineRepo.LoadLines(lines); err != nil {
		panic(err)
	}
	invoiceRepo := memory.NewInvoiceRepository(len(invoices))
	if err := invoiceRepo.LoadInvoices(invoices); err != nil {
		panic(err)
	}

	return services.Repositories{
		Analysts:  analystRepo,
		Suppliers: supplierRepo,
		SKUs:      skuRepo,
		Orders:    orderRepo,
		Lines:     lineRepo,
		Invoices:  invoiceRepo,
	}
}

package main

import (
	"log/slog"
	"path/filepath"

	"github.com/mvidal/opskpi/pkg/application/services"
	csvrepo "github.com/mvidal/opskpi/pkg/infrastructure/repositories/csv"
	"github.com/mvidal/opskpi/pkg/infrastructure/repositories/memory"
)

// loadRepositories reads the six input CSVs from dataDir and loads
// them into memory repositories.
func loadRepositories(dataDir string) (services.Repositories, error) {
	var repos services.Repositories
	loader := csvrepo.NewLoader()

	analysts, err := loader.LoadAnalysts(filepath.Join(dataDir, "analysts.csv"))
	if err != nil {
		return repos, err
	}
	suppliers, err := loader.LoadSuppliers(filepath.Join(dataDir, "suppliers.csv"))
	if err != nil {
		return repos, err
	}
	skus, err := loader.LoadSKUs(filepath.Join(dataDir, "skus.csv"))
	if err != nil {
		return repos, err
	}
	orders, err := loader.LoadOrders(filepath.Join(dataDir, "purchase_orders.csv"))
	if err != nil {
		return repos, err
	}
	lines, err := loader.LoadOrderLines(filepath.Join(dataDir, "order_lines.csv"))
	if err != nil {
		return repos, err
	}
	invoices, err := loader.LoadInvoices(filepath.Join(dataDir, "invoices.csv"))
	if err != nil {
		return repos, err
	}

	analystRepo := memory.NewAnalystRepository(len(analysts))
	if err := analystRepo.LoadAnalysts(analysts); err != nil {
		return repos, err
	}
	supplierRepo := memory.NewSupplierRepository(len(suppliers))
	if err := supplierRepo.LoadSuppliers(suppliers); err != nil {
		return repos, err
	}
	skuRepo := memory.NewSKURepository(len(skus))
	if err := skuRepo.LoadSKUs(skus); err != nil {
		return repos, err
	}
	orderRepo := memory.NewOrderRepository(len(orders))
	if err := orderRepo.LoadOrders(orders); err != nil {
		return repos, err
	}
	lineRepo := memory.NewOrderLineRepository(len(lines))
	if err := lineRepo.LoadLines(lines); err != nil {
		return repos, err
	}
	invoiceRepo := memory.NewInvoiceRepository(len(invoices))
	if err := invoiceRepo.LoadInvoices(invoices); err != nil {
		return repos, err
	}

	slog.Info("input data loaded",
		"dir", dataDir,
		"analysts", len(analysts),
		"suppliers", len(suppliers),
		"skus", len(skus),
		"orders", len(orders),
		"order_lines", len(lines),
		"invoices", len(invoices))

	return services.Repositories{
		Analysts:  analystRepo,
		Suppliers: supplierRepo,
		SKUs:      skuRepo,
		Orders:    orderRepo,
		Lines:     lineRepo,
		Invoices:  invoiceRepo,
	}, nil
}

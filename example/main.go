package main

import (
	"context"
	"fmt"

	"github.com/mvidal/opskpi/pkg/application/services"
	"github.com/mvidal/opskpi/pkg/config"
	"github.com/mvidal/opskpi/pkg/infrastructure/datagen"
	"github.com/mvidal/opskpi/pkg/infrastructure/repositories/memory"
	"github.com/mvidal/opskpi/pkg/interfaces/cli/output"
)

func main() {
	ctx := context.Background()

	// Generate a small reproducible dataset
	generator, err := datagen.New(datagen.Config{
		Suppliers: 10,
		Analysts:  4,
		SKUs:      80,
		Orders:    300,
		Seed:      7,
		DateStart: datagen.DefaultConfig().DateStart,
		DateEnd:   datagen.DefaultConfig().DateEnd,
	})
	if err != nil {
		fmt.Printf("❌ generator setup failed: %v\n", err)
		return
	}
	dataset, err := generator.Generate()
	if err != nil {
		fmt.Printf("❌ generation failed: %v\n", err)
		return
	}

	// Load it into memory repositories
	analystRepo := memory.NewAnalystRepository(len(dataset.Analysts))
	_ = analystRepo.LoadAnalysts(dataset.Analysts)
	supplierRepo := memory.NewSupplierRepository(len(dataset.Suppliers))
	_ = supplierRepo.LoadSuppliers(dataset.Suppliers)
	skuRepo := memory.NewSKURepository(len(dataset.SKUs))
	_ = skuRepo.LoadSKUs(dataset.SKUs)
	orderRepo := memory.NewOrderRepository(len(dataset.Orders))
	_ = orderRepo.LoadOrders(dataset.Orders)
	lineRepo := memory.NewOrderLineRepository(len(dataset.Lines))
	_ = lineRepo.LoadLines(dataset.Lines)
	invoiceRepo := memory.NewInvoiceRepository(len(dataset.Invoices))
	_ = invoiceRepo.LoadInvoices(dataset.Invoices)

	service, err := services.NewReportService(config.Default(), services.Repositories{
		Analysts:  analystRepo,
		Suppliers: supplierRepo,
		SKUs:      skuRepo,
		Orders:    orderRepo,
		Lines:     lineRepo,
		Invoices:  invoiceRepo,
	})
	if err != nil {
		fmt.Printf("❌ service setup failed: %v\n", err)
		return
	}

	// Assemble the report for the latest ISO week in the data
	report, err := service.AssembleLatest(ctx)
	if err != nil {
		fmt.Printf("❌ report assembly failed: %v\n", err)
		return
	}

	if err := output.WriteReport(report, output.Config{Format: "text"}); err != nil {
		fmt.Printf("❌ rendering failed: %v\n", err)
	}
}

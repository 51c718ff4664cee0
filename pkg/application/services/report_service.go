// Package services wires the domain engines and repositories into the
// operations exposed to the CLI and to library consumers.
package services

import (
	"context"
	"sync"
	"time"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mvidal/opskpi/pkg/application/dto"
	"github.com/mvidal/opskpi/pkg/config"
	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/domain/repositories"
	"github.com/mvidal/opskpi/pkg/financial"
	"github.com/mvidal/opskpi/pkg/reliability"
	"github.com/mvidal/opskpi/pkg/workload"
)

// Repositories bundles the data sources a ReportService reads from
type Repositories struct {
	Analysts  repositories.AnalystRepository
	Suppliers repositories.SupplierRepository
	SKUs      repositories.SKURepository
	Orders    repositories.OrderRepository
	Lines     repositories.OrderLineRepository
	Invoices  repositories.InvoiceRepository
}

// ReportService assembles full KPI reports from loaded data
type ReportService struct {
	cfg   *config.Config
	repos Repositories

	workload    *workload.Engine
	reliability *reliability.Monitor
	financial   *financial.Engine
}

// NewReportService validates the configuration and builds the three
// engines. A config that fails validation is rejected here, before any
// data is read.
func NewReportService(cfg *config.Config, repos Repositories) (*ReportService, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	bands, err := cfg.BandTable()
	if err != nil {
		return nil, err
	}
	monitor, err := reliability.New(cfg.Thresholds())
	if err != nil {
		return nil, err
	}
	finEngine, err := financial.New(cfg.Cutoffs(), cfg.Margin.LowPct, cfg.Margin.HighPct)
	if err != nil {
		return nil, err
	}

	return &ReportService{
		cfg:         cfg,
		repos:       repos,
		workload:    workload.New(bands),
		reliability: monitor,
		financial:   finEngine,
	}, nil
}

// AssembleLatest assembles the report for the most recent ISO week
// present in the invoice data.
func (s *ReportService) AssembleLatest(ctx context.Context) (*dto.SummaryReport, error) {
	invoices, err := s.repos.Invoices.GetAllInvoices()
	if err != nil {
		return nil, err
	}
	period, ok := reliability.LatestPeriod(invoices)
	if !ok {
		return nil, goerr.New("no invoices loaded, cannot determine reporting period")
	}
	return s.Assemble(ctx, period)
}

// Assemble runs all three engines over the loaded data and bundles the
// results for the given period. The engines are independent and run
// concurrently.
func (s *ReportService) Assemble(ctx context.Context, period entities.Period) (*dto.SummaryReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "report assembly cancelled")
	}

	orders, err := s.repos.Orders.GetAllOrders()
	if err != nil {
		return nil, err
	}
	lines, err := s.repos.Lines.GetAllLines()
	if err != nil {
		return nil, err
	}
	analysts, err := s.repos.Analysts.GetAllAnalysts()
	if err != nil {
		return nil, err
	}
	suppliers, err := s.repos.Suppliers.GetAllSuppliers()
	if err != nil {
		return nil, err
	}
	skus, err := s.repos.SKUs.GetAllSKUs()
	if err != nil {
		return nil, err
	}
	invoices, err := s.repos.Invoices.GetInvoicesByPeriod(period)
	if err != nil {
		return nil, err
	}

	report := &dto.SummaryReport{
		GeneratedAt:   time.Now(),
		Period:        period,
		TotalOrders:   len(orders),
		TotalInvoices: len(invoices),
		TotalAnalysts: len(analysts),
	}

	var wg sync.WaitGroup
	var workloadErr error

	wg.Add(3)

	go func() {
		defer wg.Done()
		report.Workload, workloadErr = s.workload.ComputeWorkload(orders, analysts)
		report.Specialization = s.workload.ComputeCategorySpecialization(orders, lines, skus)
	}()

	go func() {
		defer wg.Done()
		periodReport := s.reliability.ComputePeriod(invoices, period)
		team := s.reliability.Summarize(periodReport)
		report.Reliability = periodReport.Analysts
		report.Team = &team
	}()

	go func() {
		defer wg.Done()
		report.Margins = s.financial.ComputeMarginMetrics(orders)
		report.Concentration = s.financial.ComputeConcentration(orders)
		report.Suppliers = s.financial.ComputeSupplierMetrics(orders, suppliers)
		report.Categories = s.financial.ComputeCategoryMetrics(orders, lines, skus)
		report.ValueMatrix = financial.ComputeValueMatrix(report.Categories)
		report.Opportunities = s.financial.FindMarginOpportunities(orders, s.cfg.Margin.OpportunityThresholdPct)
	}()

	wg.Wait()

	if workloadErr != nil {
		return nil, goerr.Wrap(workloadErr, "workload aggregation failed")
	}
	return report, nil
}

// ReliabilityTrend reports one analyst's reliability KPIs over the given
// number of weeks ending at the most recent week in the data.
func (s *ReportService) ReliabilityTrend(
	ctx context.Context,
	analystID entities.AnalystID,
	weeks int,
) ([]*reliability.PeriodReport, error) {
	if err := ctx.Err(); err != nil {
		return nil, goerr.Wrap(err, "trend computation cancelled")
	}
	invoices, err := s.repos.Invoices.GetAllInvoices()
	if err != nil {
		return nil, err
	}
	return s.reliability.Trend(invoices, analystID, weeks), nil
}

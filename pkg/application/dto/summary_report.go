// Package dto defines the data transfer objects returned by the
// application services.
package dto

import (
	"time"

	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/financial"
	"github.com/mvidal/opskpi/pkg/reliability"
	"github.com/mvidal/opskpi/pkg/workload"
)

// SummaryReport bundles the output of all three engines for one
// reporting period.
type SummaryReport struct {
	GeneratedAt time.Time       `json:"generated_at"`
	Period      entities.Period `json:"period"`

	// Input sizes, for the report header
	TotalOrders   int `json:"total_orders"`
	TotalInvoices int `json:"total_invoices"`
	TotalAnalysts int `json:"total_analysts"`

	Workload       *workload.Report                  `json:"workload"`
	Specialization []workload.CategorySpecialization `json:"specialization"`
	Reliability    []reliability.AnalystKPIs         `json:"reliability"`
	Team           *reliability.TeamSummary          `json:"team"`
	Margins        *financial.MarginMetrics          `json:"margins"`
	Concentration  *financial.Concentration          `json:"concentration"`
	Suppliers      []financial.SupplierMetrics       `json:"suppliers"`
	Categories     []financial.CategoryMetrics       `json:"categories"`
	ValueMatrix    []financial.ValueCell             `json:"value_matrix"`
	Opportunities  []financial.MarginOpportunity     `json:"opportunities"`
}

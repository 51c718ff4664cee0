package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mvidal/opskpi/pkg/application/dto"
)

const rule = "────────────────────────────────────────────────────────────────"

// writeText renders a human-readable report
func writeText(w io.Writer, report *dto.SummaryReport) error {
	var b strings.Builder

	b.WriteString("═══════════════════════════════════════════════════════════════\n")
	b.WriteString("                 OPERATIONS KPI REPORT\n")
	b.WriteString("═══════════════════════════════════════════════════════════════\n\n")

	fmt.Fprintf(&b, "Period:    %s\n", report.Period)
	fmt.Fprintf(&b, "Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(&b, "Orders: %d   Invoices in period: %d   Analysts: %d\n\n",
		report.TotalOrders, report.TotalInvoices, report.TotalAnalysts)

	writeWorkloadSection(&b, report)
	writeReliabilitySection(&b, report)
	writeFinancialSection(&b, report)

	_, err := io.WriteString(w, b.String())
	return err
}

// writeTextSection renders a single engine section
func writeTextSection(w io.Writer, report *dto.SummaryReport, section string) error {
	var b strings.Builder
	switch section {
	case "workload":
		writeWorkloadSection(&b, report)
	case "reliability":
		writeReliabilitySection(&b, report)
	case "financial":
		writeFinancialSection(&b, report)
	default:
		return goerr.New("unknown report section", goerr.V("section", section))
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func writeWorkloadSection(b *strings.Builder, report *dto.SummaryReport) {
	b.WriteString("📊 WORKLOAD\n")
	b.WriteString(rule + "\n")

	for _, a := range report.Workload.Analysts {
		fmt.Fprintf(b, "%-8s %-24s Orders: %4d  SKUs: %6d  Weighted: %8.1f\n",
			a.AnalystID, a.AnalystName, a.TotalOrders, a.TotalSKUs, a.WeightedWorkload)
		fmt.Fprintf(b, "  Avg SKUs/order: %-8s Modal band: %-12s Specialization: %s%%\n",
			a.AvgSKUsPerOrder, a.ModalBand, a.SpecializationRatio)
	}
	b.WriteString("\n")

	bal := report.Workload.Balance
	b.WriteString("  Balance\n")
	fmt.Fprintf(b, "    Max: %.1f  Min: %.1f  Mean: %.1f  StdDev: %.1f\n",
		bal.MaxWorkload, bal.MinWorkload, bal.MeanWorkload, bal.StdDevWorkload)
	fmt.Fprintf(b, "    Imbalance ratio: %s   Coefficient of variation: %s%%\n\n",
		bal.ImbalanceRatio, bal.CoefficientOfVariation)

	b.WriteString("  Complexity distribution\n")
	for _, d := range report.Workload.Distribution {
		fmt.Fprintf(b, "    %-12s (×%.1f)  Orders: %5d (%s%%)  Mean SKUs: %s  Max: %d\n",
			d.Band, d.Weight, d.Orders, d.PctOrders, d.MeanSKUs, d.MaxSKUs)
	}
	b.WriteString("\n")

	if len(report.Specialization) > 0 {
		b.WriteString("  Category specialization\n")
		for _, s := range report.Specialization {
			fmt.Fprintf(b, "    %-8s %-28s %s%% of orders, %d categories\n",
				s.AnalystID, s.PrimaryCategory, s.PrimaryCategoryPct, s.CategoriesHandled)
		}
		b.WriteString("\n")
	}
}

func writeReliabilitySection(b *strings.Builder, report *dto.SummaryReport) {
	fmt.Fprintf(b, "✅ RELIABILITY — %s\n", report.Period)
	b.WriteString(rule + "\n")

	for _, kpi := range report.Reliability {
		fmt.Fprintf(b, "%-8s Volume: %4d   Completion: %6s%% [%s]   Quality: %6s%% [%s]\n",
			kpi.AnalystID, kpi.Volume,
			kpi.Completion, kpi.CompletionStatus,
			kpi.Quality, kpi.QualityStatus)
	}
	b.WriteString("\n")

	team := report.Team
	fmt.Fprintf(b, "  Team: %d analysts, %d records, avg volume %s, avg quality %s%%\n",
		team.TotalAnalysts, team.TotalVolume, team.AvgVolume, team.AvgQuality)
	if len(team.LowQuality) > 0 {
		fmt.Fprintf(b, "  ⚠ Low quality: %v\n", team.LowQuality)
	}
	if len(team.LowVolume) > 0 {
		fmt.Fprintf(b, "  ⚠ Low volume: %v\n", team.LowVolume)
	}
	b.WriteString("\n")
}

func writeFinancialSection(b *strings.Builder, report *dto.SummaryReport) {
	b.WriteString("💰 FINANCIAL\n")
	b.WriteString(rule + "\n")

	m := report.Margins
	fmt.Fprintf(b, "  Purchases: %s   Sales: %s   Margin: %s\n",
		m.TotalCost.StringFixed(2), m.TotalSale.StringFixed(2), m.TotalMargin.StringFixed(2))
	fmt.Fprintf(b, "  Margin %%: avg %s  median %s  stddev %s\n",
		m.AvgMarginPct, m.MedianMarginPct, m.StdDevMarginPct)
	fmt.Fprintf(b, "  Orders below low cutoff: %d   above high cutoff: %d\n",
		m.LowMarginOrders, m.HighMarginOrders)
	if len(m.UndefinedMarginOrders) > 0 {
		fmt.Fprintf(b, "  ⚠ Orders with undefined margin (zero cost): %v\n", m.UndefinedMarginOrders)
	}
	b.WriteString("\n")

	c := report.Concentration
	fmt.Fprintf(b, "  Supplier concentration: %d suppliers, top 5 hold %s%%, HHI %s (%s)\n\n",
		c.TotalSuppliers, c.Top5Pct, c.HHI, c.Level)

	if len(report.Suppliers) > 0 {
		b.WriteString("  Top suppliers by spend\n")
		limit := len(report.Suppliers)
		if limit > 10 {
			limit = 10
		}
		for _, s := range report.Suppliers[:limit] {
			fmt.Fprintf(b, "    %-8s %-30s Orders: %4d  Spend: %14s (%s%%)  Margin: %s%%\n",
				s.SupplierID, s.SupplierName, s.NumOrders,
				s.TotalPurchases.StringFixed(2), s.PctPurchases, s.AvgMarginPct)
		}
		b.WriteString("\n")
	}

	if len(report.Categories) > 0 {
		b.WriteString("  Categories\n")
		for _, cat := range report.Categories {
			fmt.Fprintf(b, "    %-28s Orders: %4d  Sales: %14s (%s%%)  Margin: %s%%\n",
				cat.Category, cat.NumOrders, cat.TotalSales.StringFixed(2),
				cat.PctSales, cat.AvgMarginPct)
		}
		b.WriteString("\n")
	}

	if len(report.ValueMatrix) > 0 {
		b.WriteString("  Value matrix\n")
		for _, cell := range report.ValueMatrix {
			fmt.Fprintf(b, "    %-28s volume Q%d, margin Q%d → %s\n",
				cell.Category, cell.VolumeQuartile, cell.MarginQuartile, cell.Action)
		}
		b.WriteString("\n")
	}

	if len(report.Opportunities) > 0 {
		b.WriteString("  Margin opportunities\n")
		limit := len(report.Opportunities)
		if limit > 10 {
			limit = 10
		}
		for _, o := range report.Opportunities[:limit] {
			fmt.Fprintf(b, "    %-10s %-8s margin %.2f%%, potential +%s\n",
				o.OrderID, o.SupplierID, o.MarginPct, o.PotentialAdditionalMargin.StringFixed(2))
		}
		b.WriteString("\n")
	}
}

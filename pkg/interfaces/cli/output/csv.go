package output

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mvidal/opskpi/pkg/application/dto"
)

// writeCSVDir writes one CSV per report section into dir
func writeCSVDir(report *dto.SummaryReport, dir string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}

	if err := writeWorkloadCSV(report, filepath.Join(dir, "workload.csv")); err != nil {
		return err
	}
	if err := writeReliabilityCSV(report, filepath.Join(dir, "reliability.csv")); err != nil {
		return err
	}
	if err := writeSuppliersCSV(report, filepath.Join(dir, "suppliers.csv")); err != nil {
		return err
	}
	if err := writeCategoriesCSV(report, filepath.Join(dir, "categories.csv")); err != nil {
		return err
	}
	return writeOpportunitiesCSV(report, filepath.Join(dir, "opportunities.csv"))
}

// writeCSVSection writes only the files belonging to one section
func writeCSVSection(report *dto.SummaryReport, section, dir string) error {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return goerr.Wrap(err, "failed to create output directory", goerr.V("dir", dir))
	}

	switch section {
	case "workload":
		return writeWorkloadCSV(report, filepath.Join(dir, "workload.csv"))
	case "reliability":
		return writeReliabilityCSV(report, filepath.Join(dir, "reliability.csv"))
	case "financial":
		if err := writeSuppliersCSV(report, filepath.Join(dir, "suppliers.csv")); err != nil {
			return err
		}
		if err := writeCategoriesCSV(report, filepath.Join(dir, "categories.csv")); err != nil {
			return err
		}
		return writeOpportunitiesCSV(report, filepath.Join(dir, "opportunities.csv"))
	default:
		return goerr.New("unknown report section", goerr.V("section", section))
	}
}

func writeRows(filename string, header []string, rows [][]string) error {
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

func writeWorkloadCSV(report *dto.SummaryReport, filename string) error {
	rows := make([][]string, 0, len(report.Workload.Analysts))
	for _, a := range report.Workload.Analysts {
		rows = append(rows, []string{
			string(a.AnalystID), a.AnalystName,
			strconv.Itoa(a.TotalOrders), strconv.Itoa(a.TotalSKUs),
			fmt.Sprintf("%.2f", a.WeightedWorkload),
			a.AvgSKUsPerOrder.String(), a.ModalBand, a.SpecializationRatio.String(),
		})
	}
	return writeRows(filename, []string{
		"analyst_id", "analyst_name", "total_orders", "total_skus",
		"weighted_workload", "avg_skus_per_order", "modal_band", "specialization_pct",
	}, rows)
}

func writeReliabilityCSV(report *dto.SummaryReport, filename string) error {
	rows := make([][]string, 0, len(report.Reliability))
	for _, kpi := range report.Reliability {
		rows = append(rows, []string{
			report.Period.String(), string(kpi.AnalystID),
			strconv.Itoa(kpi.Volume),
			kpi.Completion.String(), kpi.CompletionStatus.String(),
			kpi.Quality.String(), kpi.QualityStatus.String(),
		})
	}
	return writeRows(filename, []string{
		"period", "analyst_id", "volume",
		"completion_pct", "completion_status", "quality_pct", "quality_status",
	}, rows)
}

func writeSuppliersCSV(report *dto.SummaryReport, filename string) error {
	rows := make([][]string, 0, len(report.Suppliers))
	for _, s := range report.Suppliers {
		rows = append(rows, []string{
			string(s.SupplierID), s.SupplierName, s.SupplierType,
			strconv.Itoa(s.NumOrders),
			s.TotalPurchases.StringFixed(2), s.TotalSales.StringFixed(2),
			s.TotalMargin.StringFixed(2), s.AvgOrderValue.StringFixed(2),
			s.AvgMarginPct.String(), s.PctPurchases.String(),
		})
	}
	return writeRows(filename, []string{
		"supplier_id", "supplier_name", "supplier_type", "num_orders",
		"total_purchases", "total_sales", "total_margin", "avg_order_value",
		"avg_margin_pct", "pct_purchases",
	}, rows)
}

func writeCategoriesCSV(report *dto.SummaryReport, filename string) error {
	actions := make(map[string]string, len(report.ValueMatrix))
	quartiles := make(map[string][2]int, len(report.ValueMatrix))
	for _, cell := range report.ValueMatrix {
		actions[cell.Category] = cell.Action.String()
		quartiles[cell.Category] = [2]int{cell.VolumeQuartile, cell.MarginQuartile}
	}

	rows := make([][]string, 0, len(report.Categories))
	for _, c := range report.Categories {
		q := quartiles[c.Category]
		rows = append(rows, []string{
			c.Category, strconv.Itoa(c.NumOrders),
			c.TotalSales.StringFixed(2), c.PctSales.String(),
			c.AvgOrderValue.StringFixed(2), c.AvgMarginPct.String(),
			strconv.Itoa(q[0]), strconv.Itoa(q[1]), actions[c.Category],
		})
	}
	return writeRows(filename, []string{
		"category", "num_orders", "total_sales", "pct_sales",
		"avg_order_value", "avg_margin_pct",
		"volume_quartile", "margin_quartile", "action",
	}, rows)
}

func writeOpportunitiesCSV(report *dto.SummaryReport, filename string) error {
	rows := make([][]string, 0, len(report.Opportunities))
	for _, o := range report.Opportunities {
		rows = append(rows, []string{
			string(o.OrderID), string(o.SupplierID),
			o.TotalCost.StringFixed(2),
			fmt.Sprintf("%.2f", o.MarginPct),
			fmt.Sprintf("%.2f", o.ImprovementPotential),
			o.PotentialAdditionalMargin.StringFixed(2),
		})
	}
	return writeRows(filename, []string{
		"order_id", "supplier_id", "total_cost",
		"margin_pct", "improvement_potential_pts", "potential_additional_margin",
	}, rows)
}

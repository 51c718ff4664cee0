package output

import (
	"encoding/json"
	"io"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mvidal/opskpi/pkg/application/dto"
)

// writeJSON renders the full report as indented JSON. Undefined ratios
// marshal as null rather than 0.
func writeJSON(w io.Writer, report *dto.SummaryReport) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(report); err != nil {
		return goerr.Wrap(err, "failed to encode report as JSON")
	}
	return nil
}

// writeJSONSection renders a single engine section as indented JSON
func writeJSONSection(w io.Writer, report *dto.SummaryReport, section string) error {
	var payload any
	switch section {
	case "workload":
		payload = map[string]any{
			"period":         report.Period,
			"workload":       report.Workload,
			"specialization": report.Specialization,
		}
	case "reliability":
		payload = map[string]any{
			"period":      report.Period,
			"reliability": report.Reliability,
			"team":        report.Team,
		}
	case "financial":
		payload = map[string]any{
			"period":        report.Period,
			"margins":       report.Margins,
			"concentration": report.Concentration,
			"suppliers":     report.Suppliers,
			"categories":    report.Categories,
			"value_matrix":  report.ValueMatrix,
			"opportunities": report.Opportunities,
		}
	default:
		return goerr.New("unknown report section", goerr.V("section", section))
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(payload); err != nil {
		return goerr.Wrap(err, "failed to encode report section as JSON")
	}
	return nil
}

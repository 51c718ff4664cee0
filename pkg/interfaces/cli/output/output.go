// Package output renders assembled KPI reports as text, JSON or CSV.
package output

import (
	"io"
	"os"

	"github.com/m-mizutani/goerr/v2"

	"github.com/mvidal/opskpi/pkg/application/dto"
)

// Config controls where and how a report is written
type Config struct {
	Format     string // text, json or csv
	OutputFile string // destination for text and json, empty means stdout
	OutputDir  string // destination directory for csv, empty means cwd
}

// WriteReport renders the report in the configured format
func WriteReport(report *dto.SummaryReport, config Config) error {
	switch config.Format {
	case "text", "":
		return writeToFile(config.OutputFile, func(w io.Writer) error {
			return writeText(w, report)
		})
	case "json":
		return writeToFile(config.OutputFile, func(w io.Writer) error {
			return writeJSON(w, report)
		})
	case "csv":
		return writeCSVDir(report, config.OutputDir)
	default:
		return goerr.New("unsupported output format (expected text, json or csv)",
			goerr.V("format", config.Format))
	}
}

// WriteSection renders one engine's slice of the report. Section is
// "workload", "reliability" or "financial".
func WriteSection(report *dto.SummaryReport, section string, config Config) error {
	switch config.Format {
	case "text", "":
		return writeToFile(config.OutputFile, func(w io.Writer) error {
			return writeTextSection(w, report, section)
		})
	case "json":
		return writeToFile(config.OutputFile, func(w io.Writer) error {
			return writeJSONSection(w, report, section)
		})
	case "csv":
		return writeCSVSection(report, section, config.OutputDir)
	default:
		return goerr.New("unsupported output format (expected text, json or csv)",
			goerr.V("format", config.Format))
	}
}

func writeToFile(path string, render func(io.Writer) error) error {
	if path == "" {
		return render(os.Stdout)
	}
	file, err := os.Create(path)
	if err != nil {
		return goerr.Wrap(err, "failed to create output file", goerr.V("path", path))
	}
	defer file.Close()
	return render(file)
}

package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mvidal/opskpi/pkg/application/dto"
	"github.com/mvidal/opskpi/pkg/application/services"
	"github.com/mvidal/opskpi/pkg/config"
	"github.com/mvidal/opskpi/pkg/domain/entities"
	"github.com/mvidal/opskpi/pkg/interfaces/cli/output"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Assemble the full KPI report (workload, reliability, financial)",
	RunE:  runReport,
}

var (
	reportDataDir    string
	reportConfigPath string
	reportYear       int
	reportWeek       int
	reportFormat     string
	reportOutput     string
	reportOutputDir  string
)

func init() {
	reportCmd.Flags().StringVarP(&reportDataDir, "data", "d", "data", "Directory holding the input CSV files")
	reportCmd.Flags().StringVarP(&reportConfigPath, "config", "c", "", "Path to YAML configuration (defaults apply when empty)")
	reportCmd.Flags().IntVar(&reportYear, "year", 0, "ISO year of the reporting week (0 = latest in data)")
	reportCmd.Flags().IntVar(&reportWeek, "week", 0, "ISO week of the reporting period (0 = latest in data)")
	reportCmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Output format (text, json, csv)")
	reportCmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file for text/json (default stdout)")
	reportCmd.Flags().StringVar(&reportOutputDir, "output-dir", "reports", "Output directory for csv format")

	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, _ []string) error {
	report, err := assembleReport(cmd.Context(),
		reportDataDir, reportConfigPath, reportYear, reportWeek)
	if err != nil {
		return err
	}
	return output.WriteReport(report, output.Config{
		Format:     reportFormat,
		OutputFile: reportOutput,
		OutputDir:  reportOutputDir,
	})
}

// assembleReport loads config and data, builds the service and runs
// the engines for the requested or latest period.
func assembleReport(
	ctx context.Context,
	dataDir, configPath string,
	year, week int,
) (*dto.SummaryReport, error) {
	cfg, err := loadConfig(configPath)
	if err != nil {
		return nil, err
	}
	repos, err := loadRepositories(dataDir)
	if err != nil {
		return nil, err
	}
	service, err := services.NewReportService(cfg, repos)
	if err != nil {
		return nil, err
	}

	if year != 0 && week != 0 {
		period := entities.Period{Year: year, Week: week}
		slog.Debug("assembling report", "period", period.String())
		return service.Assemble(ctx, period)
	}
	slog.Debug("assembling report for latest period in data")
	return service.AssembleLatest(ctx)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

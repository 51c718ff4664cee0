package main

import (
	"github.com/spf13/cobra"

	"github.com/mvidal/opskpi/pkg/interfaces/cli/output"
)

// The single-engine subcommands share the report flags and render one
// section of the assembled report.

var workloadCmd = &cobra.Command{
	Use:   "workload",
	Short: "Analyst workload and complexity distribution",
	RunE:  sectionRunner("workload"),
}

var reliabilityCmd = &cobra.Command{
	Use:   "reliability",
	Short: "Weekly invoice processing KPIs (volume, completion, quality)",
	RunE:  sectionRunner("reliability"),
}

var financialCmd = &cobra.Command{
	Use:   "financial",
	Short: "Margins, supplier concentration and category value matrix",
	RunE:  sectionRunner("financial"),
}

func init() {
	for _, cmd := range []*cobra.Command{workloadCmd, reliabilityCmd, financialCmd} {
		cmd.Flags().StringVarP(&reportDataDir, "data", "d", "data", "Directory holding the input CSV files")
		cmd.Flags().StringVarP(&reportConfigPath, "config", "c", "", "Path to YAML configuration (defaults apply when empty)")
		cmd.Flags().IntVar(&reportYear, "year", 0, "ISO year of the reporting week (0 = latest in data)")
		cmd.Flags().IntVar(&reportWeek, "week", 0, "ISO week of the reporting period (0 = latest in data)")
		cmd.Flags().StringVarP(&reportFormat, "format", "f", "text", "Output format (text, json, csv)")
		cmd.Flags().StringVarP(&reportOutput, "output", "o", "", "Output file for text/json (default stdout)")
		cmd.Flags().StringVar(&reportOutputDir, "output-dir", "reports", "Output directory for csv format")
		rootCmd.AddCommand(cmd)
	}
}

func sectionRunner(section string) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		report, err := assembleReport(cmd.Context(),
			reportDataDir, reportConfigPath, reportYear, reportWeek)
		if err != nil {
			return err
		}
		return output.WriteSection(report, section, output.Config{
			Format:     reportFormat,
			OutputFile: reportOutput,
			OutputDir:  reportOutputDir,
		})
	}
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mvidal/opskpi/pkg/application/services"
	"github.com/mvidal/opskpi/pkg/domain/entities"
)

var trendCmd = &cobra.Command{
	Use:   "trend",
	Short: "Weekly reliability KPIs for one analyst over recent weeks",
	RunE:  runTrend,
}

var (
	trendDataDir    string
	trendConfigPath string
	trendAnalyst    string
	trendWeeks      int
)

func init() {
	trendCmd.Flags().StringVarP(&trendDataDir, "data", "d", "data", "Directory holding the input CSV files")
	trendCmd.Flags().StringVarP(&trendConfigPath, "config", "c", "", "Path to YAML configuration (defaults apply when empty)")
	trendCmd.Flags().StringVarP(&trendAnalyst, "analyst", "a", "", "Analyst ID (required)")
	trendCmd.Flags().IntVarP(&trendWeeks, "weeks", "w", 4, "Number of weeks, ending at the latest in data")
	_ = trendCmd.MarkFlagRequired("analyst")

	rootCmd.AddCommand(trendCmd)
}

func runTrend(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(trendConfigPath)
	if err != nil {
		return err
	}
	repos, err := loadRepositories(trendDataDir)
	if err != nil {
		return err
	}
	service, err := services.NewReportService(cfg, repos)
	if err != nil {
		return err
	}

	reports, err := service.ReliabilityTrend(cmd.Context(), entities.AnalystID(trendAnalyst), trendWeeks)
	if err != nil {
		return err
	}

	fmt.Printf("Reliability trend for %s\n", trendAnalyst)
	for _, weekReport := range reports {
		if len(weekReport.Analysts) == 0 {
			fmt.Printf("  %s  no records\n", weekReport.Period)
			continue
		}
		kpi := weekReport.Analysts[0]
		fmt.Printf("  %s  Volume: %4d   Completion: %6s%% [%s]   Quality: %6s%% [%s]\n",
			weekReport.Period, kpi.Volume,
			kpi.Completion, kpi.CompletionStatus,
			kpi.Quality, kpi.QualityStatus)
	}
	return nil
}

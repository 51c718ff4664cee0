// Package main provides the opskpi command line interface: batch KPI
// reporting over purchase order, catalog and invoice CSV exports.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mvidal/opskpi/pkg/utils/logging"
)

var (
	logLevel  string
	logFormat string
)

var rootCmd = &cobra.Command{
	Use:   "opskpi",
	Short: "Operational KPI engine for B2B purchasing teams",
	Long: "opskpi computes analyst workload, invoice processing reliability and\n" +
		"financial health KPIs from purchase order, catalog and invoice CSV exports.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		format := logging.FormatAuto
		switch logFormat {
		case "console":
			format = logging.FormatConsole
		case "json":
			format = logging.FormatJSON
		case "auto", "":
		default:
			return fmt.Errorf("invalid log format %q (expected console, json or auto)", logFormat)
		}
		logger := logging.NewLoggerWithFormat(logging.ParseLogLevel(logLevel), os.Stderr, format)
		slog.SetDefault(logger)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "auto", "Log format (console, json, auto)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

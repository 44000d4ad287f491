package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/throttle/config"
)

var rootCmd = &cobra.Command{
	Use:   "throttle",
	Short: "Broker CSV import and risk throttle engine",
	Long: `Throttle ingests broker-exported trade CSVs of loosely specified formats,
normalizes them into canonical fills, deduplicates across repeated imports,
and drives a deterministic risk throttle that assigns each day's risk
percentage from the sequence of realized trade outcomes.

It provides tools for:
  - Importing and previewing broker CSV exports of several flavors
  - Merging fills idempotently into a SQLite store keyed by fingerprint
  - Computing the day-by-day risk mode timeline and per-trade entry risk
  - Forecasting the next mode if the next trade wins or loses
  - Building the daily equity curve with peak and drawdown tracking`,
}

var cfgFile string

// Execute adds all child commands to the root command and runs it.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (YAML or JSON)")
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		cfg, err := config.LoadFromFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		return cfg, nil
	}
	return config.Load()
}

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/throttle/risk"
)

var equityCmd = &cobra.Command{
	Use:   "equity",
	Short: "Print the daily equity curve",
	Args:  cobra.NoArgs,
	RunE:  runEquity,
}

var equityDB string

func init() {
	rootCmd.AddCommand(equityCmd)
	equityCmd.Flags().StringVarP(&equityDB, "db", "d", "", "SQLite store holding trades (default from config)")
}

func runEquity(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trades, err := loadTrades(cfg.Journal.DBPath, equityDB)
	if err != nil {
		return err
	}

	days := risk.CalculateDailyEquity(trades, cfg.Account.StartingEquity)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s %12s %12s %12s %9s %6s %6s\n",
		"day", "equity", "day p/l", "cum p/l", "dd%", "wins", "losses")
	for _, d := range days {
		fmt.Fprintf(out, "%-12s %12.2f %12.2f %12.2f %8.2f%% %6d %6d\n",
			d.Day, d.TradingEquity, d.DayPL, d.CumulativePL, d.DrawdownPct*100, d.Wins, d.Losses)
	}
	return nil
}

package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/throttle/journal"
	"github.com/rustyeddy/throttle/market"
	"github.com/rustyeddy/throttle/risk"
)

var riskCmd = &cobra.Command{
	Use:   "risk",
	Short: "Show today's risk directive and forecast",
	Long: `Walk the throttle state machine over the stored trades and print the
directive in effect as of today (or --as-of), plus the what-if forecast for
the next trade winning or losing.`,
	Args: cobra.NoArgs,
	RunE: runRisk,
}

var (
	riskDB   string
	riskAsOf string
)

func init() {
	rootCmd.AddCommand(riskCmd)
	riskCmd.Flags().StringVarP(&riskDB, "db", "d", "", "SQLite store holding trades (default from config)")
	riskCmd.Flags().StringVar(&riskAsOf, "as-of", "", "compute as of this day (YYYY-MM-DD, default today)")
}

func runRisk(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	trades, err := loadTrades(cfg.Journal.DBPath, riskDB)
	if err != nil {
		return err
	}

	asOf, err := asOfDay(riskAsOf)
	if err != nil {
		return err
	}

	cur := risk.CurrentRisk(trades, cfg.Account.StartingEquity, cfg.Strategy, asOf)

	out := cmd.OutOrStdout()
	d := cur.Today
	fmt.Fprintf(out, "As of:     %s\n", d.Day)
	fmt.Fprintf(out, "Mode:      %s\n", d.Mode)
	fmt.Fprintf(out, "Risk:      %.3f%% of %.2f %s (%.2f allowed)\n",
		d.RiskPct*100, d.Equity, cfg.Account.Currency, d.RiskPct*d.Equity)
	if d.Mode == risk.Low {
		fmt.Fprintf(out, "Progress:  %d of %d wins to recover\n", d.WinProgress, cfg.Strategy.WinsToRecover)
	}
	fmt.Fprintf(out, "If win:    %s at %.3f%%\n", cur.IfWin.Mode, cur.IfWin.RiskPct*100)
	fmt.Fprintf(out, "If loss:   %s at %.3f%%\n", cur.IfLoss.Mode, cur.IfLoss.RiskPct*100)
	return nil
}

func loadTrades(cfgPath, flagPath string) ([]market.Trade, error) {
	path := cfgPath
	if flagPath != "" {
		path = flagPath
	}
	store, err := journal.NewSQLite(path)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	trades, err := store.ListTrades()
	if err != nil {
		return nil, fmt.Errorf("list trades: %w", err)
	}
	return trades, nil
}

func asOfDay(s string) (market.DayKey, error) {
	if s == "" {
		return market.DayKeyFromTime(time.Now()), nil
	}
	k, err := market.ParseDayKey(s)
	if err != nil {
		return "", fmt.Errorf("bad --as-of %q: %w", s, err)
	}
	return k, nil
}

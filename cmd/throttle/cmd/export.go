package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/throttle/journal"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored fills to CSV",
	Args:  cobra.NoArgs,
	RunE:  runExport,
}

var (
	exportDB  string
	exportOut string
)

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportDB, "db", "d", "", "SQLite store holding fills (default from config)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "fills.csv", "output CSV path")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	path := cfg.Journal.DBPath
	if exportDB != "" {
		path = exportDB
	}
	store, err := journal.NewSQLite(path)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	fills, err := store.ListFills()
	if err != nil {
		return fmt.Errorf("list fills: %w", err)
	}

	if err := journal.ExportFillsCSV(exportOut, fills); err != nil {
		return fmt.Errorf("export: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "wrote %d fill(s) to %s\n", len(fills), exportOut)
	return nil
}

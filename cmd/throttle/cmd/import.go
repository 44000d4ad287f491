package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/throttle/csvimport"
	"github.com/rustyeddy/throttle/journal"
	"github.com/rustyeddy/throttle/pkg/id"
)

var importCmd = &cobra.Command{
	Use:   "import <file.csv>",
	Short: "Import a broker CSV export",
	Long: `Parse a broker CSV export into normalized fills and report the result.

With --db the fills are also merged into the SQLite store: fills are keyed
by content fingerprint, so importing the same file twice inserts nothing
the second time.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importDB string

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().StringVarP(&importDB, "db", "d", "", "merge fills into this SQLite store")
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	result, err := csvimport.Import(string(data))
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprint(out, result.Summary())

	for _, s := range result.Skipped {
		fmt.Fprintf(out, "skipped row %d:\n", s.Row)
		for _, r := range s.Reasons {
			fmt.Fprintf(out, "  - %s\n", r)
		}
	}

	if importDB == "" {
		return nil
	}

	store, err := journal.NewSQLite(importDB)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer store.Close()

	inserted, dups, err := store.MergeFills(result.Fills)
	if err != nil {
		return fmt.Errorf("merge fills: %w", err)
	}

	rec := journal.ImportRecord{
		ID:         id.New(),
		File:       filepath.Base(args[0]),
		Created:    time.Now().UTC(),
		TotalRows:  result.Stats.TotalRows,
		Fills:      inserted,
		Duplicates: dups,
		Skipped:    result.Stats.Skipped,
		Format:     string(result.Format.Kind),
	}
	if err := store.RecordImport(rec); err != nil {
		return fmt.Errorf("record import: %w", err)
	}

	fmt.Fprintf(out, "merged:    %d new, %d duplicate (batch %s)\n", inserted, dups, rec.ID)
	return nil
}

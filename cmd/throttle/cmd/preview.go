package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rustyeddy/throttle/csvimport"
)

var previewCmd = &cobra.Command{
	Use:   "preview <file.csv>",
	Short: "Inspect a CSV export without importing it",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var previewWindow int

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().IntVarP(&previewWindow, "rows", "n", 5, "number of data rows to show")
}

func runPreview(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read csv: %w", err)
	}

	p := csvimport.BuildPreviewExtended(string(data), previewWindow)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Format:    %s (%s confidence)\n", p.Format.Kind, p.Format.Confidence)
	fmt.Fprintf(out, "Rows:      %d\n", p.TotalRows)
	fmt.Fprintf(out, "Headers:   %s\n", strings.Join(p.Headers, ", "))
	if p.HasRequired {
		fmt.Fprintln(out, "Required:  all present")
	} else {
		names := make([]string, len(p.Missing))
		for i, f := range p.Missing {
			names[i] = string(f)
		}
		fmt.Fprintf(out, "Required:  MISSING %s\n", strings.Join(names, ", "))
	}
	for _, row := range p.Rows {
		fmt.Fprintf(out, "  %s\n", strings.Join(row, " | "))
	}
	return nil
}

package csvimport

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/rustyeddy/throttle/market"
)

// Result is the complete outcome of one CSV import.
//
// Success is true iff at least one fill was produced. A syntactically valid
// file that yields zero usable rows is not an error: it comes back
// Success=false with warnings explaining why.
type Result struct {
	Success  bool
	Fills    []market.Fill
	Errors   []string
	Warnings []string
	Skipped  []SkippedRow
	Pending  []market.PendingOrder
	Format   Detection
	Stats    Stats
}

// Stats summarizes an import for display and batch records.
type Stats struct {
	TotalRows int
	Fills     int
	Skipped   int
	FirstDay  market.DayKey
	LastDay   market.DayKey
	Symbols   []string
}

// ErrEmptyInput is returned when the input has no header row at all.
// Everything else (missing columns, zero valid rows) is reported inside
// Result, not as an error.
var ErrEmptyInput = errors.New("csvimport: empty input, no header row")

// Import runs the full pipeline over raw CSV text: tokenize, detect format,
// resolve columns, normalize every data row, sort, summarize. Deterministic:
// the same text always produces the same Result, byte for byte.
func Import(text string) (*Result, error) {
	rows := Tokenize(text)
	if len(rows) == 0 {
		return nil, ErrEmptyInput
	}

	res := NewResolver(rows[0])
	out := &Result{Format: DetectFormat(res)}

	if missing := res.MissingRequired(); len(missing) > 0 {
		for _, f := range missing {
			out.Errors = append(out.Errors, fmt.Sprintf("required column %q not found in header", f))
		}
		out.Stats.TotalRows = len(rows) - 1
		return out, nil
	}

	if out.Format.Confidence == ConfidenceLow {
		out.Warnings = append(out.Warnings, "unrecognized export format; importing on column matching alone")
	}
	if !res.Has(FieldCommission) {
		out.Warnings = append(out.Warnings, "no commission column found; commissions default to 0")
	}
	if !res.Has(FieldStopPrice) {
		out.Warnings = append(out.Warnings, "no stop price column found; stops unavailable for inference")
	}

	partials := 0
	for i, row := range rows[1:] {
		if isBlankRow(row) {
			continue
		}
		out.Stats.TotalRows++

		r := normalizeRow(res, row, i+1)
		switch r.kind {
		case rowFill:
			out.Fills = append(out.Fills, r.fill)
			if r.partial {
				partials++
			}
		case rowPending:
			out.Pending = append(out.Pending, r.pending)
		case rowSkipped:
			out.Skipped = append(out.Skipped, r.skip)
		case rowDropped:
			// cancelled, rejected, expired: not a fill, not a diagnostic
		}
	}

	// stable by execution time, then source row, so same-millisecond fills
	// keep their original order across runs
	sort.SliceStable(out.Fills, func(a, b int) bool {
		fa, fb := out.Fills[a], out.Fills[b]
		if !fa.Time.Equal(fb.Time) {
			return fa.Time.Before(fb.Time)
		}
		return fa.RowIndex < fb.RowIndex
	})

	if partials > 0 {
		out.Warnings = append(out.Warnings, fmt.Sprintf("%d partially filled row(s) imported as fills", partials))
	}
	if n := len(out.Skipped); n > 0 {
		out.Warnings = append(out.Warnings, fmt.Sprintf("%d row(s) skipped; see skipped rows for reasons", n))
	}

	out.Stats.Fills = len(out.Fills)
	out.Stats.Skipped = len(out.Skipped)
	out.Stats.Symbols = distinctSymbols(out.Fills)
	if len(out.Fills) > 0 {
		out.Stats.FirstDay = out.Fills[0].Day
		out.Stats.LastDay = out.Fills[0].Day
		for _, f := range out.Fills[1:] {
			if f.Day.Before(out.Stats.FirstDay) {
				out.Stats.FirstDay = f.Day
			}
			if f.Day.After(out.Stats.LastDay) {
				out.Stats.LastDay = f.Day
			}
		}
	}

	out.Success = len(out.Fills) > 0
	if !out.Success && len(out.Errors) == 0 {
		out.Warnings = append(out.Warnings, "no usable fill rows found in file")
	}
	return out, nil
}

func distinctSymbols(fills []market.Fill) []string {
	seen := make(map[string]struct{}, len(fills))
	var out []string
	for _, f := range fills {
		if _, ok := seen[f.Symbol]; !ok {
			seen[f.Symbol] = struct{}{}
			out = append(out, f.Symbol)
		}
	}
	sort.Strings(out)
	return out
}

// Summary renders a short human-readable report of the import, in the style
// of a backtest result block.
func (r *Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Format:    %s (%s confidence)\n", r.Format.Kind, r.Format.Confidence)
	fmt.Fprintf(&b, "Rows:      %d\n", r.Stats.TotalRows)
	fmt.Fprintf(&b, "Fills:     %d\n", r.Stats.Fills)
	fmt.Fprintf(&b, "Skipped:   %d\n", r.Stats.Skipped)
	fmt.Fprintf(&b, "Pending:   %d\n", len(r.Pending))
	if r.Stats.FirstDay != "" {
		fmt.Fprintf(&b, "Dates:     %s .. %s\n", r.Stats.FirstDay, r.Stats.LastDay)
	}
	if len(r.Stats.Symbols) > 0 {
		fmt.Fprintf(&b, "Symbols:   %s\n", strings.Join(r.Stats.Symbols, ", "))
	}
	for _, e := range r.Errors {
		fmt.Fprintf(&b, "ERROR:     %s\n", e)
	}
	for _, w := range r.Warnings {
		fmt.Fprintf(&b, "warning:   %s\n", w)
	}
	return b.String()
}

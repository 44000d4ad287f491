// journal/csv.go
package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"

	"github.com/rustyeddy/throttle/market"
)

var fillHeader = []string{
	"fill_id", "symbol", "side", "quantity", "price", "exec_time",
	"order_id", "commission", "day", "stop_price", "fingerprint",
}

// ExportFillsCSV writes fills to a CSV file with a fixed header. Output is
// deterministic for a given fill slice: same order, same formatting.
func ExportFillsCSV(path string, fills []market.Fill) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(fillHeader); err != nil {
		return err
	}

	for _, fill := range fills {
		stop := ""
		if fill.StopPrice > 0 {
			stop = n(fill.StopPrice)
		}
		if err := w.Write([]string{
			fill.ID,
			fill.Symbol,
			string(fill.Side),
			n(fill.Quantity),
			n(fill.Price),
			fill.Time.UTC().Format(time.RFC3339),
			fill.OrderID,
			n(fill.Commission),
			string(fill.Day),
			stop,
			fill.Fingerprint,
		}); err != nil {
			return err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

func n(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

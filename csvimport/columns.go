package csvimport

import "strings"

// Field names a logical column the importer cares about. Broker exports
// spell these a dozen different ways; the alias table below maps each field
// to its accepted header spellings in priority order.
type Field string

const (
	FieldSymbol      Field = "symbol"
	FieldSide        Field = "side"
	FieldQuantity    Field = "quantity"
	FieldPrice       Field = "price"
	FieldTime        Field = "time"
	FieldOrderID     Field = "order_id"
	FieldCommission  Field = "commission"
	FieldStatus      Field = "status"
	FieldStopPrice   Field = "stop_price"
	FieldName        Field = "name"
	FieldTotalQty    Field = "total_quantity"
	FieldPlacedTime  Field = "placed_time"
	FieldTimeInForce Field = "time_in_force"
	FieldOrderType   Field = "order_type"
	FieldLimitPrice  Field = "limit_price"
)

// fieldAliases lists accepted header spellings per field, highest priority
// first. Matching is against normalized text (lower case, alphanumerics
// only), so "Filled Qty" and "filled_qty" are the same alias.
var fieldAliases = map[Field][]string{
	FieldSymbol:      {"symbol", "ticker", "underlying symbol", "instrument"},
	FieldSide:        {"side", "action", "buy/sell", "b/s", "transaction"},
	FieldQuantity:    {"filled qty", "filled quantity", "qty", "quantity", "shares", "filled"},
	FieldPrice:       {"avg price", "average price", "fill price", "filled price", "price", "exec price", "execution price"},
	FieldTime:        {"filled time", "fill time", "execution time", "exec time", "time", "date/time", "trade date", "date"},
	FieldOrderID:     {"order id", "order number", "order #", "orderid"},
	FieldCommission:  {"commission", "comm", "fees", "commission fee"},
	FieldStatus:      {"status", "order status", "state"},
	FieldStopPrice:   {"stop price", "stop", "stp price", "aux price"},
	FieldName:        {"name", "description", "security name"},
	FieldTotalQty:    {"total qty", "total quantity", "order qty"},
	FieldPlacedTime:  {"placed time", "place time", "order time", "submitted time"},
	FieldTimeInForce: {"time in force", "tif", "duration"},
	FieldOrderType:   {"order type", "type"},
	FieldLimitPrice:  {"limit price", "lmt price"},
}

// requiredFields must all resolve for an import to proceed at all. Their
// absence is a file-level error, not a row-level skip.
var requiredFields = []Field{FieldSymbol, FieldSide, FieldQuantity, FieldPrice, FieldTime}

// normalizeHeader lower-cases and strips everything but letters and digits,
// so punctuation and spacing differences never break a match.
func normalizeHeader(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Resolver maps logical fields to column indexes for one header row.
// Resolution is pure: the same headers always resolve the same columns.
type Resolver struct {
	headers    []string
	normalized []string
	cache      map[Field]int
}

// NewResolver builds a resolver over a tokenized header row.
func NewResolver(headers []string) *Resolver {
	norm := make([]string, len(headers))
	for i, h := range headers {
		norm[i] = normalizeHeader(h)
	}
	return &Resolver{headers: headers, normalized: norm, cache: make(map[Field]int)}
}

// Headers returns the raw header row the resolver was built from.
func (r *Resolver) Headers() []string { return r.headers }

// Lookup returns the column index for a field, or -1 when no header
// matches. Exact normalized equality wins in alias priority order; only when
// no alias matches exactly does it fall back to substring containment in
// either direction.
func (r *Resolver) Lookup(f Field) int {
	if idx, ok := r.cache[f]; ok {
		return idx
	}
	idx := r.resolve(f)
	r.cache[f] = idx
	return idx
}

// Has reports whether a field resolved to some column.
func (r *Resolver) Has(f Field) bool { return r.Lookup(f) >= 0 }

// Cell returns the value of a field within a data row, or "" when the field
// is unresolved or the row is short.
func (r *Resolver) Cell(f Field, row []string) string {
	idx := r.Lookup(f)
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func (r *Resolver) resolve(f Field) int {
	aliases := fieldAliases[f]

	for _, alias := range aliases {
		na := normalizeHeader(alias)
		for i, h := range r.normalized {
			if h == na {
				return i
			}
		}
	}
	for _, alias := range aliases {
		na := normalizeHeader(alias)
		if na == "" {
			continue
		}
		for i, h := range r.normalized {
			if h == "" {
				continue
			}
			if strings.Contains(h, na) || strings.Contains(na, h) {
				return i
			}
		}
	}
	return -1
}

// MissingRequired lists required fields that resolved to no column.
func (r *Resolver) MissingRequired() []Field {
	var missing []Field
	for _, f := range requiredFields {
		if !r.Has(f) {
			missing = append(missing, f)
		}
	}
	return missing
}

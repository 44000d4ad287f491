package market

import "time"

// Fill is one executed trade leg normalized from a broker export row.
// Fills are immutable once built; identity is content-addressed through
// Fingerprint so re-imports of the same data collapse to the same record.
type Fill struct {
	ID          string
	Symbol      string
	Side        Side
	Quantity    float64
	Price       float64
	Time        time.Time
	OrderID     string
	Commission  float64
	Day         DayKey
	RowIndex    int
	StopPrice   float64 // 0 when the source carried no stop
	Fingerprint string
}

// PendingOrder is an unfilled order observed in an export (status pending,
// working or open). Pending orders feed stop/target inference downstream and
// are never merged into the fill set.
type PendingOrder struct {
	Symbol     string
	Side       Side
	Quantity   float64
	OrderType  string
	LimitPrice float64
	StopPrice  float64
	Status     string
	Placed     time.Time
	RowIndex   int
}

// Trade is a reconstructed position session: entry plus matching exit with
// realized P&L. Reconstruction happens outside this module; the risk engine
// consumes trades as an ordered list.
type Trade struct {
	ID         string
	Symbol     string
	EntryDay   DayKey
	ExitDay    DayKey // zero while the position is open
	RealizedPL float64
	Closed     bool
}

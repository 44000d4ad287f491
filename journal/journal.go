package journal

import (
	"time"

	"github.com/rustyeddy/throttle/market"
)

// ImportRecord is one merge-mode import batch: which file, when, and what
// came out of it. The ID is a ULID, so batches sort by creation time.
type ImportRecord struct {
	ID         string
	File       string
	Created    time.Time
	TotalRows  int
	Fills      int
	Duplicates int
	Skipped    int
	Format     string
}

// Store persists fills keyed by fingerprint, reconstructed trades, and
// import batches. Merge semantics are set union: re-importing the same
// fills inserts nothing new.
type Store interface {
	MergeFills(fills []market.Fill) (inserted, duplicates int, err error)
	ListFills() ([]market.Fill, error)
	ListFillsBetween(start, end market.DayKey) ([]market.Fill, error)
	DistinctSymbols() ([]string, error)

	RecordTrade(market.Trade) error
	ListTrades() ([]market.Trade, error)

	RecordImport(ImportRecord) error
	ListImports() ([]ImportRecord, error)

	Close() error
}

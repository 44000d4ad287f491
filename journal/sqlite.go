package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"

	"github.com/rustyeddy/throttle/market"
)

// SQLite is the Store implementation backed by a single SQLite file.
type SQLite struct {
	db *sql.DB
}

var _ Store = (*SQLite)(nil)

func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(Schema); err != nil {
		db.Close()
		return nil, err
	}

	return &SQLite{db: db}, nil
}

// MergeFills inserts fills keyed by fingerprint with INSERT OR IGNORE, so a
// re-import of the same data is a no-op. Returns how many rows were new and
// how many were already present.
func (j *SQLite) MergeFills(fills []market.Fill) (inserted, duplicates int, err error) {
	tx, err := j.db.Begin()
	if err != nil {
		return 0, 0, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT OR IGNORE INTO fills
		(fingerprint, fill_id, symbol, side, quantity, price, exec_time, order_id, commission, day, row_index, stop_price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, 0, err
	}
	defer stmt.Close()

	for _, f := range fills {
		res, err := stmt.Exec(
			f.Fingerprint, f.ID, f.Symbol, string(f.Side), f.Quantity, f.Price,
			f.Time, f.OrderID, f.Commission, string(f.Day), f.RowIndex, f.StopPrice,
		)
		if err != nil {
			return 0, 0, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, 0, err
		}
		if n > 0 {
			inserted++
		} else {
			duplicates++
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, 0, err
	}
	return inserted, duplicates, nil
}

func (j *SQLite) RecordTrade(t market.Trade) error {
	closed := 0
	if t.Closed {
		closed = 1
	}
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO trades
		(trade_id, symbol, entry_day, exit_day, realized_pl, closed)
		VALUES (?, ?, ?, ?, ?, ?)`,
		t.ID, t.Symbol, string(t.EntryDay), string(t.ExitDay), t.RealizedPL, closed,
	)
	return err
}

func (j *SQLite) RecordImport(r ImportRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO imports
		(import_id, file, created, total_rows, fills, duplicates, skipped, format)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.File, r.Created, r.TotalRows, r.Fills, r.Duplicates, r.Skipped, r.Format,
	)
	return err
}

func (j *SQLite) Close() error {
	return j.db.Close()
}

package journal

import (
	"github.com/rustyeddy/throttle/market"
)

// ListFills returns every stored fill ordered by execution time, then
// source row, matching the importer's sort.
func (j *SQLite) ListFills() ([]market.Fill, error) {
	return j.queryFills(`
		SELECT fingerprint, fill_id, symbol, side, quantity, price, exec_time, order_id, commission, day, row_index, stop_price
		FROM fills
		ORDER BY exec_time ASC, row_index ASC`)
}

// ListFillsBetween returns fills whose market day is within [start, end].
func (j *SQLite) ListFillsBetween(start, end market.DayKey) ([]market.Fill, error) {
	return j.queryFills(`
		SELECT fingerprint, fill_id, symbol, side, quantity, price, exec_time, order_id, commission, day, row_index, stop_price
		FROM fills
		WHERE day >= ? AND day <= ?
		ORDER BY exec_time ASC, row_index ASC`, string(start), string(end))
}

func (j *SQLite) queryFills(query string, args ...any) ([]market.Fill, error) {
	rows, err := j.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []market.Fill
	for rows.Next() {
		var f market.Fill
		var side, day string
		if err := rows.Scan(
			&f.Fingerprint, &f.ID, &f.Symbol, &side, &f.Quantity, &f.Price,
			&f.Time, &f.OrderID, &f.Commission, &day, &f.RowIndex, &f.StopPrice,
		); err != nil {
			return nil, err
		}
		f.Side = market.Side(side)
		f.Day = market.DayKey(day)
		out = append(out, f)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// DistinctSymbols returns the sorted set of symbols across all fills.
func (j *SQLite) DistinctSymbols() ([]string, error) {
	rows, err := j.db.Query(`SELECT DISTINCT symbol FROM fills ORDER BY symbol ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []string
	for rows.Next() {
		var s string
		if err := rows.Scan(&s); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// ListTrades returns trades in the order the risk engine walks them:
// entry day ascending, trade id as the tie-break.
func (j *SQLite) ListTrades() ([]market.Trade, error) {
	rows, err := j.db.Query(`
		SELECT trade_id, symbol, entry_day, exit_day, realized_pl, closed
		FROM trades
		ORDER BY entry_day ASC, trade_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []market.Trade
	for rows.Next() {
		var t market.Trade
		var entry, exit string
		var closed int
		if err := rows.Scan(&t.ID, &t.Symbol, &entry, &exit, &t.RealizedPL, &closed); err != nil {
			return nil, err
		}
		t.EntryDay = market.DayKey(entry)
		t.ExitDay = market.DayKey(exit)
		t.Closed = closed != 0
		out = append(out, t)
	}
	return out, rows.Err()
}

// ListImports returns import batches in chronological order. ULIDs sort by
// creation time, so ordering by id is enough.
func (j *SQLite) ListImports() ([]ImportRecord, error) {
	rows, err := j.db.Query(`
		SELECT import_id, file, created, total_rows, fills, duplicates, skipped, format
		FROM imports
		ORDER BY import_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []ImportRecord
	for rows.Next() {
		var r ImportRecord
		if err := rows.Scan(&r.ID, &r.File, &r.Created, &r.TotalRows, &r.Fills, &r.Duplicates, &r.Skipped, &r.Format); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

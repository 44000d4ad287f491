// journal/schema.go
package journal

const Schema = `
CREATE TABLE IF NOT EXISTS fills (
	fingerprint TEXT PRIMARY KEY,
	fill_id TEXT NOT NULL,
	symbol TEXT NOT NULL,
	side TEXT NOT NULL,
	quantity REAL NOT NULL,
	price REAL NOT NULL,
	exec_time DATETIME NOT NULL,
	order_id TEXT NOT NULL,
	commission REAL NOT NULL,
	day TEXT NOT NULL,
	row_index INTEGER NOT NULL,
	stop_price REAL NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_fills_day ON fills(day);
CREATE INDEX IF NOT EXISTS idx_fills_symbol ON fills(symbol);

CREATE TABLE IF NOT EXISTS trades (
	trade_id TEXT PRIMARY KEY,
	symbol TEXT NOT NULL,
	entry_day TEXT NOT NULL,
	exit_day TEXT NOT NULL,
	realized_pl REAL NOT NULL,
	closed INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_trades_entry ON trades(entry_day);

CREATE TABLE IF NOT EXISTS imports (
	import_id TEXT PRIMARY KEY,
	file TEXT NOT NULL,
	created DATETIME NOT NULL,
	total_rows INTEGER NOT NULL,
	fills INTEGER NOT NULL,
	duplicates INTEGER NOT NULL,
	skipped INTEGER NOT NULL,
	format TEXT NOT NULL
);
`

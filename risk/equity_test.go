package risk

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/throttle/market"
)

func TestDailyEquityCurve(t *testing.T) {
	t.Parallel()

	trades := []market.Trade{
		{ID: "T1", Symbol: "AAPL", EntryDay: "2024-01-02", ExitDay: "2024-01-02", RealizedPL: 500, Closed: true},
		{ID: "T2", Symbol: "MSFT", EntryDay: "2024-01-02", ExitDay: "2024-01-03", RealizedPL: -200, Closed: true},
		{ID: "T3", Symbol: "NVDA", EntryDay: "2024-01-03", ExitDay: "2024-01-03", RealizedPL: -100, Closed: true},
		{ID: "T4", Symbol: "AMD", EntryDay: "2024-01-05", ExitDay: "2024-01-05", RealizedPL: 400, Closed: true},
		// open trade contributes nothing
		{ID: "T5", Symbol: "TSLA", EntryDay: "2024-01-05"},
	}

	days := CalculateDailyEquity(trades, 10000)
	require.Len(t, days, 3)

	d1 := days[0]
	assert.Equal(t, market.DayKey("2024-01-02"), d1.Day)
	assert.InDelta(t, 500, d1.DayPL, 1e-9)
	assert.InDelta(t, 10500, d1.TradingEquity, 1e-9)
	assert.InDelta(t, 10500, d1.PeakEquity, 1e-9)
	assert.InDelta(t, 0, d1.DrawdownPct, 1e-12) // new peak: drawdown 0
	assert.Equal(t, 1, d1.Wins)
	assert.Equal(t, 0, d1.Losses)

	d2 := days[1]
	assert.Equal(t, market.DayKey("2024-01-03"), d2.Day)
	assert.InDelta(t, -300, d2.DayPL, 1e-9)
	assert.InDelta(t, 10200, d2.TradingEquity, 1e-9)
	assert.InDelta(t, 10500, d2.PeakEquity, 1e-9)
	assert.InDelta(t, (10200.0-10500.0)/10500.0, d2.DrawdownPct, 1e-12)
	assert.Equal(t, 0, d2.Wins)
	assert.Equal(t, 2, d2.Losses)
	assert.Equal(t, 2, d2.Trades)

	d3 := days[2]
	assert.Equal(t, market.DayKey("2024-01-05"), d3.Day)
	assert.InDelta(t, 10600, d3.TradingEquity, 1e-9)
	assert.InDelta(t, 10600, d3.PeakEquity, 1e-9)
	assert.InDelta(t, 0, d3.DrawdownPct, 1e-12)
	assert.InDelta(t, 600, d3.CumulativePL, 1e-9)
}

func TestFirstDayLossIsADrawdown(t *testing.T) {
	t.Parallel()

	// the curve starts at startingEquity; losing the first trading day is
	// already below peak, not a fresh peak at the reduced equity
	trades := []market.Trade{
		{ID: "T1", Symbol: "AAPL", EntryDay: "2024-01-02", ExitDay: "2024-01-02", RealizedPL: -100, Closed: true},
	}

	days := CalculateDailyEquity(trades, 25000)
	require.Len(t, days, 1)

	d := days[0]
	assert.InDelta(t, 24900, d.TradingEquity, 1e-9)
	assert.InDelta(t, 25000, d.PeakEquity, 1e-9)
	assert.Negative(t, d.DrawdownPct)
	assert.InDelta(t, -100.0/25000.0, d.DrawdownPct, 1e-12)
}

func TestDrawdownNeverPositive(t *testing.T) {
	t.Parallel()

	trades := []market.Trade{
		{ID: "T1", Symbol: "A", EntryDay: "2024-01-02", ExitDay: "2024-01-02", RealizedPL: 300, Closed: true},
		{ID: "T2", Symbol: "B", EntryDay: "2024-01-03", ExitDay: "2024-01-03", RealizedPL: -500, Closed: true},
		{ID: "T3", Symbol: "C", EntryDay: "2024-01-04", ExitDay: "2024-01-04", RealizedPL: 100, Closed: true},
		{ID: "T4", Symbol: "D", EntryDay: "2024-01-05", ExitDay: "2024-01-05", RealizedPL: 900, Closed: true},
	}

	for _, d := range CalculateDailyEquity(trades, 1000) {
		assert.LessOrEqual(t, d.DrawdownPct, 0.0, "day %s", d.Day)
	}
}

func TestDrawdownZeroPeakGuard(t *testing.T) {
	t.Parallel()

	// equity never rises above zero: drawdown stays 0 instead of dividing
	// by a zero peak
	trades := []market.Trade{
		{ID: "T1", Symbol: "A", EntryDay: "2024-01-02", ExitDay: "2024-01-02", RealizedPL: -50, Closed: true},
	}

	days := CalculateDailyEquity(trades, 0)
	require.Len(t, days, 1)
	assert.InDelta(t, 0, days[0].DrawdownPct, 1e-12)
	assert.InDelta(t, 0, days[0].PeakEquity, 1e-12)
}

func TestDailyEquityNoClosedTrades(t *testing.T) {
	t.Parallel()

	trades := []market.Trade{{ID: "T1", Symbol: "A", EntryDay: "2024-01-02"}}
	assert.Empty(t, CalculateDailyEquity(trades, 1000))
	assert.Empty(t, CalculateDailyEquity(nil, 1000))
}

package risk

import (
	"sort"

	"github.com/rustyeddy/throttle/market"
)

// EquityDay is one row of the daily equity curve: a day with at least one
// closed trade.
type EquityDay struct {
	Day           market.DayKey
	TradingEquity float64
	AccountEquity float64
	DayPL         float64
	CumulativePL  float64
	DrawdownPct   float64 // (equity - peak) / peak, always <= 0
	PeakEquity    float64
	Wins          int
	Losses        int
	Trades        int
}

// CalculateDailyEquity folds closed-trade P&L into a running equity curve
// with peak tracking. Days without closed trades produce no row. Drawdown
// is 0 exactly when the curve sits at a new peak, and 0 when the peak is 0
// to avoid dividing by zero.
func CalculateDailyEquity(trades []market.Trade, startingEquity float64) []EquityDay {
	byDay := make(map[market.DayKey][]market.Trade)
	for _, t := range trades {
		if t.Closed && t.ExitDay.Valid() {
			byDay[t.ExitDay] = append(byDay[t.ExitDay], t)
		}
	}

	days := make([]market.DayKey, 0, len(byDay))
	for day := range byDay {
		days = append(days, day)
	}
	sort.Slice(days, func(a, b int) bool { return days[a].Before(days[b]) })

	out := make([]EquityDay, 0, len(days))
	cum := 0.0
	// the curve starts at startingEquity, so that is the first peak; a
	// losing first day must already show negative drawdown
	peak := startingEquity
	for _, day := range days {
		row := EquityDay{Day: day}
		for _, t := range byDay[day] {
			row.DayPL += t.RealizedPL
			row.Trades++
			if t.RealizedPL < 0 {
				row.Losses++
			} else {
				row.Wins++
			}
		}

		cum += row.DayPL
		row.CumulativePL = cum
		row.TradingEquity = startingEquity + cum
		row.AccountEquity = row.TradingEquity

		if row.TradingEquity > peak {
			peak = row.TradingEquity
		}
		row.PeakEquity = peak
		if peak > 0 {
			row.DrawdownPct = (row.TradingEquity - peak) / peak
		}

		out = append(out, row)
	}
	return out
}

package risk

import (
	"sort"

	"github.com/rustyeddy/throttle/market"
)

// DailyDirective is the throttle's decision for one calendar day: the mode,
// risk percentage and equity in effect as the day opens, plus the LOW-mode
// win progress carried in from the previous day.
type DailyDirective struct {
	Day         market.DayKey
	Mode        Mode
	RiskPct     float64
	Equity      float64
	WinProgress int
}

// Assignment is the mode/percentage/equity locked in at a trade's entry
// day. Once assigned it never changes: later mode switches do not
// retroactively alter an already-opened trade's risk.
type Assignment struct {
	TradeID string
	Day     market.DayKey
	Mode    Mode
	RiskPct float64
	Equity  float64
}

// ModeSwitch records one transition in the directive timeline.
type ModeSwitch struct {
	Day    market.DayKey
	From   Mode
	To     Mode
	Reason string
}

// Timeline is the full output of a directive walk: one directive per
// calendar day with no gaps, entry assignments keyed by trade id, and the
// transition log.
type Timeline struct {
	Directives  []DailyDirective
	Assignments map[string]Assignment
	Switches    []ModeSwitch
}

// Today returns the directive for the final (as-of) day of the walk.
func (t Timeline) Today() DailyDirective {
	return t.Directives[len(t.Directives)-1]
}

// ApplyDailyDirectives walks every calendar day from the earliest relevant
// trade date through asOf, inclusive, and folds trade outcomes into the
// throttle state. Pure function of its arguments.
//
// Within a day the order is fixed: record the directive with the carried-in
// state, assign entry risk to trades entering today, scan today's exits,
// apply the transition rule, then compound equity by the day's realized
// P&L. Entries see the pre-transition mode, so a same-day round trip is
// assigned the mode the day opened with.
//
// Transition rule: any losing exit today drops the mode to LOW and resets
// win progress. Otherwise, while in LOW, exits whose entry-time mode was
// LOW with P&L >= 0 count toward recovery; reaching WinsToRecover flips back
// to HIGH. Breakeven exits qualify as wins and never as losses.
func ApplyDailyDirectives(trades []market.Trade, startingEquity float64, cfg StrategyConfig, asOf market.DayKey) Timeline {
	tl := Timeline{Assignments: make(map[string]Assignment)}

	start := asOf
	for _, t := range trades {
		if t.EntryDay.Valid() && t.EntryDay.Before(start) {
			start = t.EntryDay
		}
		if t.Closed && t.ExitDay.Valid() && t.ExitDay.Before(start) {
			start = t.ExitDay
		}
	}

	entries := make(map[market.DayKey][]market.Trade)
	exits := make(map[market.DayKey][]market.Trade)
	for _, t := range trades {
		entries[t.EntryDay] = append(entries[t.EntryDay], t)
		if t.Closed {
			exits[t.ExitDay] = append(exits[t.ExitDay], t)
		}
	}
	for _, m := range []map[market.DayKey][]market.Trade{entries, exits} {
		for day := range m {
			ts := m[day]
			sort.Slice(ts, func(a, b int) bool { return ts[a].ID < ts[b].ID })
		}
	}

	mode := High
	progress := 0
	equity := startingEquity

	for day := start; !day.After(asOf); day = day.Next() {
		tl.Directives = append(tl.Directives, DailyDirective{
			Day:         day,
			Mode:        mode,
			RiskPct:     cfg.Pct(mode),
			Equity:      equity,
			WinProgress: progress,
		})

		for _, t := range entries[day] {
			tl.Assignments[t.ID] = Assignment{
				TradeID: t.ID,
				Day:     day,
				Mode:    mode,
				RiskPct: cfg.Pct(mode),
				Equity:  equity,
			}
		}

		dayPL := 0.0
		lossToday := false
		qualifying := 0
		for _, t := range exits[day] {
			dayPL += t.RealizedPL
			if t.RealizedPL < 0 {
				lossToday = true
			} else if a, ok := tl.Assignments[t.ID]; ok && a.Mode == Low {
				qualifying++
			}
		}

		switch {
		case lossToday:
			if mode == High {
				tl.Switches = append(tl.Switches, ModeSwitch{Day: day, From: High, To: Low, Reason: "losing trade closed"})
			}
			mode = Low
			progress = 0
		case mode == Low && qualifying > 0:
			progress += qualifying
			if progress >= cfg.WinsToRecover {
				tl.Switches = append(tl.Switches, ModeSwitch{Day: day, From: Low, To: High, Reason: "win streak recovered"})
				mode = High
				progress = 0
			}
		}

		equity += dayPL
	}
	return tl
}

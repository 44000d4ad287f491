package risk

import "github.com/rustyeddy/throttle/market"

// ForecastBranch is one hypothetical next-trade outcome.
type ForecastBranch struct {
	Mode    Mode
	RiskPct float64
}

// CurrentRiskResult is the directive in effect today plus a two-branch
// what-if for the next trade. Cheap to recompute; never persisted.
type CurrentRiskResult struct {
	Today  DailyDirective
	IfWin  ForecastBranch
	IfLoss ForecastBranch
}

// Forecast projects the one-step mode transitions from a directive without
// touching any state. A win in HIGH changes nothing; a win in LOW recovers
// to HIGH only once progress+1 reaches the threshold. A loss always lands
// in LOW.
func Forecast(d DailyDirective, cfg StrategyConfig) (ifWin, ifLoss ForecastBranch) {
	ifWin = ForecastBranch{Mode: High, RiskPct: cfg.Pct(High)}
	if d.Mode == Low && d.WinProgress+1 < cfg.WinsToRecover {
		ifWin = ForecastBranch{Mode: Low, RiskPct: cfg.Pct(Low)}
	}
	ifLoss = ForecastBranch{Mode: Low, RiskPct: cfg.Pct(Low)}
	return ifWin, ifLoss
}

// CurrentRisk runs the directive walk up to asOf and pairs today's
// directive with its forecast.
func CurrentRisk(trades []market.Trade, startingEquity float64, cfg StrategyConfig, asOf market.DayKey) CurrentRiskResult {
	tl := ApplyDailyDirectives(trades, startingEquity, cfg, asOf)
	today := tl.Today()
	win, loss := Forecast(today, cfg)
	return CurrentRiskResult{Today: today, IfWin: win, IfLoss: loss}
}

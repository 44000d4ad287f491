package risk

import "fmt"

// Mode is the current throttle state.
type Mode string

const (
	High Mode = "HIGH"
	Low  Mode = "LOW"
)

// StrategyConfig holds the throttle's tunable parameters. Immutable; the
// caller supplies one per computation.
//
// LossesToDrop is carried for forecast explanations, but the transition rule
// drops to LOW on exactly one loss regardless of its value. See DESIGN.md.
type StrategyConfig struct {
	HighRiskPct   float64 `json:"high_risk_pct" yaml:"high_risk_pct"`
	LowRiskPct    float64 `json:"low_risk_pct" yaml:"low_risk_pct"`
	WinsToRecover int     `json:"wins_to_recover" yaml:"wins_to_recover"`
	LossesToDrop  int     `json:"losses_to_drop" yaml:"losses_to_drop"`
}

// DefaultStrategy returns the stock throttle parameters: 3% in HIGH, 0.1%
// in LOW, two wins to recover, one loss to drop.
func DefaultStrategy() StrategyConfig {
	return StrategyConfig{
		HighRiskPct:   0.03,
		LowRiskPct:    0.001,
		WinsToRecover: 2,
		LossesToDrop:  1,
	}
}

// Validate checks the configuration for usable values.
func (c StrategyConfig) Validate() error {
	if c.HighRiskPct <= 0 || c.HighRiskPct > 1 {
		return fmt.Errorf("high_risk_pct must be in (0, 1], got %v", c.HighRiskPct)
	}
	if c.LowRiskPct <= 0 || c.LowRiskPct > 1 {
		return fmt.Errorf("low_risk_pct must be in (0, 1], got %v", c.LowRiskPct)
	}
	if c.LowRiskPct > c.HighRiskPct {
		return fmt.Errorf("low_risk_pct %v exceeds high_risk_pct %v", c.LowRiskPct, c.HighRiskPct)
	}
	if c.WinsToRecover < 1 {
		return fmt.Errorf("wins_to_recover must be at least 1, got %d", c.WinsToRecover)
	}
	if c.LossesToDrop < 1 {
		return fmt.Errorf("losses_to_drop must be at least 1, got %d", c.LossesToDrop)
	}
	return nil
}

// Pct returns the risk percentage the config assigns to a mode.
func (c StrategyConfig) Pct(m Mode) float64 {
	if m == Low {
		return c.LowRiskPct
	}
	return c.HighRiskPct
}

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.NoError(t, cfg.Validate())
	assert.InDelta(t, 25000, cfg.Account.StartingEquity, 1e-9)
	assert.InDelta(t, 0.03, cfg.Strategy.HighRiskPct, 1e-12)
	assert.InDelta(t, 0.001, cfg.Strategy.LowRiskPct, 1e-12)
	assert.Equal(t, 2, cfg.Strategy.WinsToRecover)
	assert.Equal(t, 1, cfg.Strategy.LossesToDrop)
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
account:
  currency: USD
  starting_equity: 50000
strategy:
  high_risk_pct: 0.02
  low_risk_pct: 0.002
  wins_to_recover: 3
  losses_to_drop: 1
journal:
  db_path: ./test.sqlite
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 50000, cfg.Account.StartingEquity, 1e-9)
	assert.InDelta(t, 0.02, cfg.Strategy.HighRiskPct, 1e-12)
	assert.Equal(t, 3, cfg.Strategy.WinsToRecover)
	assert.Equal(t, "./test.sqlite", cfg.Journal.DBPath)
}

func TestLoadFromJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	js := `{
  "account": {"currency": "USD", "starting_equity": 30000},
  "strategy": {"high_risk_pct": 0.03, "low_risk_pct": 0.001, "wins_to_recover": 2, "losses_to_drop": 1},
  "journal": {"db_path": "./x.sqlite"}
}`
	require.NoError(t, os.WriteFile(path, []byte(js), 0644))

	cfg, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 30000, cfg.Account.StartingEquity, 1e-9)
}

func TestLoadRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	yaml := `
account:
  currency: USD
  starting_equity: -5
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0644))

	_, err := LoadFromFile(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "starting_equity")
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")

	cfg := Default()
	cfg.Account.StartingEquity = 12345
	require.NoError(t, cfg.SaveToFile(path))

	got, err := LoadFromFile(path)
	require.NoError(t, err)
	assert.InDelta(t, 12345, got.Account.StartingEquity, 1e-9)
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("THROTTLE_DB", "/tmp/override.sqlite")
	t.Setenv("THROTTLE_STARTING_EQUITY", "99000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/override.sqlite", cfg.Journal.DBPath)
	assert.InDelta(t, 99000, cfg.Account.StartingEquity, 1e-9)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/rustyeddy/throttle/risk"
)

// Config is the complete tool configuration.
type Config struct {
	Account  AccountConfig       `json:"account" yaml:"account"`
	Strategy risk.StrategyConfig `json:"strategy" yaml:"strategy"`
	Journal  JournalConfig       `json:"journal" yaml:"journal"`
}

// AccountConfig holds the account the throttle computes against.
type AccountConfig struct {
	Currency       string  `json:"currency" yaml:"currency"`
	StartingEquity float64 `json:"starting_equity" yaml:"starting_equity"`
}

// JournalConfig points at the persistent fill/trade store.
type JournalConfig struct {
	DBPath string `json:"db_path" yaml:"db_path"`
}

// Default returns a configuration with the stock throttle parameters.
func Default() *Config {
	return &Config{
		Account: AccountConfig{
			Currency:       "USD",
			StartingEquity: 25000,
		},
		Strategy: risk.DefaultStrategy(),
		Journal: JournalConfig{
			DBPath: "./throttle.sqlite",
		},
	}
}

// LoadFromFile reads a YAML or JSON configuration file, applies .env /
// environment overrides, and validates the result.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// YAML first, JSON fallback, matching the file extensions we write
	if err := yaml.Unmarshal(data, cfg); err != nil {
		if jerr := json.Unmarshal(data, cfg); jerr != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load returns the default configuration with environment overrides, for
// callers running without a config file.
func Load() (*Config, error) {
	cfg := Default()
	cfg.applyEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv layers .env and process environment over the config. Only a
// small set of keys is supported; flags still override everything.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("THROTTLE_DB"); v != "" {
		c.Journal.DBPath = v
	}
	if v := os.Getenv("THROTTLE_STARTING_EQUITY"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			c.Account.StartingEquity = f
		}
	}
	if v := os.Getenv("THROTTLE_CURRENCY"); v != "" {
		c.Account.Currency = v
	}
}

// SaveToFile writes the configuration as YAML (for .yaml/.yml paths) or
// indented JSON.
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.Account.Currency == "" {
		return fmt.Errorf("account.currency is required")
	}
	if c.Account.StartingEquity <= 0 {
		return fmt.Errorf("account.starting_equity must be positive")
	}
	if err := c.Strategy.Validate(); err != nil {
		return err
	}
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	return nil
}

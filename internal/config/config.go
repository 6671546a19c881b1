package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/avosch/rollbook/internal/validation"
)

// Keys required in config.json. A missing key is a fatal error.
const (
	KeyEquityName        = "equity_name"
	KeyEquityOpeningName = "equity_opening_name"
	KeyOpeningText       = "opening_transaction_text"
	KeyCurrency          = "currency"
)

var requiredKeys = []string{KeyEquityName, KeyEquityOpeningName, KeyOpeningText, KeyCurrency}

type Config struct {
	EquityName        string `mapstructure:"equity_name"`
	EquityOpeningName string `mapstructure:"equity_opening_name"`
	OpeningText       string `mapstructure:"opening_transaction_text"`
	Currency          string `mapstructure:"currency"`
}

func NewDefault() *Config {
	return &Config{
		EquityName:        "Equity",
		EquityOpeningName: "Opening Balances",
		OpeningText:       "Opening Balance",
		Currency:          "EUR",
	}
}

// DefaultPath is config.json next to the executable.
func DefaultPath() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("can not locate executable for default config path: %w", err)
	}
	return filepath.Join(filepath.Dir(exe), "config.json"), nil
}

// Load reads a JSON config file and checks that every required key is set.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("json")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	for _, key := range requiredKeys {
		if !v.IsSet(key) {
			return nil, fmt.Errorf("missing required config key '%s' in %s", key, path)
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if err := validation.ValidateCurrency(cfg.Currency); err != nil {
		return nil, fmt.Errorf("config key '%s': %w", KeyCurrency, err)
	}

	return cfg, nil
}

// Save writes the config as JSON to path.
func Save(path string, cfg *Config) error {
	v := viper.New()
	v.SetConfigType("json")
	v.Set(KeyEquityName, cfg.EquityName)
	v.Set(KeyEquityOpeningName, cfg.EquityOpeningName)
	v.Set(KeyOpeningText, cfg.OpeningText)
	v.Set(KeyCurrency, cfg.Currency)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// Package config reads weighin settings from the environment. A .env file in
// the working directory is loaded first when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/alexanderramin/weighin/internal/domain"
	"github.com/alexanderramin/weighin/internal/targets"
	"github.com/joho/godotenv"
)

// Config holds all runtime configuration.
type Config struct {
	// DBPath is a SQLite path or a postgres:// URL.
	DBPath string
	// FoodDBPath points at a FoodData Central SQLite export. Empty means the
	// embedded reference list only.
	FoodDBPath    string
	User          string
	BaselineModel string
	TrendWindow   int
	TolerancePct  float64
	AdjustEnabled bool
	LogUseCases   bool
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		DBPath:        defaultDBPath(),
		User:          defaultUser(),
		BaselineModel: targets.ModelWeightMultiplier,
		TrendWindow:   targets.DefaultTrendWindow,
		TolerancePct:  targets.DefaultTolerancePct,
		AdjustEnabled: true,
	}
}

// Load reads a .env file if present, then the environment, and validates
// the result.
func Load() (Config, error) {
	// a missing .env is fine
	_ = godotenv.Load()

	cfg := LoadConfig()
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads configuration from environment variables,
// falling back to defaults for any unset or unparsable values.
func LoadConfig() Config {
	cfg := DefaultConfig()

	if v := os.Getenv("WEIGHIN_DB"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("WEIGHIN_FOOD_DB"); v != "" {
		cfg.FoodDBPath = v
	}
	if v := os.Getenv("WEIGHIN_USER"); v != "" {
		cfg.User = v
	}
	if v := os.Getenv("WEIGHIN_BASELINE_MODEL"); v != "" {
		cfg.BaselineModel = v
	}
	if v := os.Getenv("WEIGHIN_TREND_WINDOW"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 2 {
			cfg.TrendWindow = n
		}
	}
	if v := os.Getenv("WEIGHIN_TOLERANCE_PCT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f < 1 {
			cfg.TolerancePct = f
		}
	}
	if v := os.Getenv("WEIGHIN_ADJUST"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.AdjustEnabled = b
		}
	}
	if v := os.Getenv("WEIGHIN_LOG_USE_CASES"); v != "" {
		cfg.LogUseCases, _ = strconv.ParseBool(v)
	}

	return cfg
}

// Validate rejects settings that must not be silently defaulted.
func (c Config) Validate() error {
	if _, err := c.Baseline(); err != nil {
		return fmt.Errorf("WEIGHIN_BASELINE_MODEL: %w", err)
	}
	if c.DBPath == "" {
		return fmt.Errorf("%w: WEIGHIN_DB is empty", domain.ErrConfiguration)
	}
	return nil
}

// Baseline resolves the configured baseline calorie model.
func (c Config) Baseline() (targets.BaselineModel, error) {
	return targets.BaselineModelByName(c.BaselineModel)
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".weighin", "weighin.db")
	}
	return filepath.Join(home, ".weighin", "weighin.db")
}

func defaultUser() string {
	return domain.CoalesceStr(os.Getenv("USER"), "default")
}

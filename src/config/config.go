// Package config loads runtime defaults from SOULVIZ_* environment variables.
// Command-line flags override these values.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/iafilius/SoulPullViz/src/types"
)

// Config holds the environment-driven defaults.
type Config struct {
	PullResultsFile string `env:"PULL_RESULTS" envDefault:"pull_results.csv"`
	SoulResultsFile string `env:"SOUL_RESULTS" envDefault:"soul_results.csv"`
	LogLevel        string `env:"LOG_LEVEL" envDefault:"info"`
	ChartWidth      int    `env:"CHART_WIDTH" envDefault:"1200"`
	ChartHeight     int    `env:"CHART_HEIGHT" envDefault:"700"`
	// PullCost is the diamond price of a single pull.
	PullCost int `env:"PULL_COST" envDefault:"300"`
}

const envPrefix = "SOULVIZ_"

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: envPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ChartWidth <= 0 || cfg.ChartHeight <= 0 {
		return Config{}, fmt.Errorf("chart size must be positive, got %dx%d", cfg.ChartWidth, cfg.ChartHeight)
	}
	if cfg.PullCost < 0 {
		return Config{}, fmt.Errorf("pull cost must not be negative, got %d", cfg.PullCost)
	}
	return cfg, nil
}

// InputFile resolves the CSV path for a mode: an explicit override wins,
// then the configured file, then the mode's default name.
func (c Config) InputFile(mode types.Mode, override string) string {
	if override != "" {
		return override
	}
	var configured string
	switch mode {
	case types.TargetSouls:
		configured = c.PullResultsFile
	case types.FixedPulls:
		configured = c.SoulResultsFile
	}
	if configured != "" {
		return configured
	}
	return mode.DefaultFile()
}

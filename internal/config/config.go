// Copyright (c) 2026 Petar Djukic. All rights reserved.
// SPDX-License-Identifier: MIT

// Package config resolves CLI settings from .jyotish.yaml, JYOTISH_* env
// vars and flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a setting fails validation.
var ErrInvalidConfig = errors.New("invalid config")

// Output formats.
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Config holds the runtime settings of the jyotish CLI.
type Config struct {
	Format      string `mapstructure:"format"`       // json or text
	Workers     int    `mapstructure:"workers"`      // Concurrent charts in batch mode
	RankSize    int    `mapstructure:"rank_size"`    // Strongest/weakest list length
	SkipAspects bool   `mapstructure:"skip_aspects"` // Omit per-house aspect lists
	MetricsAddr string `mapstructure:"metrics_addr"` // Empty disables /metrics
	LogLevel    string `mapstructure:"log_level"`
	Verbose     bool   `mapstructure:"verbose"` // Forces debug logging
	Plain       bool   `mapstructure:"plain"`   // Text output without colours
}

// SetDefaults registers the built-in default of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("format", FormatJSON)
	v.SetDefault("workers", 4)
	v.SetDefault("rank_size", 3)
	v.SetDefault("skip_aspects", false)
	v.SetDefault("metrics_addr", "")
	v.SetDefault("log_level", "info")
	v.SetDefault("verbose", false)
	v.SetDefault("plain", false)
}

// Load reads configuration from v, applying built-in defaults for any value
// not set by config file, environment or flags. A nil v uses the global
// viper instance.
func Load(v *viper.Viper) (Config, error) {
	if v == nil {
		v = viper.GetViper()
	}
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	cfg.Format = strings.ToLower(strings.TrimSpace(cfg.Format))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks every setting.
func (c Config) Validate() error {
	if c.Format != FormatJSON && c.Format != FormatText {
		return fmt.Errorf("%w: format must be %q or %q, got %q", ErrInvalidConfig, FormatJSON, FormatText, c.Format)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be at least 1", ErrInvalidConfig)
	}
	if c.RankSize < 1 || c.RankSize > 12 {
		return fmt.Errorf("%w: rank_size must be in 1..12", ErrInvalidConfig)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level, debug when Verbose is set.
func (c Config) Level() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	lvl, err := parseLevel(c.LogLevel)
	if err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func parseLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, s)
	}
	return lvl, nil
}

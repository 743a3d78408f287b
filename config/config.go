/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/humaidq/clinicalc/gate"
	"github.com/humaidq/clinicalc/reference"
)

// Config holds file-based defaults. Command-line flags and environment
// variables override these values.
type Config struct {
	Web         WebConfig         `toml:"web"`
	Database    DatabaseConfig    `toml:"database"`
	Calculators CalculatorsConfig `toml:"calculators"`
	Logging     LoggingConfig     `toml:"logging"`
}

// WebConfig configures the web server.
type WebConfig struct {
	Port      string `toml:"port"`
	Env       string `toml:"env"`
	SiteTitle string `toml:"site_title"`
}

// DatabaseConfig configures the optional reference range database.
type DatabaseConfig struct {
	URL string `toml:"url"`
}

// CalculatorsConfig configures calculator defaults.
type CalculatorsConfig struct {
	// Gender selects sex-specific reference ranges.
	Gender string `toml:"gender"`
	// BannerDelay is how long validation messages stay visible.
	BannerDelay Duration `toml:"banner_delay"`
}

// LoggingConfig configures log output.
type LoggingConfig struct {
	// File receives log output while the terminal UI owns the screen.
	File string `toml:"file"`
}

// Duration is a wrapper for time.Duration that supports TOML marshaling.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler for Duration.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}

	d.Duration = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler for Duration.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Web: WebConfig{
			Port: "8080",
			Env:  EnvProduction,
		},
		Calculators: CalculatorsConfig{
			Gender:      string(reference.GenderUnisex),
			BannerDelay: Duration{gate.DefaultDismissDelay},
		},
		Logging: LoggingConfig{
			File: "clinicalc.log",
		},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, 0, len(undecoded))
		for _, k := range undecoded {
			keys = append(keys, k.String())
		}

		return nil, fmt.Errorf("%w: %s", ErrUnknownKeys, strings.Join(keys, ", "))
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks values that flags cannot fix later.
func (c *Config) Validate() error {
	var errs []error

	if _, err := NormalizeEnv(c.Web.Env); err != nil {
		errs = append(errs, err)
	}

	if c.Calculators.BannerDelay.Duration <= 0 {
		errs = append(errs, ErrInvalidBannerDelay)
	}

	switch reference.Gender(c.Calculators.Gender) {
	case reference.GenderMale, reference.GenderFemale, reference.GenderUnisex:
	default:
		errs = append(errs, fmt.Errorf("%w: %q", ErrInvalidGender, c.Calculators.Gender))
	}

	return errors.Join(errs...)
}

// Runtime environments.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// NormalizeEnv maps env aliases onto EnvDevelopment or EnvProduction.
func NormalizeEnv(env string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "", "production", "prod":
		return EnvProduction, nil
	case "development", "dev":
		return EnvDevelopment, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidEnv, env)
	}
}

// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "clinicalc.toml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Web.Port != "8080" {
		t.Fatalf("port = %q, want 8080", cfg.Web.Port)
	}

	if cfg.Calculators.BannerDelay.Duration != 3*time.Second {
		t.Fatalf("banner delay = %v, want 3s", cfg.Calculators.BannerDelay)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
[web]
port = "9090"
env = "dev"
site_title = "Ward 4 Calculators"

[database]
url = "postgres://localhost/clinicalc"

[calculators]
gender = "Female"
banner_delay = "5s"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Web.Port != "9090" || cfg.Web.SiteTitle != "Ward 4 Calculators" {
		t.Fatalf("unexpected web config: %+v", cfg.Web)
	}

	if cfg.Database.URL != "postgres://localhost/clinicalc" {
		t.Fatalf("unexpected database url %q", cfg.Database.URL)
	}

	if cfg.Calculators.Gender != "Female" || cfg.Calculators.BannerDelay.Duration != 5*time.Second {
		t.Fatalf("unexpected calculators config: %+v", cfg.Calculators)
	}

	// Unset keys keep their defaults.
	if cfg.Logging.File != "clinicalc.log" {
		t.Fatalf("log file = %q, want default", cfg.Logging.File)
	}
}

func TestLoadRejectsInvalidFiles(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    error
	}{
		{name: "unknown key", content: "[web]\nhost = \"0.0.0.0\"\n", want: ErrUnknownKeys},
		{name: "bad env", content: "[web]\nenv = \"staging\"\n", want: ErrInvalidEnv},
		{name: "zero delay", content: "[calculators]\nbanner_delay = \"0s\"\n", want: ErrInvalidBannerDelay},
		{name: "bad gender", content: "[calculators]\ngender = \"x\"\n", want: ErrInvalidGender},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := Load(writeConfig(t, tt.content))
			if !errors.Is(err, tt.want) {
				t.Fatalf("Load error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestLoadRejectsBadDuration(t *testing.T) {
	t.Parallel()

	if _, err := Load(writeConfig(t, "[calculators]\nbanner_delay = \"soon\"\n")); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestNormalizeEnv(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]string{
		"":             EnvProduction,
		"prod":         EnvProduction,
		"Production":   EnvProduction,
		"dev":          EnvDevelopment,
		" development": EnvDevelopment,
	} {
		got, err := NormalizeEnv(in)
		if err != nil || got != want {
			t.Fatalf("NormalizeEnv(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
}

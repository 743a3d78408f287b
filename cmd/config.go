/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/clinicalc/config"
)

// settingsFlags are shared by every command that runs calculators.
func settingsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Sources: cli.EnvVars("CLINICALC_CONFIG"),
			Usage:   "path to a TOML config file",
		},
		&cli.StringFlag{
			Name:    "gender",
			Sources: cli.EnvVars("CLINICALC_GENDER"),
			Usage:   "default reference range gender (Male, Female, Unisex)",
		},
		&cli.DurationFlag{
			Name:    "banner-delay",
			Sources: cli.EnvVars("CLINICALC_BANNER_DELAY"),
			Usage:   "how long validation messages stay visible",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string for reference ranges (optional)",
		},
	}
}

// loadConfig reads the config file and applies every flag that was set,
// either on the command line or through its environment variable.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("port") {
		cfg.Web.Port = cmd.String("port")
	}

	if cmd.IsSet("env") {
		cfg.Web.Env = cmd.String("env")
	}

	if cmd.IsSet("site-title") {
		cfg.Web.SiteTitle = cmd.String("site-title")
	}

	if cmd.IsSet("database-url") {
		cfg.Database.URL = cmd.String("database-url")
	}

	if cmd.IsSet("gender") {
		cfg.Calculators.Gender = cmd.String("gender")
	}

	if cmd.IsSet("banner-delay") {
		cfg.Calculators.BannerDelay = config.Duration{Duration: cmd.Duration("banner-delay")}
	}

	if cmd.IsSet("log-file") {
		cfg.Logging.File = cmd.String("log-file")
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	env, err := config.NormalizeEnv(cfg.Web.Env)
	if err != nil {
		return nil, err
	}

	cfg.Web.Env = env

	return cfg, nil
}

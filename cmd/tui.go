/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/clinicalc/reference"
	"github.com/humaidq/clinicalc/tui"
)

// CmdTUI runs the calculators in the terminal.
var CmdTUI = &cli.Command{
	Name:  "tui",
	Usage: "Run the calculators in an interactive terminal UI",
	Flags: append([]cli.Flag{
		&cli.StringFlag{
			Name:    "log-file",
			Sources: cli.EnvVars("CLINICALC_LOG_FILE"),
			Usage:   "file that receives log output while the UI is running",
		},
	}, settingsFlags()...),
	Action: runTUI,
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logFile, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	defer func() {
		if cerr := logFile.Close(); cerr != nil {
			appLogger.Warn("Failed to close log file", "error", cerr)
		}
	}()

	store, closeStore, err := openReferenceStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return tui.Run(ctx, tui.Options{
		Store:       store,
		Gender:      reference.ParseGender(cfg.Calculators.Gender),
		BannerDelay: cfg.Calculators.BannerDelay.Duration,
		LogOutput:   logFile,
	})
}

/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package tui is the terminal front end of the calculators and converters.
package tui

import (
	"context"
	"fmt"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/humaidq/clinicalc/gate"
	"github.com/humaidq/clinicalc/logging"
	"github.com/humaidq/clinicalc/reference"
)

// Options configures Run.
type Options struct {
	Store       reference.Store
	Gender      reference.Gender
	BannerDelay time.Duration
	// LogOutput receives log output while the terminal is taken over.
	// Logging is discarded when nil.
	LogOutput io.Writer
}

// Run starts the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	out := opts.LogOutput
	if out == nil {
		out = io.Discard
	}

	restore := logging.SetOutput(out)
	defer restore()

	banner := gate.NewBanner(opts.BannerDelay)

	p := tea.NewProgram(
		New(ctx, opts.Store, opts.Gender, banner),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	// Send blocks until the event loop reads the message, and the banner
	// reports changes from inside Update.
	banner.OnChange = func(string) { go p.Send(bannerChangedMsg{}) }

	logger.Info("Starting TUI", "banner_delay", banner.Delay(), "gender", opts.Gender)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}

	return nil
}

/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/humaidq/clinicalc/config"
	"github.com/humaidq/clinicalc/db"
	"github.com/humaidq/clinicalc/reference"
)

// openReferenceStore connects to the database when one is configured and
// falls back to the built-in ranges otherwise. The returned func releases
// the connection.
func openReferenceStore(ctx context.Context, cfg *config.Config) (reference.Store, func(), error) {
	if cfg.Database.URL == "" {
		appLogger.Info("No database configured, using built-in reference ranges")
		return reference.NewStatic(), func() {}, nil
	}

	// Set DATABASE_URL for db package
	if err := os.Setenv("DATABASE_URL", cfg.Database.URL); err != nil {
		return nil, nil, fmt.Errorf("failed to set DATABASE_URL: %w", err)
	}

	appLogger.Info("Connecting to database...")

	if err := db.Init(ctx); err != nil {
		return nil, nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	appLogger.Info("Syncing database schema...")

	if err := db.SyncSchema(ctx); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("failed to sync schema: %w", err)
	}

	return db.NewReferenceStore(), db.Close, nil
}

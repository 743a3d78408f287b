/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"errors"

	"github.com/humaidq/clinicalc/gate"
)

var (
	errDatabaseURLRequired   = errors.New("database-url is required (set via --database-url or DATABASE_URL env var)")
	errMigrationNameRequired = errors.New("migration name is required")
	errCSRFSecretRequired    = errors.New("CSRF_SECRET is required in production")
	errConflictingInputs     = errors.New("exactly one input flag must be set")
	errNothingToConvert      = errors.New(gate.ConvertMessage)
)

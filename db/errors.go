/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import "errors"

var (
	// ErrDatabaseURLEnvVarNotSet is returned when DATABASE_URL is empty.
	ErrDatabaseURLEnvVarNotSet = errors.New("DATABASE_URL environment variable is not set")
	// ErrDatabaseNameNotSpecified is returned when the URL names no database.
	ErrDatabaseNameNotSpecified = errors.New("database name not specified in DATABASE_URL")
	// ErrDatabaseConnectionNotInitialized is returned before Init succeeds.
	ErrDatabaseConnectionNotInitialized = errors.New("database connection not initialized")
)

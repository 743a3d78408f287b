// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"errors"
	"os"
	"testing"
)

func TestInitRequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if err := Init(testContext()); !errors.Is(err, ErrDatabaseURLEnvVarNotSet) {
		t.Fatalf("Init() error = %v, want %v", err, ErrDatabaseURLEnvVarNotSet)
	}
}

func TestInitInvalidDatabaseURL(t *testing.T) {
	saved := pool

	t.Setenv("DATABASE_URL", "postgres://%zz")

	if err := Init(testContext()); err == nil {
		t.Fatalf("expected error for invalid database url")
	}

	if pool != saved {
		t.Fatalf("failed Init replaced the pool")
	}
}

func TestEnabledFollowsDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if Enabled() {
		t.Fatalf("expected database to be disabled")
	}

	t.Setenv("DATABASE_URL", "postgres://localhost/clinicalc")

	if !Enabled() {
		t.Fatalf("expected database to be enabled")
	}
}

func TestPingWithoutPool(t *testing.T) {
	saved := pool
	pool = nil

	t.Cleanup(func() { pool = saved })

	if err := Ping(testContext()); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("Ping() error = %v, want %v", err, ErrDatabaseConnectionNotInitialized)
	}

	if err := SyncSchema(testContext()); !errors.Is(err, ErrDatabaseConnectionNotInitialized) {
		t.Fatalf("SyncSchema() error = %v, want %v", err, ErrDatabaseConnectionNotInitialized)
	}
}

func TestGetPoolAndClose(t *testing.T) {
	requireDatabase(t)

	if GetPool() == nil {
		t.Fatalf("expected pool to be initialized")
	}

	Close()

	if GetPool() != nil {
		t.Fatalf("expected Close to clear the pool")
	}

	if err := useTestPool(testContext(), os.Getenv("DATABASE_URL")); err != nil {
		t.Fatalf("failed to re-open test pool: %v", err)
	}
}

func TestSyncSchema(t *testing.T) {
	requireDatabase(t)

	searchPathURL, err := withSearchPath(os.Getenv("DATABASE_URL"), testSchemaName)
	if err != nil {
		t.Fatalf("withSearchPath failed: %v", err)
	}

	t.Setenv("DATABASE_URL", searchPathURL)

	if err := SyncSchema(testContext()); err != nil {
		t.Fatalf("SyncSchema failed: %v", err)
	}

	if err := Ping(testContext()); err != nil {
		t.Fatalf("Ping failed: %v", err)
	}
}

func TestInitSuccess(t *testing.T) {
	requireDatabase(t)

	baseURL := os.Getenv("DATABASE_URL")

	t.Cleanup(func() {
		if err := useTestPool(testContext(), baseURL); err != nil {
			t.Fatalf("failed to re-open test pool: %v", err)
		}
	})

	Close()

	if err := Init(testContext()); err != nil {
		t.Fatalf("Init failed: %v", err)
	}

	if GetPool() == nil {
		t.Fatalf("expected pool to be initialized")
	}
}

/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// duplicateDatabase is the SQLSTATE Postgres reports for CREATE DATABASE on
// an existing name.
const duplicateDatabase = "42P04"

// The pool only serves reference range lookups.
const (
	maxConns = 4
	minConns = 1
)

var pool *pgxpool.Pool

// Enabled reports whether a database URL is configured. The calculators
// run without a database and fall back to the built-in reference ranges.
func Enabled() bool {
	return os.Getenv("DATABASE_URL") != ""
}

// Init creates the database named by DATABASE_URL if needed and opens the
// package pool. A failed Init leaves any existing pool in place.
func Init(ctx context.Context) error {
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		return ErrDatabaseURLEnvVarNotSet
	}

	if err := ensureDatabaseExists(ctx, databaseURL); err != nil {
		return fmt.Errorf("failed to ensure database exists: %w", err)
	}

	p, err := openPool(ctx, databaseURL, "")
	if err != nil {
		return err
	}

	pool = p

	return nil
}

// GetPool returns the database connection pool
func GetPool() *pgxpool.Pool {
	return pool
}

// Close closes the database connection pool
func Close() {
	if pool != nil {
		pool.Close()
		pool = nil
	}
}

// Ping checks that the pool can reach the database.
func Ping(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	return pool.Ping(ctx)
}

// openPool connects and pings a pool. A non-empty searchPath pins every
// connection to it.
func openPool(ctx context.Context, databaseURL, searchPath string) (*pgxpool.Pool, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database URL: %w", err)
	}

	config.MaxConns = maxConns
	config.MinConns = minConns

	if searchPath != "" {
		if config.ConnConfig.RuntimeParams == nil {
			config.ConnConfig.RuntimeParams = map[string]string{}
		}

		config.ConnConfig.RuntimeParams["search_path"] = searchPath
	}

	p, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	if err := p.Ping(ctx); err != nil {
		p.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return p, nil
}

// withConn runs fn on a single connection. A non-empty database overrides
// the one named in databaseURL.
func withConn(ctx context.Context, databaseURL, database string, fn func(*pgx.Conn) error) error {
	config, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	if database != "" {
		config.Database = database
	}

	conn, err := pgx.ConnectConfig(ctx, config)
	if err != nil {
		return fmt.Errorf("failed to connect to %s: %w", config.Database, err)
	}

	defer func() {
		if err := conn.Close(ctx); err != nil {
			logger.Warn("Failed to close database connection", "error", err)
		}
	}()

	return fn(conn)
}

// ensureDatabaseExists creates the target database through the postgres
// maintenance database.
func ensureDatabaseExists(ctx context.Context, databaseURL string) error {
	config, err := pgx.ParseConfig(databaseURL)
	if err != nil {
		return fmt.Errorf("failed to parse database URL: %w", err)
	}

	name := config.Database
	if name == "" {
		return ErrDatabaseNameNotSpecified
	}

	return withConn(ctx, databaseURL, "postgres", func(conn *pgx.Conn) error {
		var exists bool

		err := conn.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM pg_database WHERE datname = $1)", name).Scan(&exists)
		if err != nil {
			return fmt.Errorf("failed to check if database exists: %w", err)
		}

		if exists {
			return nil
		}

		// Database names cannot be bound as parameters.
		_, err = conn.Exec(ctx, "CREATE DATABASE "+pgx.Identifier{name}.Sanitize())

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == duplicateDatabase {
			return nil
		}

		if err != nil {
			return fmt.Errorf("failed to create database: %w", err)
		}

		logger.Info("Created database", "name", name)

		return nil
	})
}

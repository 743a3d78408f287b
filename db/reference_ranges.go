/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/humaidq/clinicalc/formula"
	"github.com/humaidq/clinicalc/reference"
)

// ReferenceRange is a stored row of the reference_ranges table.
type ReferenceRange struct {
	ID        uuid.UUID `db:"id"`
	Range     reference.Range
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// SyncReferenceRanges synchronizes reference ranges from Go code to the database
// This is called on application startup to ensure database has latest ranges
func SyncReferenceRanges(ctx context.Context) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	definitions := reference.Definitions()
	logger.Infof("Syncing %d reference range definitions to database...", len(definitions))

	// Use UPSERT (INSERT ... ON CONFLICT DO UPDATE) for each range
	query := `
		INSERT INTO reference_ranges (test_name, gender, unit, reference_min, reference_max, optimal_min, optimal_max)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (test_name, gender)
		DO UPDATE SET
			unit = EXCLUDED.unit,
			reference_min = EXCLUDED.reference_min,
			reference_max = EXCLUDED.reference_max,
			optimal_min = EXCLUDED.optimal_min,
			optimal_max = EXCLUDED.optimal_max,
			updated_at = now()
	`

	batch := &pgx.Batch{}
	for _, def := range definitions {
		batch.Queue(query,
			def.TestName, string(def.Gender), string(def.Unit),
			def.ReferenceMin, def.ReferenceMax,
			def.OptimalMin, def.OptimalMax,
		)
	}

	results := pool.SendBatch(ctx, batch)

	syncCount := 0

	for _, def := range definitions {
		if _, err := results.Exec(); err != nil {
			_ = results.Close()

			return fmt.Errorf("failed to sync reference range for %s/%s: %w",
				def.TestName, def.Gender, err)
		}

		syncCount++
	}

	if err := results.Close(); err != nil {
		return fmt.Errorf("failed to finish reference range sync: %w", err)
	}

	logger.Infof("Successfully synced %d reference ranges", syncCount)

	return nil
}

const referenceRangeColumns = `id, test_name, gender, unit, reference_min, reference_max, optimal_min, optimal_max, created_at, updated_at`

func scanReferenceRange(row pgx.Row) (*ReferenceRange, error) {
	var (
		rr     ReferenceRange
		gender string
		unit   string
	)

	err := row.Scan(
		&rr.ID, &rr.Range.TestName, &gender, &unit,
		&rr.Range.ReferenceMin, &rr.Range.ReferenceMax,
		&rr.Range.OptimalMin, &rr.Range.OptimalMax,
		&rr.CreatedAt, &rr.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	rr.Range.Gender = reference.Gender(gender)
	rr.Range.Unit = formula.Unit(unit)

	return &rr, nil
}

// GetReferenceRange retrieves the reference range for a given test and gender
func GetReferenceRange(ctx context.Context, testName string, gender reference.Gender) (*ReferenceRange, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	query := `SELECT ` + referenceRangeColumns + `
		FROM reference_ranges
		WHERE test_name = $1 AND gender = $2
	`

	// First try exact match (test + gender)
	rr, err := scanReferenceRange(pool.QueryRow(ctx, query, testName, string(gender)))
	if err == nil {
		return rr, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to query reference range: %w", err)
	}

	// If no gender-specific match, try unisex
	rr, err = scanReferenceRange(pool.QueryRow(ctx, query, testName, string(reference.GenderUnisex)))
	if err == nil {
		return rr, nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to query reference range: %w", err)
	}

	// No matching range found
	return nil, nil //nolint:nilnil // Missing reference ranges are expected for some tests.
}

// ListReferenceRanges returns every stored range ordered by test and gender.
func ListReferenceRanges(ctx context.Context) ([]ReferenceRange, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	rows, err := pool.Query(ctx, `SELECT `+referenceRangeColumns+`
		FROM reference_ranges
		ORDER BY test_name, gender
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to list reference ranges: %w", err)
	}
	defer rows.Close()

	var ranges []ReferenceRange

	for rows.Next() {
		rr, err := scanReferenceRange(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan reference range: %w", err)
		}

		ranges = append(ranges, *rr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reference ranges: %w", err)
	}

	return ranges, nil
}

// ReferenceStore serves reference ranges from the database.
type ReferenceStore struct{}

// NewReferenceStore returns a store backed by the initialized pool.
func NewReferenceStore() *ReferenceStore {
	return &ReferenceStore{}
}

// Lookup implements reference.Store.
func (ReferenceStore) Lookup(ctx context.Context, testName string, gender reference.Gender) (*reference.Range, error) {
	rr, err := GetReferenceRange(ctx, testName, gender)
	if err != nil || rr == nil {
		return nil, err
	}

	return &rr.Range, nil
}

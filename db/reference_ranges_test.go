// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"io/fs"
	"testing"

	"github.com/humaidq/clinicalc/formula"
	"github.com/humaidq/clinicalc/reference"
)

func TestReferenceRangeLookup(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	if err := SyncReferenceRanges(ctx); err != nil {
		t.Fatalf("SyncReferenceRanges failed: %v", err)
	}

	if _, err := fs.ReadDir(GetEmbeddedMigrations(), "migrations"); err != nil {
		t.Fatalf("expected embedded migrations: %v", err)
	}

	defs := reference.Definitions()
	if len(defs) == 0 {
		t.Fatalf("expected reference range definitions")
	}

	first := defs[0]
	rangeResult, err := GetReferenceRange(ctx, first.TestName, first.Gender)
	if err != nil {
		t.Fatalf("GetReferenceRange failed: %v", err)
	}
	if rangeResult == nil {
		t.Fatalf("expected reference range result")
	}
	if rangeResult.Range.Unit != first.Unit {
		t.Fatalf("unit = %q, want %q", rangeResult.Range.Unit, first.Unit)
	}
}

func TestReferenceRangeSyncIsIdempotent(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	for i := 0; i < 2; i++ {
		if err := SyncReferenceRanges(ctx); err != nil {
			t.Fatalf("SyncReferenceRanges failed: %v", err)
		}
	}

	ranges, err := ListReferenceRanges(ctx)
	if err != nil {
		t.Fatalf("ListReferenceRanges failed: %v", err)
	}

	if len(ranges) != len(reference.Definitions()) {
		t.Fatalf("stored %d ranges, want %d", len(ranges), len(reference.Definitions()))
	}
}

func TestReferenceStoreMatchesStatic(t *testing.T) {
	resetDatabase(t)
	ctx := testContext()

	if err := SyncReferenceRanges(ctx); err != nil {
		t.Fatalf("SyncReferenceRanges failed: %v", err)
	}

	store := NewReferenceStore()
	static := reference.NewStatic()

	cases := []struct {
		test   string
		gender reference.Gender
	}{
		{reference.TestHDL, reference.GenderFemale},
		{reference.TestLDL, reference.GenderMale},
		{reference.TestUricAcid, reference.GenderMale},
		{reference.TestHDL, reference.GenderUnisex},
		{"Unknown", reference.GenderMale},
	}

	for _, tc := range cases {
		got, err := store.Lookup(ctx, tc.test, tc.gender)
		if err != nil {
			t.Fatalf("Lookup(%s, %s) failed: %v", tc.test, tc.gender, err)
		}

		want, _ := static.Lookup(ctx, tc.test, tc.gender)
		if (got == nil) != (want == nil) {
			t.Fatalf("Lookup(%s, %s) = %+v, want %+v", tc.test, tc.gender, got, want)
		}

		if got != nil && (got.Gender != want.Gender || got.Unit != want.Unit) {
			t.Fatalf("Lookup(%s, %s) = %+v, want %+v", tc.test, tc.gender, got, want)
		}
	}

	q := formula.Quantity{Value: 160, Unit: formula.UnitMgDL, Decimals: 0}

	c, err := reference.Evaluate(ctx, store, reference.TestLDL, reference.GenderMale, q)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if c == nil || c.Status != reference.StatusOutOfReference {
		t.Fatalf("unexpected classification: %+v", c)
	}
}

func TestLookupRequiresPool(t *testing.T) {
	saved := pool
	pool = nil

	t.Cleanup(func() { pool = saved })

	if _, err := GetReferenceRange(testContext(), reference.TestLDL, reference.GenderMale); err == nil {
		t.Fatal("expected error without pool")
	}
}

// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package formula

import (
	"errors"
	"math"
	"testing"
)

func TestLDL(t *testing.T) {
	t.Parallel()

	t.Run("mg/dL panel", func(t *testing.T) {
		t.Parallel()

		res, err := LDL(LipidInput{TotalCholesterol: 200, HDL: 50, Triglycerides: 150, Unit: LipidMgDL})
		if err != nil {
			t.Fatalf("LDL failed: %v", err)
		}

		assertQuantity(t, res.LDLMgDL, "120.0", UnitMgDL)
		assertQuantity(t, res.LDLMmolL, "3.11", UnitMmolL)
		assertQuantity(t, res.NonHDLMgDL, "150.0", UnitMgDL)

		if res.Category != LDLNearOptimal {
			t.Fatalf("expected %q, got %q", LDLNearOptimal, res.Category)
		}

		if res.Qualified() {
			t.Fatalf("did not expect advisories, got %v", res.Advisories)
		}

		if res.TGHDLRatio == nil || res.TGHDLRatio.String() != "3.00" {
			t.Fatalf("unexpected TG/HDL ratio %v", res.TGHDLRatio)
		}

		if res.AtherogenicCoefficient == nil || res.AtherogenicCoefficient.String() != "3.00" {
			t.Fatalf("unexpected atherogenic coefficient %v", res.AtherogenicCoefficient)
		}
	})

	t.Run("high triglycerides is qualified", func(t *testing.T) {
		t.Parallel()

		res, err := LDL(LipidInput{TotalCholesterol: 200, HDL: 50, Triglycerides: 450, Unit: LipidMgDL})
		if err != nil {
			t.Fatalf("LDL failed: %v", err)
		}

		assertQuantity(t, res.LDLMgDL, "60.0", UnitMgDL)

		if !res.Qualified() || res.Advisories[0] != AdvisoryFriedewaldUnreliable {
			t.Fatalf("expected Friedewald advisory, got %v", res.Advisories)
		}
	})

	t.Run("boundary triglycerides is not qualified", func(t *testing.T) {
		t.Parallel()

		res, err := LDL(LipidInput{TotalCholesterol: 200, HDL: 50, Triglycerides: 400, Unit: LipidMgDL})
		if err != nil {
			t.Fatalf("LDL failed: %v", err)
		}

		if res.Qualified() {
			t.Fatalf("did not expect advisory at exactly 400 mg/dL")
		}
	})

	t.Run("mmol/L panel converts first", func(t *testing.T) {
		t.Parallel()

		res, err := LDL(LipidInput{TotalCholesterol: 5.18, HDL: 1.295, Triglycerides: 1.695, Unit: LipidMmolL})
		if err != nil {
			t.Fatalf("LDL failed: %v", err)
		}

		assertQuantity(t, res.LDLMgDL, "120.0", UnitMgDL)
		assertQuantity(t, res.LDLMmolL, "3.11", UnitMmolL)

		if res.Qualified() {
			t.Fatalf("did not expect advisories")
		}
	})

	t.Run("mmol/L high triglycerides", func(t *testing.T) {
		t.Parallel()

		res, err := LDL(LipidInput{TotalCholesterol: 6, HDL: 1, Triglycerides: 4.6, Unit: LipidMmolL})
		if err != nil {
			t.Fatalf("LDL failed: %v", err)
		}

		if !res.Qualified() {
			t.Fatalf("expected advisory above 4.52 mmol/L")
		}
	})

	t.Run("negative estimate is passed through", func(t *testing.T) {
		t.Parallel()

		res, err := LDL(LipidInput{TotalCholesterol: 100, HDL: 90, Triglycerides: 300, Unit: LipidMgDL})
		if err != nil {
			t.Fatalf("LDL failed: %v", err)
		}

		assertFloatClose(t, res.LDLMgDL.Value, -50)

		if res.Category != LDLOptimal {
			t.Fatalf("expected %q, got %q", LDLOptimal, res.Category)
		}
	})

	t.Run("zero HDL omits ratios", func(t *testing.T) {
		t.Parallel()

		res, err := LDL(LipidInput{TotalCholesterol: 200, HDL: 0, Triglycerides: 100, Unit: LipidMgDL})
		if err != nil {
			t.Fatalf("LDL failed: %v", err)
		}

		if res.TGHDLRatio != nil || res.AtherogenicCoefficient != nil {
			t.Fatalf("expected ratios to be omitted")
		}
	})

	t.Run("non-finite input", func(t *testing.T) {
		t.Parallel()

		_, err := LDL(LipidInput{TotalCholesterol: math.NaN(), HDL: 50, Triglycerides: 100, Unit: LipidMgDL})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})
}

func TestCategorizeLDL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		mgdl float64
		want LDLCategory
	}{
		{mgdl: 99.9, want: LDLOptimal},
		{mgdl: 100, want: LDLNearOptimal},
		{mgdl: 130, want: LDLBorderlineHigh},
		{mgdl: 160, want: LDLHigh},
		{mgdl: 189.9, want: LDLHigh},
		{mgdl: 190, want: LDLVeryHigh},
	}

	for _, tt := range tests {
		if got := CategorizeLDL(tt.mgdl); got != tt.want {
			t.Fatalf("CategorizeLDL(%v) = %q, want %q", tt.mgdl, got, tt.want)
		}
	}
}

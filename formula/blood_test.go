// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package formula

import (
	"errors"
	"math"
	"testing"
)

func TestBloodIndices(t *testing.T) {
	t.Parallel()

	t.Run("computes indices", func(t *testing.T) {
		t.Parallel()

		res, err := BloodIndices(15, 45, 5)
		if err != nil {
			t.Fatalf("BloodIndices failed: %v", err)
		}

		assertQuantity(t, res.MCV, "90.0", UnitFemtoliter)
		assertQuantity(t, res.MCH, "30.0", UnitPicogram)
		assertQuantity(t, res.MCHC, "33.3", UnitGramsDL)
	})

	tests := []struct {
		name          string
		hgb, hct, rbc float64
	}{
		{name: "zero hematocrit", hgb: 15, hct: 0, rbc: 5},
		{name: "zero rbc", hgb: 15, hct: 45, rbc: 0},
		{name: "nan hemoglobin", hgb: math.NaN(), hct: 45, rbc: 5},
		{name: "infinite rbc", hgb: 15, hct: 45, rbc: math.Inf(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			res, err := BloodIndices(tt.hgb, tt.hct, tt.rbc)
			if !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}

			if res != (IndicesResult{}) {
				t.Fatalf("expected empty result, got %+v", res)
			}
		})
	}
}

func TestIndirectBilirubin(t *testing.T) {
	t.Parallel()

	assertQuantity(t, IndirectBilirubin(1.2, 0.3), "0.90", UnitMgDL)
	assertQuantity(t, IndirectBilirubin(0.3, 1.2), "-0.90", UnitMgDL)
}

func TestPCV(t *testing.T) {
	t.Parallel()

	assertQuantity(t, PCV(0.45, DecimalToPercent), "45.0", UnitPercent)
	assertQuantity(t, PCV(45, PercentToDecimal), "0.450", UnitLiterL)
	assertQuantity(t, PCV(0.4234, DecimalToPercent), "42.3", UnitPercent)
}

func TestPCVRoundTrip(t *testing.T) {
	t.Parallel()

	for _, x := range []float64{0.05, 0.234, 0.36, 0.423, 0.45, 0.518, 0.7} {
		percent := PCV(x, DecimalToPercent)
		back := PCV(percent.Value, PercentToDecimal)

		if got, want := back.String(), ToFixed(x, 3); got != want {
			t.Fatalf("%v -> %s%% -> %s, want %s", x, percent, back, want)
		}
	}

	for _, x := range []float64{12.5, 36, 42.3, 51.8} {
		decimal := PCV(x, PercentToDecimal)
		back := PCV(decimal.Value, DecimalToPercent)

		if math.Abs(back.Value-x) > 1e-9 {
			t.Fatalf("%v%% -> %s -> %s%% drifted", x, decimal, back)
		}
	}
}

func TestEstimateRBC(t *testing.T) {
	t.Parallel()

	q, err := EstimateRBC(15, 45)
	if err != nil {
		t.Fatalf("EstimateRBC failed: %v", err)
	}

	assertQuantity(t, q, "3.00", UnitRBCCount)

	q, err = EstimateRBC(14, 42)
	if err != nil {
		t.Fatalf("EstimateRBC failed: %v", err)
	}

	assertQuantity(t, q, "2.80", UnitRBCCount)

	if _, err := EstimateRBC(math.Inf(1), 42); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

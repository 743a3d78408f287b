// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package formula

import (
	"math"
	"testing"
)

func assertFloatClose(t *testing.T, got, want float64) {
	t.Helper()

	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func assertQuantity(t *testing.T, q Quantity, want string, unit Unit) {
	t.Helper()

	if got := q.String(); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}

	if q.Unit != unit {
		t.Fatalf("expected unit %q, got %q", unit, q.Unit)
	}
}

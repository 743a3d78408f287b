// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package gate

import (
	"errors"
	"reflect"
	"testing"
)

func TestCheck(t *testing.T) {
	t.Parallel()

	t.Run("ready", func(t *testing.T) {
		t.Parallel()

		r := Check(Field{Name: "weight", Raw: "70"}, Field{Name: "height", Raw: " 175 "})
		if !r.Ready {
			t.Fatalf("expected ready, missing %v", r.Missing)
		}

		if r.Value("weight") != 70 || r.Value("height") != 175 {
			t.Fatalf("unexpected values %v", r.Values)
		}

		if r.Err() != nil {
			t.Fatalf("expected nil error, got %v", r.Err())
		}

		if r.MissingMessage() != "" {
			t.Fatalf("expected empty message, got %q", r.MissingMessage())
		}
	})

	t.Run("missing and unparsable", func(t *testing.T) {
		t.Parallel()

		r := Check(
			Field{Name: "tc", Raw: "200"},
			Field{Name: "hdl", Raw: ""},
			Field{Name: "tg", Raw: "lots"},
		)
		if r.Ready {
			t.Fatalf("expected not ready")
		}

		if !reflect.DeepEqual(r.Missing, []string{"hdl", "tg"}) {
			t.Fatalf("unexpected missing fields %v", r.Missing)
		}

		if r.Values != nil {
			t.Fatalf("expected no values when not ready")
		}

		err := r.Err()
		if !errors.Is(err, ErrMissingInput) || !errors.Is(err, ErrUnparsableInput) {
			t.Fatalf("expected both missing and unparsable errors, got %v", err)
		}

		if got := r.MissingMessage(); got != "Please enter values for hdl and tg" {
			t.Fatalf("unexpected message %q", got)
		}
	})
}

func TestFormCheck(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		form    Form
		values  map[string]string
		ready   bool
		missing []string
	}{
		{
			name:   "bmi ready",
			form:   BMIForm,
			values: map[string]string{FieldWeight: "70", FieldHeight: "175"},
			ready:  true,
		},
		{
			name:    "bmi missing height",
			form:    BMIForm,
			values:  map[string]string{FieldWeight: "70"},
			missing: []string{FieldHeight},
		},
		{
			name:    "ldl all missing",
			form:    LDLForm,
			values:  map[string]string{},
			missing: []string{FieldTotalCholesterol, FieldHDL, FieldTriglycerides},
		},
		{
			name:    "indices non-numeric",
			form:    IndicesForm,
			values:  map[string]string{FieldHemoglobin: "15", FieldHematocrit: "x", FieldRBC: "5"},
			missing: []string{FieldHematocrit},
		},
		{
			name:   "rbc ready",
			form:   RBCForm,
			values: map[string]string{FieldHemoglobin: "15", FieldHematocrit: "45"},
			ready:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := tt.form.CheckValues(tt.values)
			if r.Ready != tt.ready {
				t.Fatalf("expected ready=%v, got %v", tt.ready, r.Ready)
			}

			if !tt.ready && !reflect.DeepEqual(r.Missing, tt.missing) {
				t.Fatalf("expected missing %v, got %v", tt.missing, r.Missing)
			}
		})
	}
}

func TestFormMessages(t *testing.T) {
	t.Parallel()

	if BilirubinForm.Message != "Please enter both total and direct bilirubin values" {
		t.Fatalf("unexpected bilirubin message %q", BilirubinForm.Message)
	}

	if IndicesForm.Message != "Please enter all three values (Hemoglobin, Hematocrit, and RBC count)" {
		t.Fatalf("unexpected indices message %q", IndicesForm.Message)
	}
}

func TestAllEmpty(t *testing.T) {
	t.Parallel()

	if !AllEmpty("", "  ") {
		t.Fatalf("expected blank values to be empty")
	}

	if AllEmpty("", "5") {
		t.Fatalf("expected a filled value to be non-empty")
	}
}

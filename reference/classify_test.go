// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"context"
	"testing"

	"github.com/humaidq/clinicalc/formula"
	"github.com/humaidq/clinicalc/linked"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	glucose := Range{
		TestName: TestGlucose, Gender: GenderUnisex, Unit: formula.UnitMgDL,
		ReferenceMin: ptr(70), ReferenceMax: ptr(99),
		OptimalMin: ptr(75), OptimalMax: ptr(90),
	}
	ldl := Range{
		TestName: TestLDL, Gender: GenderUnisex, Unit: formula.UnitMgDL,
		ReferenceMax: ptr(100), OptimalMax: ptr(70),
	}
	bmi := Range{
		TestName: TestBMI, Gender: GenderUnisex, Unit: formula.UnitKgM2,
		ReferenceMin: ptr(18.5), ReferenceMax: ptr(25),
	}

	tests := []struct {
		name      string
		value     float64
		r         Range
		status    Status
		direction string
	}{
		{name: "glucose optimal", value: 85, r: glucose, status: StatusNormal},
		{name: "glucose above optimal", value: 95, r: glucose, status: StatusOutOfOptimal, direction: "up"},
		{name: "glucose below optimal", value: 72, r: glucose, status: StatusOutOfOptimal, direction: "down"},
		{name: "glucose high", value: 126, r: glucose, status: StatusOutOfReference, direction: "up"},
		{name: "glucose low", value: 60, r: glucose, status: StatusOutOfReference, direction: "down"},
		{name: "ldl optimal", value: 65, r: ldl, status: StatusNormal},
		{name: "ldl optimal min filled from reference", value: 0, r: ldl, status: StatusNormal},
		{name: "ldl near optimal", value: 90, r: ldl, status: StatusOutOfOptimal, direction: "up"},
		{name: "ldl high", value: 160, r: ldl, status: StatusOutOfReference, direction: "up"},
		{name: "bmi normal", value: 22.9, r: bmi, status: StatusNormal},
		{name: "bmi boundary inclusive", value: 25, r: bmi, status: StatusNormal},
		{name: "bmi high", value: 30.9, r: bmi, status: StatusOutOfReference, direction: "up"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := Classify(tt.value, tt.r)
			if c.Status != tt.status {
				t.Fatalf("status = %q, want %q", c.Status, tt.status)
			}

			if c.Direction != tt.direction {
				t.Fatalf("direction = %q, want %q", c.Direction, tt.direction)
			}
		})
	}
}

func TestDisplayRangeFillsOptimalBounds(t *testing.T) {
	t.Parallel()

	r := Range{ReferenceMin: ptr(40), OptimalMin: ptr(50)}

	refMin, refMax, optMin, optMax, hasOptimal := r.DisplayRange()
	if !hasOptimal {
		t.Fatal("expected optimal range")
	}

	if refMin == nil || *refMin != 40 || refMax != nil {
		t.Fatalf("unexpected reference bounds: %v %v", refMin, refMax)
	}

	if optMin == nil || *optMin != 50 || optMax != nil {
		t.Fatalf("unexpected optimal bounds: %v %v", optMin, optMax)
	}

	_, _, optMin, optMax, hasOptimal = Range{ReferenceMax: ptr(200)}.DisplayRange()
	if hasOptimal || optMin != nil || optMax != nil {
		t.Fatal("expected no optimal range")
	}
}

func TestClassificationLabel(t *testing.T) {
	t.Parallel()

	tests := map[Classification]string{
		{Status: StatusNormal}:                            "Within range",
		{Status: StatusOutOfOptimal, Direction: "up"}:     "Above optimal range",
		{Status: StatusOutOfOptimal, Direction: "down"}:   "Below optimal range",
		{Status: StatusOutOfReference, Direction: "up"}:   "Above reference range",
		{Status: StatusOutOfReference, Direction: "down"}: "Below reference range",
	}

	for c, want := range tests {
		if got := c.Label(); got != want {
			t.Fatalf("Label(%+v) = %q, want %q", c, got, want)
		}
	}
}

func TestStaticLookupFallsBackToUnisex(t *testing.T) {
	t.Parallel()

	store := NewStatic()
	ctx := context.Background()

	r, err := store.Lookup(ctx, TestHDL, GenderFemale)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if r == nil || r.Gender != GenderFemale || *r.ReferenceMin != 50 {
		t.Fatalf("unexpected female HDL range: %+v", r)
	}

	r, err = store.Lookup(ctx, TestLDL, GenderMale)
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if r == nil || r.Gender != GenderUnisex {
		t.Fatalf("expected unisex LDL fallback, got %+v", r)
	}

	r, err = store.Lookup(ctx, TestHDL, GenderUnisex)
	if err != nil || r != nil {
		t.Fatalf("expected no unisex HDL range, got %+v, %v", r, err)
	}

	r, err = store.Lookup(ctx, "Unknown", GenderMale)
	if err != nil || r != nil {
		t.Fatalf("expected no range for unknown test, got %+v, %v", r, err)
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()

	store := NewStatic()
	ctx := context.Background()

	bmi, err := formula.BMI(95, formula.WeightKg, 175, formula.HeightCm)
	if err != nil {
		t.Fatalf("BMI failed: %v", err)
	}

	c, err := Evaluate(ctx, store, TestBMI, GenderUnisex, bmi.BMI)
	if err != nil {
		t.Fatalf("Evaluate failed: %v", err)
	}

	if c == nil || c.Status != StatusOutOfReference || c.Direction != "up" {
		t.Fatalf("unexpected BMI classification: %+v", c)
	}

	mmol := formula.LabConvert(formula.Glucose, 100, formula.ToSecondary)

	c, err = Evaluate(ctx, store, TestGlucose, GenderUnisex, mmol)
	if err != nil || c != nil {
		t.Fatalf("expected no classification across units, got %+v, %v", c, err)
	}

	c, err = Evaluate(ctx, nil, TestGlucose, GenderUnisex, mmol)
	if err != nil || c != nil {
		t.Fatalf("expected nil store to skip classification, got %+v, %v", c, err)
	}
}

func TestDefinitionsAreWellFormed(t *testing.T) {
	t.Parallel()

	seen := make(map[string]bool)

	for _, r := range Definitions() {
		key := r.TestName + "|" + string(r.Gender)
		if seen[key] {
			t.Fatalf("duplicate range for %s", key)
		}

		seen[key] = true

		if r.Unit == "" {
			t.Fatalf("range %s has no unit", key)
		}

		if r.ReferenceMin == nil && r.ReferenceMax == nil {
			t.Fatalf("range %s has no reference bounds", key)
		}

		if r.ReferenceMin != nil && r.ReferenceMax != nil && *r.ReferenceMin > *r.ReferenceMax {
			t.Fatalf("range %s has inverted reference bounds", key)
		}
	}
}

func TestAnalyteTest(t *testing.T) {
	t.Parallel()

	if got := AnalyteTest(formula.Glucose); got != TestGlucose {
		t.Fatalf("AnalyteTest(glucose) = %q", got)
	}

	if got := AnalyteTest(formula.Urea); got != "" {
		t.Fatalf("AnalyteTest(urea) = %q, want empty", got)
	}

	if ParseGender("Male") != GenderMale || ParseGender("") != GenderUnisex {
		t.Fatal("unexpected ParseGender result")
	}
}

func TestConverterTest(t *testing.T) {
	t.Parallel()

	lab := linked.NewLab()
	if got := ConverterTest(lab, linked.FieldPrimary); got != TestGlucose {
		t.Fatalf("ConverterTest(lab) = %q, want %q", got, TestGlucose)
	}

	if err := lab.SetParameter(string(formula.UricAcid)); err != nil {
		t.Fatalf("SetParameter failed: %v", err)
	}

	if got := ConverterTest(lab, linked.FieldSecondary); got != TestUricAcid {
		t.Fatalf("ConverterTest(lab uric acid) = %q, want %q", got, TestUricAcid)
	}

	if got := ConverterTest(linked.PCV{}, linked.FieldPercent); got != TestHematocrit {
		t.Fatalf("ConverterTest(pcv percent) = %q", got)
	}

	if got := ConverterTest(linked.PCV{}, linked.FieldDecimal); got != "" {
		t.Fatalf("ConverterTest(pcv decimal) = %q, want empty", got)
	}

	if got := ConverterTest(linked.Weight{}, linked.FieldKg); got != "" {
		t.Fatalf("ConverterTest(weight) = %q, want empty", got)
	}
}

// SPDX-FileCopyrightText: 2026 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/clinicalc/gate"
)

func runCalc(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer

	app := &cli.Command{
		Name:     "clinicalc",
		Writer:   &out,
		Commands: []*cli.Command{newCalcCommand()},
	}

	err := app.Run(context.Background(), append([]string{"clinicalc", "calc"}, args...))

	return out.String(), err
}

func TestCalcBMI(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	out, err := runCalc(t, "bmi", "--weight", "70", "--height", "175")
	if err != nil {
		t.Fatalf("calc bmi failed: %v", err)
	}

	for _, want := range []string{"22.9 kg/m²", "Within range", "Category: Normal weight"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output %q", want, out)
		}
	}
}

func TestCalcBMIMissingInput(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := runCalc(t, "bmi", "--weight", "70")
	if !errors.Is(err, gate.ErrMissingInput) {
		t.Fatalf("expected missing input error, got %v", err)
	}

	if !strings.Contains(err.Error(), gate.BMIForm.Message) {
		t.Fatalf("expected form message in error, got %q", err.Error())
	}
}

func TestCalcLDLMmol(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	out, err := runCalc(t, "ldl", "--tc", "5.18", "--hdl", "1.3", "--tg", "1.7", "--unit", "mmol/l")
	if err != nil {
		t.Fatalf("calc ldl failed: %v", err)
	}

	if !strings.Contains(out, "mmol/L") || !strings.Contains(out, "Category:") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCalcBilirubinNegativeNote(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	out, err := runCalc(t, "bilirubin", "--total", "0.5", "--direct", "0.8")
	if err != nil {
		t.Fatalf("calc bilirubin failed: %v", err)
	}

	if !strings.Contains(out, "-0.30 mg/dL") || !strings.Contains(out, "Note:") {
		t.Fatalf("unexpected output %q", out)
	}
}

func TestCalcConverters(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	tests := []struct {
		name string
		args []string
		want []string
	}{
		{name: "temperature", args: []string{"temperature", "--C", "37"}, want: []string{"98.60", "310.00"}},
		{name: "temperature alias", args: []string{"temp", "--F", "98.6"}, want: []string{"37.00"}},
		{name: "weight", args: []string{"weight", "--kg", "70"}, want: []string{"154.32"}},
		{name: "height", args: []string{"height", "--m", "1.75"}, want: []string{"175.0", `5' 9"`}},
		{name: "pcv", args: []string{"pcv", "--decimal", "0.45"}, want: []string{"45.0"}},
		{name: "lab creatinine", args: []string{"lab", "--analyte", "creatinine", "--primary", "1"}, want: []string{"88.400"}},
	}

	for _, tt := range tests {
		out, err := runCalc(t, tt.args...)
		if err != nil {
			t.Fatalf("%s: %v", tt.name, err)
		}

		for _, want := range tt.want {
			if !strings.Contains(out, want) {
				t.Fatalf("%s: expected %q in %q", tt.name, want, out)
			}
		}
	}
}

func TestCalcConverterInputErrors(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	if _, err := runCalc(t, "weight"); !errors.Is(err, errNothingToConvert) {
		t.Fatalf("expected nothing to convert, got %v", err)
	}

	if _, err := runCalc(t, "weight", "--kg", " "); !errors.Is(err, errNothingToConvert) {
		t.Fatalf("expected nothing to convert for blank input, got %v", err)
	}

	if _, err := runCalc(t, "weight", "--kg", "70", "--lbs", "150"); !errors.Is(err, errConflictingInputs) {
		t.Fatalf("expected conflicting inputs, got %v", err)
	}

	if _, err := runCalc(t, "lab", "--analyte", "sodium", "--primary", "1"); err == nil {
		t.Fatal("expected unknown analyte to fail")
	}
}

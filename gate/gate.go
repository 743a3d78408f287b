/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package gate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/humaidq/clinicalc/formula"
)

// Field is one required input of a triggered calculation.
type Field struct {
	Name string
	Raw  string
}

// Problem explains why a field is not ready. Err wraps ErrMissingInput or
// ErrUnparsableInput.
type Problem struct {
	Field string
	Err   error
}

// Readiness is the outcome of Check. When Ready is true Values holds the
// parsed value of every field; otherwise Missing names the fields that are
// blank or not numeric, in the order they were given.
type Readiness struct {
	Ready    bool
	Missing  []string
	Problems []Problem
	Values   map[string]float64
}

// Check verifies that every field is present and numeric. Blank and
// non-numeric fields are both reported as missing. It performs no formula
// math.
func Check(fields ...Field) Readiness {
	r := Readiness{Values: make(map[string]float64, len(fields))}

	for _, f := range fields {
		v, err := formula.ParseInput(f.Raw)
		switch {
		case errors.Is(err, formula.ErrEmptyInput):
			r.Missing = append(r.Missing, f.Name)
			r.Problems = append(r.Problems, Problem{Field: f.Name, Err: fmt.Errorf("%w: %s", ErrMissingInput, f.Name)})
		case err != nil:
			r.Missing = append(r.Missing, f.Name)
			r.Problems = append(r.Problems, Problem{Field: f.Name, Err: fmt.Errorf("%w: %s", ErrUnparsableInput, f.Name)})
		default:
			r.Values[f.Name] = v
		}
	}

	r.Ready = len(r.Missing) == 0
	if !r.Ready {
		r.Values = nil
	}

	return r
}

// Err returns nil when ready, or an error joining every field problem.
func (r Readiness) Err() error {
	if r.Ready {
		return nil
	}

	errs := make([]error, 0, len(r.Problems))
	for _, p := range r.Problems {
		errs = append(errs, p.Err)
	}

	return errors.Join(errs...)
}

// Value returns the parsed value of a field. It is only meaningful when
// Ready is true.
func (r Readiness) Value(name string) float64 {
	return r.Values[name]
}

// MissingMessage names the missing fields in a single sentence.
func (r Readiness) MissingMessage() string {
	switch len(r.Missing) {
	case 0:
		return ""
	case 1:
		return "Please enter a value for " + r.Missing[0]
	default:
		return "Please enter values for " + strings.Join(r.Missing[:len(r.Missing)-1], ", ") +
			" and " + r.Missing[len(r.Missing)-1]
	}
}

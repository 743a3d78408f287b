/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

import (
	"context"

	"github.com/humaidq/clinicalc/formula"
)

// Store looks up the reference range of a test. A nil range with a nil
// error means no range is defined.
type Store interface {
	Lookup(ctx context.Context, testName string, gender Gender) (*Range, error)
}

// Static serves ranges from Definitions without any database.
type Static struct {
	ranges map[string]map[Gender]Range
}

// NewStatic indexes Definitions.
func NewStatic() *Static {
	s := &Static{ranges: make(map[string]map[Gender]Range)}

	for _, r := range Definitions() {
		if s.ranges[r.TestName] == nil {
			s.ranges[r.TestName] = make(map[Gender]Range)
		}

		s.ranges[r.TestName][r.Gender] = r
	}

	return s
}

// Lookup tries the exact gender first and falls back to unisex.
func (s *Static) Lookup(_ context.Context, testName string, gender Gender) (*Range, error) {
	byGender, ok := s.ranges[testName]
	if !ok {
		return nil, nil //nolint:nilnil // Missing reference ranges are expected for some tests.
	}

	if r, ok := byGender[gender]; ok {
		return &r, nil
	}

	if r, ok := byGender[GenderUnisex]; ok {
		return &r, nil
	}

	return nil, nil //nolint:nilnil // Gender-specific ranges need a gender.
}

// Evaluate classifies q against the range of testName. It returns nil when
// no range exists or the range is kept in a different unit.
func Evaluate(ctx context.Context, store Store, testName string, gender Gender, q formula.Quantity) (*Classification, error) {
	if store == nil || testName == "" {
		return nil, nil //nolint:nilnil // Nothing to classify against.
	}

	r, err := store.Lookup(ctx, testName, gender)
	if err != nil {
		return nil, err
	}

	if r == nil || r.Unit != q.Unit {
		return nil, nil //nolint:nilnil // No comparable range.
	}

	c := Classify(q.Value, *r)

	return &c, nil
}

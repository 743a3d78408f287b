/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

import (
	"math"
	"strconv"
	"strings"
)

// ParseInput parses a raw field value. Surrounding whitespace is ignored.
// It returns ErrEmptyInput for a blank field and ErrNotANumber for anything
// that is not a finite decimal number.
func ParseInput(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, ErrEmptyInput
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, ErrNotANumber
	}

	return v, nil
}

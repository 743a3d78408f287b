/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

import "errors"

var (
	// ErrInvalidInput reports values a formula cannot be evaluated with, such
	// as a zero divisor or a non-finite number.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyInput is returned by ParseInput for a blank field.
	ErrEmptyInput = errors.New("empty input")

	// ErrNotANumber is returned by ParseInput for text that is not a number.
	ErrNotANumber = errors.New("not a number")

	errUnknownAnalyte   = errors.New("unknown analyte")
	errUnknownUnit      = errors.New("unknown unit")
	errUnknownDirection = errors.New("unknown direction")
)

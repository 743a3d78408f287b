/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package gate

import "errors"

var (
	// ErrMissingInput reports a required field that is blank.
	ErrMissingInput = errors.New("missing input")

	// ErrUnparsableInput reports a required field that is not a number.
	ErrUnparsableInput = errors.New("unparsable input")
)

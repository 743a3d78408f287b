/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package linked

import "errors"

var (
	// ErrUnparsable reports an edit whose text is not a number. The edited
	// field keeps the text and dependent fields keep their previous values.
	ErrUnparsable = errors.New("value is not a number")

	// ErrReadOnlyField reports an edit to a derived-only field.
	ErrReadOnlyField = errors.New("field is read-only")

	// ErrUnknownField reports an edit to a field the converter does not have.
	ErrUnknownField = errors.New("unknown field")

	// ErrUnknownConverter reports a converter name that is not registered.
	ErrUnknownConverter = errors.New("unknown converter")

	// ErrNoParameters reports a parameter switch on a converter without
	// selectable parameters.
	ErrNoParameters = errors.New("converter has no parameters")
)

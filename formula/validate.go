/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

import (
	"fmt"
	"math"
)

func requireFinite(name string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Errorf("%w: %s is not a finite number", ErrInvalidInput, name)
	}

	return nil
}

func requirePositive(name string, v float64) error {
	if err := requireFinite(name, v); err != nil {
		return err
	}

	if v <= 0 {
		return fmt.Errorf("%w: %s must be greater than zero", ErrInvalidInput, name)
	}

	return nil
}

func requireNonZero(name string, v float64) error {
	if err := requireFinite(name, v); err != nil {
		return err
	}

	if v == 0 {
		return fmt.Errorf("%w: %s is zero", ErrInvalidInput, name)
	}

	return nil
}

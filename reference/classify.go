/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

// Status is the position of a value relative to its ranges.
type Status string

// Status values. Out of reference takes priority over out of optimal.
const (
	StatusNormal         Status = "normal"
	StatusOutOfOptimal   Status = "out_of_optimal"
	StatusOutOfReference Status = "out_of_reference"
)

// Classification is the outcome of comparing a value with a Range.
// Direction is "up" or "down" when the value is out of a range.
type Classification struct {
	Status    Status
	Direction string
	Range     Range
}

// DisplayRange returns the range to display based on the logic:
// - If both optimal min/max missing: use reference only
// - If only optimal max set: optimal min = reference min
// - If only optimal min set: optimal max = reference max
func (r Range) DisplayRange() (refMin, refMax, optMin, optMax *float64, hasOptimal bool) {
	refMin = r.ReferenceMin
	refMax = r.ReferenceMax

	if r.OptimalMin == nil && r.OptimalMax == nil {
		return refMin, refMax, nil, nil, false
	}

	optMin = r.OptimalMin
	if optMin == nil {
		optMin = r.ReferenceMin
	}

	optMax = r.OptimalMax
	if optMax == nil {
		optMax = r.ReferenceMax
	}

	return refMin, refMax, optMin, optMax, true
}

// Classify compares value with r.
func Classify(value float64, r Range) Classification {
	refMin, refMax, optMin, optMax, hasOptimal := r.DisplayRange()

	c := Classification{Status: StatusNormal, Range: r}

	outOfReference := false
	if refMin != nil && value < *refMin {
		outOfReference = true
		c.Direction = "down"
	}

	if refMax != nil && value > *refMax {
		outOfReference = true
		c.Direction = "up"
	}

	outOfOptimal := false
	if hasOptimal {
		if optMin != nil && value < *optMin {
			outOfOptimal = true
			if c.Direction == "" {
				c.Direction = "down"
			}
		}

		if optMax != nil && value > *optMax {
			outOfOptimal = true
			if c.Direction == "" {
				c.Direction = "up"
			}
		}
	}

	switch {
	case outOfReference:
		c.Status = StatusOutOfReference
	case outOfOptimal:
		c.Status = StatusOutOfOptimal
	}

	return c
}

// Label is a short human-readable form of the status.
func (c Classification) Label() string {
	switch c.Status {
	case StatusOutOfReference:
		if c.Direction == "down" {
			return "Below reference range"
		}

		return "Above reference range"
	case StatusOutOfOptimal:
		if c.Direction == "down" {
			return "Below optimal range"
		}

		return "Above optimal range"
	default:
		return "Within range"
	}
}

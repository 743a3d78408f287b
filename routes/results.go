/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"context"
	"strconv"

	"github.com/humaidq/clinicalc/formula"
	"github.com/humaidq/clinicalc/reference"
)

// ResultRow is one computed value as rendered on a calculator page.
type ResultRow struct {
	Label       string
	Value       string
	Unit        string
	Status      reference.Status
	Arrow       string
	StatusLabel string
	Range       string
}

// newResultRow formats q and classifies it against the range of testName.
// A failed range lookup is logged and the row is rendered unclassified.
func newResultRow(ctx context.Context, store reference.Store, gender reference.Gender, label, testName string, q formula.Quantity) ResultRow {
	row := ResultRow{
		Label: label,
		Value: q.String(),
		Unit:  string(q.Unit),
	}

	c, err := reference.Evaluate(ctx, store, testName, gender, q)
	if err != nil {
		logger.Warn("Reference range lookup failed", "test", testName, "error", err)
		return row
	}

	if c == nil {
		return row
	}

	row.Status = c.Status
	row.StatusLabel = c.Label()
	row.Range = formatRange(c.Range)

	switch c.Direction {
	case "up":
		row.Arrow = "↑"
	case "down":
		row.Arrow = "↓"
	}

	return row
}

// formatRange renders the reference bounds, e.g. "70–99", "< 200" or "> 40".
func formatRange(r reference.Range) string {
	refMin, refMax, _, _, _ := r.DisplayRange()

	switch {
	case refMin != nil && refMax != nil:
		return formatBound(*refMin) + "–" + formatBound(*refMax)
	case refMax != nil:
		return "< " + formatBound(*refMax)
	case refMin != nil:
		return "> " + formatBound(*refMin)
	default:
		return ""
	}
}

func formatBound(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

import (
	"fmt"
	"strconv"
)

// glucoseFactor is the conventional mg/dL per mmol/L divisor for glucose. It
// takes precedence over the glucose entry of the factor table.
const glucoseFactor = 18

// AnalyteID identifies a laboratory parameter with a unit conversion.
type AnalyteID string

// AnalyteID values supported by the lab converter.
const (
	Glucose       AnalyteID = "glucose"
	Cholesterol   AnalyteID = "cholesterol"
	Triglycerides AnalyteID = "triglycerides"
	Urea          AnalyteID = "urea"
	Creatinine    AnalyteID = "creatinine"
	UricAcid      AnalyteID = "uric_acid"
	Bilirubin     AnalyteID = "bilirubin"
)

// Direction selects which way a two-unit conversion goes.
type Direction int

// Direction values. ToSecondary goes from the conventional unit (mg/dL) to
// the SI unit.
const (
	ToSecondary Direction = iota
	ToPrimary
)

// Analyte describes a lab parameter and the factor that maps its primary
// unit onto its secondary unit: secondary = primary × Factor.
type Analyte struct {
	ID            AnalyteID
	Label         string
	PrimaryUnit   Unit
	SecondaryUnit Unit
	Factor        float64
}

var analytes = []Analyte{
	{ID: Glucose, Label: "Glucose", PrimaryUnit: UnitMgDL, SecondaryUnit: UnitMmolL, Factor: 0.0555},
	{ID: Cholesterol, Label: "Cholesterol", PrimaryUnit: UnitMgDL, SecondaryUnit: UnitMmolL, Factor: 0.0259},
	{ID: Triglycerides, Label: "Triglycerides", PrimaryUnit: UnitMgDL, SecondaryUnit: UnitMmolL, Factor: 0.0113},
	{ID: Urea, Label: "Urea", PrimaryUnit: UnitMgDL, SecondaryUnit: UnitMmolL, Factor: 0.357},
	{ID: Creatinine, Label: "Creatinine", PrimaryUnit: UnitMgDL, SecondaryUnit: UnitUmolL, Factor: 88.4},
	{ID: UricAcid, Label: "Uric Acid", PrimaryUnit: UnitMgDL, SecondaryUnit: UnitUmolL, Factor: 59.48},
	{ID: Bilirubin, Label: "Bilirubin", PrimaryUnit: UnitMgDL, SecondaryUnit: UnitUmolL, Factor: 17.1},
}

var analyteIndex = func() map[AnalyteID]Analyte {
	m := make(map[AnalyteID]Analyte, len(analytes))
	for _, a := range analytes {
		m[a.ID] = a
	}

	return m
}()

// Analytes returns the supported lab parameters in display order.
func Analytes() []Analyte {
	out := make([]Analyte, len(analytes))
	copy(out, analytes)

	return out
}

// ParseAnalyte validates an externally supplied analyte identifier.
func ParseAnalyte(s string) (AnalyteID, error) {
	if _, ok := analyteIndex[AnalyteID(s)]; !ok {
		return "", fmt.Errorf("%w: %q", errUnknownAnalyte, s)
	}

	return AnalyteID(s), nil
}

// LookupAnalyte returns the table entry for id.
func LookupAnalyte(id AnalyteID) (Analyte, bool) {
	a, ok := analyteIndex[id]
	return a, ok
}

func mustAnalyte(id AnalyteID) Analyte {
	a, ok := analyteIndex[id]
	if !ok {
		panic(fmt.Sprintf("formula: unknown analyte %q", id))
	}

	return a
}

// FactorLabel describes the conversion factor the way it is shown next to
// the converter.
func (a Analyte) FactorLabel() string {
	if a.ID == Glucose {
		return "1 mmol/L = 18 mg/dL"
	}

	return fmt.Sprintf("1 %s = %s %s", a.PrimaryUnit, strconv.FormatFloat(a.Factor, 'f', -1, 64), a.SecondaryUnit)
}

// LabConvert converts value between the primary and secondary unit of the
// analyte. Results in the secondary unit carry three decimals and results in
// the primary unit carry two. id must come from the analyte table; use
// ParseAnalyte for external input.
func LabConvert(id AnalyteID, value float64, dir Direction) Quantity {
	a := mustAnalyte(id)

	switch dir {
	case ToSecondary:
		var v float64
		if id == Glucose {
			v = value / glucoseFactor
		} else {
			v = value * a.Factor
		}

		return newQuantity(v, a.SecondaryUnit, 3)
	case ToPrimary:
		var v float64
		if id == Glucose {
			v = value * glucoseFactor
		} else {
			v = value / a.Factor
		}

		return newQuantity(v, a.PrimaryUnit, 2)
	default:
		panic(fmt.Sprintf("formula: %v %d", errUnknownDirection, dir))
	}
}

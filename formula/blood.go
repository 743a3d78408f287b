/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

import "fmt"

// IndicesResult holds the red-cell indices.
type IndicesResult struct {
	MCV  Quantity
	MCH  Quantity
	MCHC Quantity
}

// BloodIndices derives MCV, MCH and MCHC from hemoglobin (g/dL), hematocrit
// (%) and RBC count (×10¹²/L). A zero RBC count or hematocrit is reported as
// ErrInvalidInput instead of producing an infinite index.
func BloodIndices(hgb, hct, rbc float64) (IndicesResult, error) {
	if err := requireFinite("hemoglobin", hgb); err != nil {
		return IndicesResult{}, err
	}

	if err := requireNonZero("hematocrit", hct); err != nil {
		return IndicesResult{}, err
	}

	if err := requireNonZero("RBC count", rbc); err != nil {
		return IndicesResult{}, err
	}

	return IndicesResult{
		MCV:  newQuantity((hct*10)/rbc, UnitFemtoliter, 1),
		MCH:  newQuantity((hgb*10)/rbc, UnitPicogram, 1),
		MCHC: newQuantity((hgb*100)/hct, UnitGramsDL, 1),
	}, nil
}

// AdvisoryDirectExceedsTotal is shown next to a negative indirect bilirubin.
var AdvisoryDirectExceedsTotal = Advisory{
	Code:    "direct_exceeds_total",
	Message: "Direct bilirubin exceeds total bilirubin; check the entered values.",
}

// IndirectBilirubin is total minus direct bilirubin. A direct value above the
// total is passed through as a negative result.
func IndirectBilirubin(total, direct float64) Quantity {
	return newQuantity(total-direct, UnitMgDL, 2)
}

// PCVDirection selects the packed cell volume representation to produce.
type PCVDirection int

// PCVDirection values.
const (
	DecimalToPercent PCVDirection = iota
	PercentToDecimal
)

// PCV converts packed cell volume between a decimal fraction (L/L) and a
// percentage.
func PCV(value float64, dir PCVDirection) Quantity {
	switch dir {
	case DecimalToPercent:
		return newQuantity(value*100, UnitPercent, 1)
	case PercentToDecimal:
		return newQuantity(value/100, UnitLiterL, 3)
	default:
		panic(fmt.Sprintf("formula: %v %d", errUnknownDirection, dir))
	}
}

// EstimateRBC approximates the RBC count from hemoglobin and hematocrit by
// averaging Hgb×3 and Hct/3, scaled to ×10¹²/L. It is an empirical rule of
// thumb and not a substitute for a measured count.
func EstimateRBC(hgb, hct float64) (Quantity, error) {
	if err := requireFinite("hemoglobin", hgb); err != nil {
		return Quantity{}, err
	}

	if err := requireFinite("hematocrit", hct); err != nil {
		return Quantity{}, err
	}

	fromHgb := (hgb * 3) / 10
	fromHct := hct / 3 / 10

	return newQuantity((fromHgb+fromHct)/2, UnitRBCCount, 2), nil
}

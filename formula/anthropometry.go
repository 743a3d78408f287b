/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

import (
	"fmt"
	"math"
)

const (
	lbsPerKg      = 2.20462
	cmPerInch     = 2.54
	inchesPerFoot = 12
)

// WeightDirection selects the weight unit to convert into.
type WeightDirection int

// WeightDirection values.
const (
	KgToLbs WeightDirection = iota
	LbsToKg
)

// ConvertWeight converts between kilograms and pounds, two decimals.
func ConvertWeight(value float64, dir WeightDirection) Quantity {
	switch dir {
	case KgToLbs:
		return newQuantity(value*lbsPerKg, UnitLbs, 2)
	case LbsToKg:
		return newQuantity(value/lbsPerKg, UnitKg, 2)
	default:
		panic(fmt.Sprintf("formula: %v %d", errUnknownDirection, dir))
	}
}

// HeightResult holds every derived representation of a height.
type HeightResult struct {
	Meters      Quantity
	Centimeters Quantity
	Feet        int
	Inches      int
	DecimalFeet Quantity
}

// FeetInches renders the height as F' I".
func (h HeightResult) FeetInches() string {
	return fmt.Sprintf("%d' %d\"", h.Feet, h.Inches)
}

// ConvertHeight derives the other representations of a height entered in
// metres or centimetres. The entered representation is returned unrounded;
// centimetres derived from metres carry one decimal and metres derived from
// centimetres carry three. Inches are rounded to the nearest whole inch and a
// rounded 12" rolls over into the next foot.
func ConvertHeight(value float64, from HeightUnit) HeightResult {
	var cm float64
	var res HeightResult

	switch from {
	case HeightM:
		cm = value * 100
		res.Meters = Quantity{Value: value, Unit: UnitMeter, Decimals: decimalsOf(value)}
		res.Centimeters = newQuantity(cm, UnitCentimeter, 1)
	case HeightCm:
		cm = value
		res.Centimeters = Quantity{Value: value, Unit: UnitCentimeter, Decimals: decimalsOf(value)}
		res.Meters = newQuantity(value/100, UnitMeter, 3)
	default:
		panic(fmt.Sprintf("formula: %v %q", errUnknownUnit, from))
	}

	totalInches := cm / cmPerInch
	feet := math.Floor(totalInches / inchesPerFoot)
	inches := roundHalfUp(math.Mod(totalInches, inchesPerFoot))
	if inches >= inchesPerFoot {
		feet++
		inches -= inchesPerFoot
	}

	res.Feet = int(feet)
	res.Inches = int(inches)
	res.DecimalFeet = newQuantity(totalInches/inchesPerFoot, UnitFeet, 2)

	return res
}

// decimalsOf returns the number of decimals needed to render v exactly as
// its shortest representation, capped at six.
func decimalsOf(v float64) int {
	for d := 0; d < 6; d++ {
		if Round(v, d) == v {
			return d
		}
	}

	return 6
}

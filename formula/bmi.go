/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

import "fmt"

const (
	kgPerLb       = 0.453592
	metersPerFoot = 0.3048
)

// WeightUnit is the unit a body weight is entered in.
type WeightUnit string

// WeightUnit values accepted by BMI.
const (
	WeightKg  WeightUnit = "kg"
	WeightLbs WeightUnit = "lbs"
)

// HeightUnit is the unit a body height is entered in.
type HeightUnit string

// HeightUnit values. HeightFeet is only accepted by BMI.
const (
	HeightCm   HeightUnit = "cm"
	HeightM    HeightUnit = "m"
	HeightFeet HeightUnit = "ft"
)

// BMICategory classifies a body-mass index.
type BMICategory string

// BMICategory values, in increasing BMI order.
const (
	BMIUnderweight BMICategory = "Underweight"
	BMINormal      BMICategory = "Normal weight"
	BMIOverweight  BMICategory = "Overweight"
	BMIObese       BMICategory = "Obese"
)

// BMIResult is the outcome of a BMI calculation.
type BMIResult struct {
	BMI      Quantity
	Category BMICategory
	WeightKg float64
	HeightM  float64
}

// ParseWeightUnit validates an externally supplied weight unit.
func ParseWeightUnit(s string) (WeightUnit, error) {
	switch u := WeightUnit(s); u {
	case WeightKg, WeightLbs:
		return u, nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownUnit, s)
}

// ParseHeightUnit validates an externally supplied height unit.
func ParseHeightUnit(s string) (HeightUnit, error) {
	switch u := HeightUnit(s); u {
	case HeightCm, HeightM, HeightFeet:
		return u, nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownUnit, s)
}

// BMI computes the body-mass index. Weight is normalised to kilograms and
// height to metres before the calculation. The category is decided on the
// unrounded index.
func BMI(weight float64, wu WeightUnit, height float64, hu HeightUnit) (BMIResult, error) {
	if err := requirePositive("weight", weight); err != nil {
		return BMIResult{}, err
	}

	if err := requirePositive("height", height); err != nil {
		return BMIResult{}, err
	}

	kg := weight
	switch wu {
	case WeightKg:
	case WeightLbs:
		kg = weight * kgPerLb
	default:
		return BMIResult{}, fmt.Errorf("%w: weight unit %q", errUnknownUnit, wu)
	}

	m := height
	switch hu {
	case HeightM:
	case HeightCm:
		m = height / 100
	case HeightFeet:
		m = height * metersPerFoot
	default:
		return BMIResult{}, fmt.Errorf("%w: height unit %q", errUnknownUnit, hu)
	}

	bmi := kg / (m * m)

	return BMIResult{
		BMI:      newQuantity(bmi, UnitKgM2, 1),
		Category: CategorizeBMI(bmi),
		WeightKg: kg,
		HeightM:  m,
	}, nil
}

// CategorizeBMI maps a BMI value onto its weight category.
func CategorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return BMIUnderweight
	case bmi < 25:
		return BMINormal
	case bmi < 30:
		return BMIOverweight
	default:
		return BMIObese
	}
}

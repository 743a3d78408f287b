/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

import "fmt"

// kelvinOffset is 273 rather than 273.15 to match the clinical converter it
// replaces.
const kelvinOffset = 273

// TemperatureUnit is a temperature scale.
type TemperatureUnit string

// TemperatureUnit values.
const (
	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"
	Kelvin     TemperatureUnit = "K"
)

// TemperatureResult holds a temperature on all three scales, two decimals.
// The scale the value was entered in is carried through unrounded.
type TemperatureResult struct {
	Celsius    Quantity
	Fahrenheit Quantity
	Kelvin     Quantity
}

// ParseTemperatureUnit validates an externally supplied scale.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch u := TemperatureUnit(s); u {
	case Celsius, Fahrenheit, Kelvin:
		return u, nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownUnit, s)
}

// ConvertTemperature expresses value, given on the from scale, on every scale.
func ConvertTemperature(value float64, from TemperatureUnit) TemperatureResult {
	var c float64

	switch from {
	case Celsius:
		c = value
	case Fahrenheit:
		c = ((value - 32) * 5) / 9
	case Kelvin:
		c = value - kelvinOffset
	default:
		panic(fmt.Sprintf("formula: %v %q", errUnknownUnit, from))
	}

	res := TemperatureResult{
		Celsius:    newQuantity(c, UnitCelsius, 2),
		Fahrenheit: newQuantity((c*9)/5+32, UnitFahrenheit, 2),
		Kelvin:     newQuantity(c+kelvinOffset, UnitKelvin, 2),
	}

	switch from {
	case Celsius:
		res.Celsius = Quantity{Value: value, Unit: UnitCelsius, Decimals: 2}
	case Fahrenheit:
		res.Fahrenheit = Quantity{Value: value, Unit: UnitFahrenheit, Decimals: 2}
	case Kelvin:
		res.Kelvin = Quantity{Value: value, Unit: UnitKelvin, Decimals: 2}
	}

	return res
}

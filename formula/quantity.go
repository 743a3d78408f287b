/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package formula

// Unit identifies the unit a Quantity is expressed in.
type Unit string

// Unit values used across the calculators.
const (
	UnitMgDL       Unit = "mg/dL"
	UnitMmolL      Unit = "mmol/L"
	UnitUmolL      Unit = "μmol/L"
	UnitKg         Unit = "kg"
	UnitLbs        Unit = "lbs"
	UnitMeter      Unit = "m"
	UnitCentimeter Unit = "cm"
	UnitFeet       Unit = "ft"
	UnitCelsius    Unit = "°C"
	UnitFahrenheit Unit = "°F"
	UnitKelvin     Unit = "K"
	UnitFemtoliter Unit = "fL"
	UnitPicogram   Unit = "pg"
	UnitGramsDL    Unit = "g/dL"
	UnitPercent    Unit = "%"
	UnitLiterL     Unit = "L/L"
	UnitRBCCount   Unit = "×10¹²/L"
	UnitKgM2       Unit = "kg/m²"
	UnitRatio      Unit = "ratio"
)

// Quantity is a rounded numeric value tagged with its unit. Decimals records
// the precision the value was rounded to so it renders the same way it was
// computed.
type Quantity struct {
	Value    float64
	Unit     Unit
	Decimals int
}

// newQuantity rounds v to decimals and tags it with unit.
func newQuantity(v float64, unit Unit, decimals int) Quantity {
	return Quantity{
		Value:    Round(v, decimals),
		Unit:     unit,
		Decimals: decimals,
	}
}

// String renders the value with its fixed precision, without the unit.
func (q Quantity) String() string {
	return ToFixed(q.Value, q.Decimals)
}

// WithUnit renders the value followed by its unit.
func (q Quantity) WithUnit() string {
	if q.Unit == "" {
		return q.String()
	}

	return q.String() + " " + string(q.Unit)
}

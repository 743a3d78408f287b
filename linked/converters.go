/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package linked

import "github.com/humaidq/clinicalc/formula"

// Field identifiers of the built-in converters.
const (
	FieldPrimary   FieldID = "primary"
	FieldSecondary FieldID = "secondary"

	FieldDecimal FieldID = "decimal"
	FieldPercent FieldID = "percent"

	FieldKg  FieldID = "kg"
	FieldLbs FieldID = "lbs"

	FieldMeters      FieldID = "m"
	FieldCentimeters FieldID = "cm"
	FieldFeetInches  FieldID = "ftin"
	FieldDecimalFeet FieldID = "ftdec"

	FieldCelsius    FieldID = "C"
	FieldFahrenheit FieldID = "F"
	FieldKelvin     FieldID = "K"
)

// Lab converts a lab analyte between its conventional and SI unit.
type Lab struct {
	analyte formula.AnalyteID
}

// NewLab returns a lab converter set to glucose.
func NewLab() *Lab {
	return &Lab{analyte: formula.Glucose}
}

func (l *Lab) Name() string { return "lab" }

// Analyte returns the table entry of the selected analyte.
func (l *Lab) Analyte() formula.Analyte {
	a, _ := formula.LookupAnalyte(l.analyte)
	return a
}

func (l *Lab) Fields() []FieldSpec {
	a := l.Analyte()

	return []FieldSpec{
		{ID: FieldPrimary, Label: string(a.PrimaryUnit), Unit: a.PrimaryUnit},
		{ID: FieldSecondary, Label: string(a.SecondaryUnit), Unit: a.SecondaryUnit},
	}
}

func (l *Lab) Derive(source FieldID, v float64) Values {
	switch source {
	case FieldPrimary:
		return Values{FieldSecondary: formula.LabConvert(l.analyte, v, formula.ToSecondary).String()}
	case FieldSecondary:
		return Values{FieldPrimary: formula.LabConvert(l.analyte, v, formula.ToPrimary).String()}
	}

	return nil
}

func (l *Lab) Parameter() string { return string(l.analyte) }

func (l *Lab) SetParameter(id string) error {
	analyte, err := formula.ParseAnalyte(id)
	if err != nil {
		return err
	}

	l.analyte = analyte

	return nil
}

// PCV converts packed cell volume between L/L and percent.
type PCV struct{}

func (PCV) Name() string { return "pcv" }

func (PCV) Fields() []FieldSpec {
	return []FieldSpec{
		{ID: FieldDecimal, Label: "PCV (L/L)", Unit: formula.UnitLiterL},
		{ID: FieldPercent, Label: "PCV (%)", Unit: formula.UnitPercent},
	}
}

func (PCV) Derive(source FieldID, v float64) Values {
	switch source {
	case FieldDecimal:
		return Values{FieldPercent: formula.PCV(v, formula.DecimalToPercent).String()}
	case FieldPercent:
		return Values{FieldDecimal: formula.PCV(v, formula.PercentToDecimal).String()}
	}

	return nil
}

// Weight converts between kilograms and pounds.
type Weight struct{}

func (Weight) Name() string { return "weight" }

func (Weight) Fields() []FieldSpec {
	return []FieldSpec{
		{ID: FieldKg, Label: "Kilograms", Unit: formula.UnitKg},
		{ID: FieldLbs, Label: "Pounds", Unit: formula.UnitLbs},
	}
}

func (Weight) Derive(source FieldID, v float64) Values {
	switch source {
	case FieldKg:
		return Values{FieldLbs: formula.ConvertWeight(v, formula.KgToLbs).String()}
	case FieldLbs:
		return Values{FieldKg: formula.ConvertWeight(v, formula.LbsToKg).String()}
	}

	return nil
}

// Height converts between metres and centimetres and renders the height in
// feet and inches and in decimal feet. The imperial fields are derived only.
type Height struct{}

func (Height) Name() string { return "height" }

func (Height) Fields() []FieldSpec {
	return []FieldSpec{
		{ID: FieldMeters, Label: "Meters", Unit: formula.UnitMeter},
		{ID: FieldCentimeters, Label: "Centimeters", Unit: formula.UnitCentimeter},
		{ID: FieldFeetInches, Label: "Feet & inches", ReadOnly: true},
		{ID: FieldDecimalFeet, Label: "Decimal feet", Unit: formula.UnitFeet, ReadOnly: true},
	}
}

func (Height) Derive(source FieldID, v float64) Values {
	var res formula.HeightResult

	out := Values{}

	switch source {
	case FieldMeters:
		res = formula.ConvertHeight(v, formula.HeightM)
		out[FieldCentimeters] = res.Centimeters.String()
	case FieldCentimeters:
		res = formula.ConvertHeight(v, formula.HeightCm)
		out[FieldMeters] = res.Meters.String()
	default:
		return nil
	}

	out[FieldFeetInches] = res.FeetInches()
	out[FieldDecimalFeet] = res.DecimalFeet.String()

	return out
}

// Temperature converts between Celsius, Fahrenheit and Kelvin.
type Temperature struct{}

func (Temperature) Name() string { return "temperature" }

func (Temperature) Fields() []FieldSpec {
	return []FieldSpec{
		{ID: FieldCelsius, Label: "Celsius", Unit: formula.UnitCelsius},
		{ID: FieldFahrenheit, Label: "Fahrenheit", Unit: formula.UnitFahrenheit},
		{ID: FieldKelvin, Label: "Kelvin", Unit: formula.UnitKelvin},
	}
}

func (Temperature) Derive(source FieldID, v float64) Values {
	var from formula.TemperatureUnit

	switch source {
	case FieldCelsius:
		from = formula.Celsius
	case FieldFahrenheit:
		from = formula.Fahrenheit
	case FieldKelvin:
		from = formula.Kelvin
	default:
		return nil
	}

	res := formula.ConvertTemperature(v, from)
	out := Values{
		FieldCelsius:    res.Celsius.String(),
		FieldFahrenheit: res.Fahrenheit.String(),
		FieldKelvin:     res.Kelvin.String(),
	}
	delete(out, source)

	return out
}

/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package tui

import (
	"github.com/humaidq/clinicalc/formula"
	"github.com/humaidq/clinicalc/gate"
	"github.com/humaidq/clinicalc/linked"
	"github.com/humaidq/clinicalc/reference"
)

const (
	optionWeightUnit = "weight_unit"
	optionHeightUnit = "height_unit"
	optionLipidUnit  = "unit"
	optionAnalyte    = "analyte"
)

func genderOption(def reference.Gender) *option {
	o := &option{
		name:  optionGender,
		label: "Gender",
		choices: []choice{
			{value: string(reference.GenderUnisex), label: "Unspecified"},
			{value: string(reference.GenderMale), label: "Male"},
			{value: string(reference.GenderFemale), label: "Female"},
		},
	}
	o.selectValue(string(def))

	return o
}

func analyteOption() *option {
	o := &option{name: optionAnalyte, label: "Analyte"}
	for _, a := range formula.Analytes() {
		o.choices = append(o.choices, choice{value: string(a.ID), label: a.Label + " (" + a.FactorLabel() + ")"})
	}

	return o
}

func unitOption(name, label string, units ...string) *option {
	o := &option{name: name, label: label}
	for _, u := range units {
		o.choices = append(o.choices, choice{value: u, label: u})
	}

	return o
}

func calculatorScreen(title string, form gate.Form, labels map[string]string, calc calculateFunc, opts ...*option) *screen {
	s := &screen{title: title, form: &form, calculate: calc, options: opts}
	for _, name := range form.Required {
		s.inputs = append(s.inputs, newInput(name, labels[name], "", false))
	}

	s.syncFocus()

	return s
}

func converterScreen(title string, conv linked.Converter, opts ...*option) *screen {
	s := &screen{title: title, panel: linked.NewPanel(conv), options: opts}
	s.loadPanelFields()

	return s
}

// defaultScreens lists every calculator and converter in display order.
func defaultScreens(gender reference.Gender) []*screen {
	return []*screen{
		calculatorScreen("BMI", gate.BMIForm, map[string]string{
			gate.FieldWeight: "Weight",
			gate.FieldHeight: "Height",
		}, calculateBMI,
			unitOption(optionWeightUnit, "Weight unit", string(formula.WeightKg), string(formula.WeightLbs)),
			unitOption(optionHeightUnit, "Height unit", string(formula.HeightCm), string(formula.HeightM), string(formula.HeightFeet)),
		),
		calculatorScreen("LDL (Friedewald)", gate.LDLForm, map[string]string{
			gate.FieldTotalCholesterol: "Total cholesterol",
			gate.FieldHDL:              "HDL",
			gate.FieldTriglycerides:    "Triglycerides",
		}, calculateLDL,
			unitOption(optionLipidUnit, "Unit", string(formula.LipidMgDL), string(formula.LipidMmolL)),
			genderOption(gender),
		),
		calculatorScreen("Blood indices", gate.IndicesForm, map[string]string{
			gate.FieldHemoglobin: "Hemoglobin (g/dL)",
			gate.FieldHematocrit: "Hematocrit (%)",
			gate.FieldRBC:        "RBC (×10¹²/L)",
		}, calculateIndices, genderOption(gender)),
		calculatorScreen("Bilirubin", gate.BilirubinForm, map[string]string{
			gate.FieldTotalBilirubin:  "Total (mg/dL)",
			gate.FieldDirectBilirubin: "Direct (mg/dL)",
		}, calculateBilirubin),
		calculatorScreen("RBC estimate", gate.RBCForm, map[string]string{
			gate.FieldHemoglobin: "Hemoglobin (g/dL)",
			gate.FieldHematocrit: "Hematocrit (%)",
		}, calculateRBC, genderOption(gender)),
		converterScreen("Lab units", linked.NewLab(), analyteOption(), genderOption(gender)),
		converterScreen("Packed cell volume", linked.PCV{}, genderOption(gender)),
		converterScreen("Weight", linked.Weight{}),
		converterScreen("Height", linked.Height{}),
		converterScreen("Temperature", linked.Temperature{}),
	}
}

func calculateBMI(r gate.Readiness, opts map[string]string) (calcResult, error) {
	wu, err := formula.ParseWeightUnit(opts[optionWeightUnit])
	if err != nil {
		return calcResult{}, err
	}

	hu, err := formula.ParseHeightUnit(opts[optionHeightUnit])
	if err != nil {
		return calcResult{}, err
	}

	res, err := formula.BMI(r.Value(gate.FieldWeight), wu, r.Value(gate.FieldHeight), hu)
	if err != nil {
		return calcResult{}, err
	}

	return calcResult{
		rows:  []calcRow{{"BMI", reference.TestBMI, res.BMI}},
		notes: []string{"Category: " + string(res.Category)},
	}, nil
}

func calculateLDL(r gate.Readiness, opts map[string]string) (calcResult, error) {
	unit, err := formula.ParseLipidUnit(opts[optionLipidUnit])
	if err != nil {
		return calcResult{}, err
	}

	res, err := formula.LDL(formula.LipidInput{
		TotalCholesterol: r.Value(gate.FieldTotalCholesterol),
		HDL:              r.Value(gate.FieldHDL),
		Triglycerides:    r.Value(gate.FieldTriglycerides),
		Unit:             unit,
	})
	if err != nil {
		return calcResult{}, err
	}

	out := calcResult{
		rows: []calcRow{
			{"LDL", reference.TestLDL, res.LDLMgDL},
			{"LDL", reference.TestLDL, res.LDLMmolL},
			{"Non-HDL", reference.TestNonHDL, res.NonHDLMgDL},
		},
		notes: []string{"Category: " + string(res.Category)},
	}

	if res.TGHDLRatio != nil {
		out.rows = append(out.rows, calcRow{"TG/HDL ratio", reference.TestTGHDLRatio, *res.TGHDLRatio})
	}

	if res.AtherogenicCoefficient != nil {
		out.rows = append(out.rows, calcRow{"Atherogenic coefficient", reference.TestAtherogenicCoefficient, *res.AtherogenicCoefficient})
	}

	for _, a := range res.Advisories {
		out.notes = append(out.notes, a.Message)
	}

	return out, nil
}

func calculateIndices(r gate.Readiness, _ map[string]string) (calcResult, error) {
	res, err := formula.BloodIndices(r.Value(gate.FieldHemoglobin), r.Value(gate.FieldHematocrit), r.Value(gate.FieldRBC))
	if err != nil {
		return calcResult{}, err
	}

	return calcResult{rows: []calcRow{
		{"MCV", reference.TestMCV, res.MCV},
		{"MCH", reference.TestMCH, res.MCH},
		{"MCHC", reference.TestMCHC, res.MCHC},
	}}, nil
}

func calculateBilirubin(r gate.Readiness, _ map[string]string) (calcResult, error) {
	indirect := formula.IndirectBilirubin(r.Value(gate.FieldTotalBilirubin), r.Value(gate.FieldDirectBilirubin))

	out := calcResult{rows: []calcRow{{"Indirect bilirubin", reference.TestBilirubinIndirect, indirect}}}
	if indirect.Value < 0 {
		out.notes = []string{formula.AdvisoryDirectExceedsTotal.Message}
	}

	return out, nil
}

func calculateRBC(r gate.Readiness, _ map[string]string) (calcResult, error) {
	rbc, err := formula.EstimateRBC(r.Value(gate.FieldHemoglobin), r.Value(gate.FieldHematocrit))
	if err != nil {
		return calcResult{}, err
	}

	return calcResult{rows: []calcRow{{"Estimated RBC", reference.TestRBC, rbc}}}, nil
}

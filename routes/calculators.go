/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package routes

import (
	"net/http"
	"strings"

	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"

	"github.com/humaidq/clinicalc/formula"
	"github.com/humaidq/clinicalc/gate"
	"github.com/humaidq/clinicalc/reference"
)

// Extra form fields kept alongside the numeric inputs.
const (
	fieldWeightUnit = "weight_unit"
	fieldHeightUnit = "height_unit"
	fieldLipidUnit  = "unit"
	fieldGender     = "gender"
)

const formStateKeyPrefix = "calculator_form:"

// calculator ties a gated form to the page that renders it.
type calculator struct {
	form     gate.Form
	path     string
	page     string
	title    string
	extra    []string
	defaults map[string]string
}

var (
	bmiCalculator = calculator{
		form:  gate.BMIForm,
		path:  "/bmi",
		page:  "bmi",
		title: "BMI Calculator",
		extra: []string{fieldWeightUnit, fieldHeightUnit},
		defaults: map[string]string{
			fieldWeightUnit: string(formula.WeightKg),
			fieldHeightUnit: string(formula.HeightCm),
		},
	}
	ldlCalculator = calculator{
		form:     gate.LDLForm,
		path:     "/ldl",
		page:     "ldl",
		title:    "LDL Cholesterol (Friedewald)",
		extra:    []string{fieldLipidUnit, fieldGender},
		defaults: map[string]string{fieldLipidUnit: string(formula.LipidMgDL)},
	}
	indicesCalculator = calculator{
		form:  gate.IndicesForm,
		path:  "/blood/indices",
		page:  "indices",
		title: "Red Cell Indices",
	}
	bilirubinCalculator = calculator{
		form:  gate.BilirubinForm,
		path:  "/blood/bilirubin",
		page:  "bilirubin",
		title: "Indirect Bilirubin",
	}
	rbcCalculator = calculator{
		form:  gate.RBCForm,
		path:  "/blood/rbc",
		page:  "rbc",
		title: "RBC Estimate",
		extra: []string{fieldGender},
	}
)

func (calc calculator) stateKey() string {
	return formStateKeyPrefix + calc.form.Name
}

func (calc calculator) fields() []string {
	fields := make([]string, 0, len(calc.form.Required)+len(calc.extra))
	fields = append(fields, calc.form.Required...)

	return append(fields, calc.extra...)
}

func (calc calculator) withDefaults(values map[string]string) map[string]string {
	out := make(map[string]string, len(values)+len(calc.defaults))
	for k, v := range calc.defaults {
		out[k] = v
	}

	for k, v := range values {
		if v != "" {
			out[k] = v
		}
	}

	return out
}

func (calc calculator) render(t template.Template, data template.Data, values map[string]string) {
	data["PageTitle"] = calc.title
	data["Action"] = calc.path
	data["Form"] = calc.withDefaults(values)
	data["Required"] = strings.Join(calc.form.Required, ",")
	data["FormMessage"] = calc.form.Message
	data["Is"+strings.ToUpper(calc.form.Name[:1])+calc.form.Name[1:]] = true

	t.HTML(http.StatusOK, calc.page)
}

// show renders the form, refilled with the inputs of a rejected submission.
func (calc calculator) show(s session.Session, t template.Template, data template.Data) {
	values, _ := s.Get(calc.stateKey()).(map[string]string)
	if values != nil {
		s.Delete(calc.stateKey())
	}

	calc.render(t, data, values)
}

// read parses the submission and runs it through the form gate. When the
// gate holds, the inputs are kept for the next render, the form message is
// flashed and the client is redirected back to the form.
func (calc calculator) read(c flamego.Context, s session.Session) (map[string]string, gate.Readiness, bool) {
	if err := c.Request().ParseForm(); err != nil {
		logger.Warn("Error parsing form", "calculator", calc.form.Name, "error", err)
		SetErrorFlash(s, "Failed to parse form")
		c.Redirect(calc.path, http.StatusSeeOther)

		return nil, gate.Readiness{}, false
	}

	values := make(map[string]string, len(calc.fields()))
	for _, name := range calc.fields() {
		values[name] = strings.TrimSpace(c.Request().Form.Get(name))
	}

	r := calc.form.CheckValues(values)
	if !r.Ready {
		logger.Debug("Calculation blocked", "calculator", calc.form.Name, "missing", strings.Join(r.Missing, ","))
		calc.reject(c, s, values, calc.form.Message)

		return nil, r, false
	}

	return calc.withDefaults(values), r, true
}

func (calc calculator) reject(c flamego.Context, s session.Session, values map[string]string, message string) {
	s.Set(calc.stateKey(), values)
	SetErrorFlash(s, message)
	c.Redirect(calc.path, http.StatusSeeOther)
}

// Index lists every calculator and converter.
func Index(t template.Template, data template.Data) {
	data["PageTitle"] = "Calculators"
	data["IsHome"] = true

	t.HTML(http.StatusOK, "index")
}

// BMIForm renders the BMI calculator.
func BMIForm(s session.Session, t template.Template, data template.Data) {
	bmiCalculator.show(s, t, data)
}

// CalculateBMI computes BMI from weight and height in the selected units.
func CalculateBMI(c flamego.Context, s session.Session, t template.Template, data template.Data, store reference.Store) {
	values, r, ok := bmiCalculator.read(c, s)
	if !ok {
		return
	}

	wu, err := formula.ParseWeightUnit(values[fieldWeightUnit])
	if err != nil {
		bmiCalculator.reject(c, s, values, "Please select a valid weight unit")
		return
	}

	hu, err := formula.ParseHeightUnit(values[fieldHeightUnit])
	if err != nil {
		bmiCalculator.reject(c, s, values, "Please select a valid height unit")
		return
	}

	res, err := formula.BMI(r.Value(gate.FieldWeight), wu, r.Value(gate.FieldHeight), hu)
	if err != nil {
		bmiCalculator.reject(c, s, values, "Weight and height must be greater than zero")
		return
	}

	ctx := c.Request().Context()

	data["Results"] = []ResultRow{
		newResultRow(ctx, store, reference.GenderUnisex, "BMI", reference.TestBMI, res.BMI),
	}
	data["Category"] = string(res.Category)

	bmiCalculator.render(t, data, values)
}

// LDLForm renders the Friedewald LDL calculator.
func LDLForm(s session.Session, t template.Template, data template.Data) {
	ldlCalculator.show(s, t, data)
}

// CalculateLDL estimates LDL cholesterol and the derived lipid ratios.
func CalculateLDL(c flamego.Context, s session.Session, t template.Template, data template.Data, settings Settings, store reference.Store) {
	values, r, ok := ldlCalculator.read(c, s)
	if !ok {
		return
	}

	unit, err := formula.ParseLipidUnit(values[fieldLipidUnit])
	if err != nil {
		ldlCalculator.reject(c, s, values, "Please select a valid unit")
		return
	}

	res, err := formula.LDL(formula.LipidInput{
		TotalCholesterol: r.Value(gate.FieldTotalCholesterol),
		HDL:              r.Value(gate.FieldHDL),
		Triglycerides:    r.Value(gate.FieldTriglycerides),
		Unit:             unit,
	})
	if err != nil {
		ldlCalculator.reject(c, s, values, ldlCalculator.form.Message)
		return
	}

	ctx := c.Request().Context()
	gender := settings.gender(values[fieldGender])

	rows := []ResultRow{
		newResultRow(ctx, store, gender, "LDL", reference.TestLDL, res.LDLMgDL),
		newResultRow(ctx, store, gender, "LDL", reference.TestLDL, res.LDLMmolL),
		newResultRow(ctx, store, gender, "Non-HDL", reference.TestNonHDL, res.NonHDLMgDL),
	}

	if res.TGHDLRatio != nil {
		rows = append(rows, newResultRow(ctx, store, gender, "TG/HDL ratio", reference.TestTGHDLRatio, *res.TGHDLRatio))
	}

	if res.AtherogenicCoefficient != nil {
		rows = append(rows, newResultRow(ctx, store, gender, "Atherogenic coefficient",
			reference.TestAtherogenicCoefficient, *res.AtherogenicCoefficient))
	}

	data["Results"] = rows
	data["Category"] = string(res.Category)
	data["Advisories"] = res.Advisories

	ldlCalculator.render(t, data, values)
}

// IndicesForm renders the red cell indices calculator.
func IndicesForm(s session.Session, t template.Template, data template.Data) {
	indicesCalculator.show(s, t, data)
}

// CalculateIndices derives MCV, MCH and MCHC.
func CalculateIndices(c flamego.Context, s session.Session, t template.Template, data template.Data, store reference.Store) {
	values, r, ok := indicesCalculator.read(c, s)
	if !ok {
		return
	}

	res, err := formula.BloodIndices(r.Value(gate.FieldHemoglobin), r.Value(gate.FieldHematocrit), r.Value(gate.FieldRBC))
	if err != nil {
		indicesCalculator.reject(c, s, values, "Hematocrit and RBC count must not be zero")
		return
	}

	ctx := c.Request().Context()

	data["Results"] = []ResultRow{
		newResultRow(ctx, store, reference.GenderUnisex, "MCV", reference.TestMCV, res.MCV),
		newResultRow(ctx, store, reference.GenderUnisex, "MCH", reference.TestMCH, res.MCH),
		newResultRow(ctx, store, reference.GenderUnisex, "MCHC", reference.TestMCHC, res.MCHC),
	}

	indicesCalculator.render(t, data, values)
}

// BilirubinForm renders the indirect bilirubin calculator.
func BilirubinForm(s session.Session, t template.Template, data template.Data) {
	bilirubinCalculator.show(s, t, data)
}

// CalculateBilirubin subtracts direct from total bilirubin.
func CalculateBilirubin(c flamego.Context, s session.Session, t template.Template, data template.Data, store reference.Store) {
	values, r, ok := bilirubinCalculator.read(c, s)
	if !ok {
		return
	}

	indirect := formula.IndirectBilirubin(r.Value(gate.FieldTotalBilirubin), r.Value(gate.FieldDirectBilirubin))

	data["Results"] = []ResultRow{
		newResultRow(c.Request().Context(), store, reference.GenderUnisex,
			"Indirect bilirubin", reference.TestBilirubinIndirect, indirect),
	}

	if indirect.Value < 0 {
		data["Advisories"] = []formula.Advisory{formula.AdvisoryDirectExceedsTotal}
	}

	bilirubinCalculator.render(t, data, values)
}

// RBCForm renders the RBC estimate calculator.
func RBCForm(s session.Session, t template.Template, data template.Data) {
	rbcCalculator.show(s, t, data)
}

// CalculateRBC estimates the RBC count from hemoglobin and hematocrit.
func CalculateRBC(c flamego.Context, s session.Session, t template.Template, data template.Data, settings Settings, store reference.Store) {
	values, r, ok := rbcCalculator.read(c, s)
	if !ok {
		return
	}

	rbc, err := formula.EstimateRBC(r.Value(gate.FieldHemoglobin), r.Value(gate.FieldHematocrit))
	if err != nil {
		rbcCalculator.reject(c, s, values, rbcCalculator.form.Message)
		return
	}

	data["Results"] = []ResultRow{
		newResultRow(c.Request().Context(), store, settings.gender(values[fieldGender]),
			"Estimated RBC", reference.TestRBC, rbc),
	}

	rbcCalculator.render(t, data, values)
}

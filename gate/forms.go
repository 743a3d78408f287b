/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package gate

import "strings"

// Form is the set of required fields of a triggered calculation together
// with the message shown when any of them is not ready.
type Form struct {
	Name     string
	Required []string
	Message  string
}

// Field names used by the forms.
const (
	FieldWeight           = "weight"
	FieldHeight           = "height"
	FieldTotalCholesterol = "tc"
	FieldHDL              = "hdl"
	FieldTriglycerides    = "tg"
	FieldHemoglobin       = "hgb"
	FieldHematocrit       = "hct"
	FieldRBC              = "rbc"
	FieldTotalBilirubin   = "total"
	FieldDirectBilirubin  = "direct"
)

// Forms of the triggered calculators.
var (
	BMIForm = Form{
		Name:     "bmi",
		Required: []string{FieldWeight, FieldHeight},
		Message:  "Please enter both weight and height values",
	}
	LDLForm = Form{
		Name:     "ldl",
		Required: []string{FieldTotalCholesterol, FieldHDL, FieldTriglycerides},
		Message:  "Please enter all three values (TC, HDL, and Triglycerides)",
	}
	IndicesForm = Form{
		Name:     "indices",
		Required: []string{FieldHemoglobin, FieldHematocrit, FieldRBC},
		Message:  "Please enter all three values (Hemoglobin, Hematocrit, and RBC count)",
	}
	BilirubinForm = Form{
		Name:     "bilirubin",
		Required: []string{FieldTotalBilirubin, FieldDirectBilirubin},
		Message:  "Please enter both total and direct bilirubin values",
	}
	RBCForm = Form{
		Name:     "rbc",
		Required: []string{FieldHemoglobin, FieldHematocrit},
		Message:  "Please enter both hemoglobin and hematocrit values",
	}
)

// ConvertMessage is shown when Enter is pressed on a converter whose fields
// are all empty.
const ConvertMessage = "Please enter a value to convert"

// Check runs the gate over the form's required fields, looking each one up
// through get.
func (f Form) Check(get func(name string) string) Readiness {
	fields := make([]Field, 0, len(f.Required))
	for _, name := range f.Required {
		fields = append(fields, Field{Name: name, Raw: get(name)})
	}

	return Check(fields...)
}

// CheckValues is Check over a map of raw values.
func (f Form) CheckValues(values map[string]string) Readiness {
	return f.Check(func(name string) string { return values[name] })
}

// AllEmpty reports whether every value is blank, the condition under which
// a converter shows ConvertMessage on Enter.
func AllEmpty(values ...string) bool {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}

	return true
}

/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package linked

import "github.com/humaidq/clinicalc/formula"

// FieldID names one field of a linked set.
type FieldID string

// FieldSpec describes a field of a converter.
type FieldSpec struct {
	ID       FieldID
	Label    string
	Unit     formula.Unit
	ReadOnly bool
}

// Values maps each field to its display text. An empty string is an empty
// field.
type Values map[FieldID]string

func (v Values) clone() Values {
	out := make(Values, len(v))
	for k, s := range v {
		out[k] = s
	}

	return out
}

// State is the display state of a linked set: the text of every field and
// the field that was edited last.
type State struct {
	Values Values
	Source FieldID
}

// Converter derives the dependent fields of a linked set from one source
// field. Implementations are stateless apart from a selected parameter.
type Converter interface {
	Name() string
	Fields() []FieldSpec
	// Derive returns the text of every field that depends on source, given
	// the parsed value of source. It never includes source itself.
	Derive(source FieldID, v float64) Values
}

// Parameterized is implemented by converters with a selectable parameter,
// such as the analyte of the lab converter.
type Parameterized interface {
	Parameter() string
	SetParameter(id string) error
}

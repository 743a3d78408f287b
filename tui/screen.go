/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package tui

import (
	"context"
	"errors"

	"github.com/charmbracelet/bubbles/textinput"

	"github.com/humaidq/clinicalc/formula"
	"github.com/humaidq/clinicalc/gate"
	"github.com/humaidq/clinicalc/linked"
	"github.com/humaidq/clinicalc/reference"
)

// optionGender is the name of the gender option on screens that classify
// against gender-specific ranges.
const optionGender = "gender"

// input is one text field of a screen.
type input struct {
	id       string
	label    string
	unit     formula.Unit
	readOnly bool
	model    textinput.Model
	status   *reference.Classification
}

func newInput(id, label string, unit formula.Unit, readOnly bool) *input {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 16
	ti.Width = 14

	return &input{id: id, label: label, unit: unit, readOnly: readOnly, model: ti}
}

// choice is one selectable value of an option.
type choice struct {
	value string
	label string
}

// option is a selector cycled with the arrow keys, such as a unit or the
// lab analyte.
type option struct {
	name    string
	label   string
	choices []choice
	index   int
}

func (o *option) value() string {
	return o.choices[o.index].value
}

func (o *option) choiceLabel() string {
	return o.choices[o.index].label
}

func (o *option) cycle(delta int) {
	n := len(o.choices)
	o.index = ((o.index+delta)%n + n) % n
}

func (o *option) selectValue(v string) {
	for i, c := range o.choices {
		if c.value == v {
			o.index = i
			return
		}
	}
}

// calcRow is one computed value of a calculator.
type calcRow struct {
	label    string
	testName string
	q        formula.Quantity
}

// calcResult is what a calculator produces once its form is ready.
type calcResult struct {
	rows  []calcRow
	notes []string
}

// calculateFunc runs a calculator on the gated inputs and the selected
// options.
type calculateFunc func(r gate.Readiness, opts map[string]string) (calcResult, error)

// resultLine is a calculator row ready for display.
type resultLine struct {
	label  string
	value  string
	status *reference.Classification
}

// screen is one calculator or converter. Converters carry a panel and
// recompute on every edit; calculators carry a form and recompute on
// submit.
type screen struct {
	title   string
	inputs  []*input
	options []*option
	focus   int

	panel *linked.Panel

	form      *gate.Form
	calculate calculateFunc
	results   []resultLine
	notes     []string
}

// target is a focusable element: either an input or an option.
type target struct {
	input  *input
	option *option
}

func (s *screen) targets() []target {
	out := make([]target, 0, len(s.inputs)+len(s.options))
	for _, in := range s.inputs {
		if !in.readOnly {
			out = append(out, target{input: in})
		}
	}

	for _, o := range s.options {
		out = append(out, target{option: o})
	}

	return out
}

func (s *screen) focused() target {
	t := s.targets()
	if len(t) == 0 {
		return target{}
	}

	return t[s.focus%len(t)]
}

// moveFocus shifts the focus by delta, wrapping around, and updates the
// cursor of the text inputs.
func (s *screen) moveFocus(delta int) {
	n := len(s.targets())
	if n == 0 {
		return
	}

	s.focus = ((s.focus+delta)%n + n) % n
	s.syncFocus()
}

func (s *screen) syncFocus() {
	cur := s.focused()
	for _, in := range s.inputs {
		if in == cur.input {
			in.model.Focus()
		} else {
			in.model.Blur()
		}
	}
}

func (s *screen) option(name string) *option {
	for _, o := range s.options {
		if o.name == name {
			return o
		}
	}

	return nil
}

func (s *screen) optionValues() map[string]string {
	out := make(map[string]string, len(s.options))
	for _, o := range s.options {
		out[o.name] = o.value()
	}

	return out
}

func (s *screen) inputValues() map[string]string {
	out := make(map[string]string, len(s.inputs))
	for _, in := range s.inputs {
		out[in.id] = in.model.Value()
	}

	return out
}

// gender returns the selected gender, or fallback when the screen has no
// gender option.
func (s *screen) gender(fallback reference.Gender) reference.Gender {
	if o := s.option(optionGender); o != nil {
		return reference.ParseGender(o.value())
	}

	return fallback
}

// loadPanelFields rebuilds the inputs from the panel's field specs, keeping
// the focus position.
func (s *screen) loadPanelFields() {
	specs := s.panel.Fields()
	values := s.panel.Values()

	s.inputs = make([]*input, 0, len(specs))
	for _, spec := range specs {
		in := newInput(string(spec.ID), spec.Label, spec.Unit, spec.ReadOnly)
		in.model.SetValue(values[spec.ID])
		s.inputs = append(s.inputs, in)
	}

	s.syncFocus()
}

// edit pushes the text of in through the panel and copies the derived
// values into every other input. The edited input keeps exactly what was
// typed.
func (s *screen) edit(in *input) {
	values, err := s.panel.Edit(linked.FieldID(in.id), in.model.Value())
	if err != nil && !errors.Is(err, linked.ErrUnparsable) {
		logger.Warn("Converter edit rejected", "converter", s.panel.Converter().Name(), "field", in.id, "error", err)
		return
	}

	for _, other := range s.inputs {
		if other != in {
			other.model.SetValue(values[linked.FieldID(other.id)])
		}
	}
}

// classifyPanel attaches a classification to every converter input that
// holds a number and has a reference range.
func (s *screen) classifyPanel(ctx context.Context, store reference.Store, gender reference.Gender) {
	for _, in := range s.inputs {
		in.status = nil

		test := reference.ConverterTest(s.panel.Converter(), linked.FieldID(in.id))
		if test == "" {
			continue
		}

		v, err := formula.ParseInput(in.model.Value())
		if err != nil {
			continue
		}

		c, err := reference.Evaluate(ctx, store, test, gender, formula.Quantity{Value: v, Unit: in.unit})
		if err != nil {
			logger.Warn("Reference range lookup failed", "test", test, "error", err)
			continue
		}

		in.status = c
	}
}

// selectOption reacts to an option change. On the lab converter a new
// analyte clears the panel and relabels its fields.
func (s *screen) selectOption(o *option) {
	if s.panel == nil || o.name == optionGender {
		return
	}

	if err := s.panel.SelectParameter(o.value()); err != nil {
		logger.Warn("Converter parameter rejected", "converter", s.panel.Converter().Name(), "parameter", o.value(), "error", err)
		return
	}

	s.loadPanelFields()
}

// submit runs the calculator. It returns the message to show in the banner,
// or "" on success.
func (s *screen) submit(ctx context.Context, store reference.Store, gender reference.Gender) string {
	if s.form == nil {
		if gate.AllEmpty(valuesOf(s.inputValues())...) {
			return gate.ConvertMessage
		}

		return ""
	}

	r := s.form.CheckValues(s.inputValues())
	if !r.Ready {
		return s.form.Message
	}

	res, err := s.calculate(r, s.optionValues())
	if err != nil {
		return err.Error()
	}

	s.results = make([]resultLine, 0, len(res.rows))
	for _, row := range res.rows {
		line := resultLine{label: row.label, value: row.q.WithUnit()}

		c, err := reference.Evaluate(ctx, store, row.testName, gender, row.q)
		if err != nil {
			logger.Warn("Reference range lookup failed", "test", row.testName, "error", err)
		}

		line.status = c
		s.results = append(s.results, line)
	}

	s.notes = res.notes

	return ""
}

// clear empties every input and forgets results.
func (s *screen) clear() {
	if s.panel != nil {
		s.panel.Reset()
	}

	for _, in := range s.inputs {
		in.model.SetValue("")
		in.status = nil
	}

	s.results = nil
	s.notes = nil
}

func valuesOf(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}

	return out
}

/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package linked

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/humaidq/clinicalc/formula"
)

// Panel is one converter instance together with the state of its fields.
// Each panel owns its state; panels never share or observe each other.
type Panel struct {
	ID    uuid.UUID
	conv  Converter
	specs map[FieldID]FieldSpec
	state State
}

// NewPanel creates a panel with every field empty.
func NewPanel(conv Converter) *Panel {
	p := &Panel{
		ID:    uuid.New(),
		conv:  conv,
		specs: make(map[FieldID]FieldSpec),
	}

	for _, f := range conv.Fields() {
		p.specs[f.ID] = f
	}

	p.Reset()

	return p
}

// Converter returns the converter the panel drives.
func (p *Panel) Converter() Converter {
	return p.conv
}

// Fields returns the field specs in display order.
func (p *Panel) Fields() []FieldSpec {
	return p.conv.Fields()
}

// Values returns a copy of the current field text.
func (p *Panel) Values() Values {
	return p.state.Values.clone()
}

// State returns a copy of the panel state.
func (p *Panel) State() State {
	return State{Values: p.state.Values.clone(), Source: p.state.Source}
}

// Reset clears every field and forgets the source field.
func (p *Panel) Reset() {
	values := make(Values, len(p.specs))
	for id := range p.specs {
		values[id] = ""
	}

	p.state = State{Values: values}
}

// Restore loads previously rendered field text, for callers that keep the
// state outside the panel between edits. Unknown fields are ignored.
func (p *Panel) Restore(values Values) {
	p.Reset()

	for id, v := range values {
		if _, ok := p.specs[id]; ok {
			p.state.Values[id] = v
		}
	}
}

// Edit applies raw as the new text of field and re-derives every other
// field. The edited field is the source of truth and is never rewritten by
// its own derivation.
//
// Blank input clears all dependents. Text that does not parse leaves the
// dependents untouched and returns ErrUnparsable alongside the values.
func (p *Panel) Edit(field FieldID, raw string) (Values, error) {
	spec, ok := p.specs[field]
	if !ok {
		return p.Values(), fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	if spec.ReadOnly {
		return p.Values(), fmt.Errorf("%w: %q", ErrReadOnlyField, field)
	}

	p.state.Values[field] = raw
	p.state.Source = field

	v, err := formula.ParseInput(raw)
	switch {
	case errors.Is(err, formula.ErrEmptyInput):
		for id := range p.specs {
			if id != field {
				p.state.Values[id] = ""
			}
		}

		return p.Values(), nil
	case err != nil:
		return p.Values(), fmt.Errorf("%w: %q", ErrUnparsable, raw)
	}

	for id, text := range p.conv.Derive(field, v) {
		if id == field {
			continue
		}

		if _, ok := p.specs[id]; ok {
			p.state.Values[id] = text
		}
	}

	return p.Values(), nil
}

// SelectParameter switches the converter parameter. Switching to a
// different parameter clears every field rather than re-converting the old
// value under the new parameter.
func (p *Panel) SelectParameter(id string) error {
	pc, ok := p.conv.(Parameterized)
	if !ok {
		return fmt.Errorf("%w: %s", ErrNoParameters, p.conv.Name())
	}

	if pc.Parameter() == id {
		return nil
	}

	if err := pc.SetParameter(id); err != nil {
		return err
	}

	p.specs = make(map[FieldID]FieldSpec)
	for _, f := range p.conv.Fields() {
		p.specs[f.ID] = f
	}

	p.Reset()

	return nil
}

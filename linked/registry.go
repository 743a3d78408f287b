/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package linked

import "fmt"

var registry = map[string]func() Converter{
	"lab":         func() Converter { return NewLab() },
	"pcv":         func() Converter { return PCV{} },
	"weight":      func() Converter { return Weight{} },
	"height":      func() Converter { return Height{} },
	"temperature": func() Converter { return Temperature{} },
}

// ConverterNames lists the registered converters in display order.
func ConverterNames() []string {
	return []string{"lab", "pcv", "weight", "height", "temperature"}
}

// NewConverter returns a fresh converter by name.
func NewConverter(name string) (Converter, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownConverter, name)
	}

	return ctor(), nil
}

// NewPanelByName creates a panel for the named converter.
func NewPanelByName(name string) (*Panel, error) {
	conv, err := NewConverter(name)
	if err != nil {
		return nil, err
	}

	return NewPanel(conv), nil
}

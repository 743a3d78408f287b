/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package tui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings of the calculator UI.
type KeyMap struct {
	NextField  key.Binding
	PrevField  key.Binding
	NextScreen key.Binding
	PrevScreen key.Binding
	CycleNext  key.Binding
	CyclePrev  key.Binding
	Submit     key.Binding
	Clear      key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab/↓", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab/↑", "previous field"),
		),
		NextScreen: key.NewBinding(
			key.WithKeys("ctrl+n", "pgdown"),
			key.WithHelp("ctrl+n", "next calculator"),
		),
		PrevScreen: key.NewBinding(
			key.WithKeys("ctrl+p", "pgup"),
			key.WithHelp("ctrl+p", "previous calculator"),
		),
		CycleNext: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next option"),
		),
		CyclePrev: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous option"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "calculate"),
		),
		Clear: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "clear"),
		),
		Help: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "esc"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp returns keybindings to show in the mini help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextField, k.Submit, k.NextScreen, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextField, k.PrevField, k.CycleNext, k.CyclePrev},
		{k.NextScreen, k.PrevScreen, k.Submit, k.Clear},
		{k.Help, k.Quit},
	}
}

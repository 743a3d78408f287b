/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/humaidq/clinicalc/reference"
)

// Styles for the calculator TUI
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	labelStyle = lipgloss.NewStyle().
			Width(26).
			Foreground(lipgloss.Color("15"))

	focusedLabelStyle = labelStyle.
				Foreground(lipgloss.Color("12"))

	readOnlyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")) // green

	optimalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11")) // yellow

	outOfRangeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")) // red

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))

	bannerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15")).
			Background(lipgloss.Color("1")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("8"))
)

// renderView renders the entire view.
func (m Model) renderView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Clinical Calculator"))
	b.WriteString("\n")
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	s := m.screen()
	cur := s.focused()

	for _, in := range s.inputs {
		style := labelStyle
		if in == cur.input {
			style = focusedLabelStyle
		}

		value := in.model.View()
		if in.readOnly {
			value = readOnlyStyle.Render(in.model.Value())
		}

		line := style.Render(in.label) + value
		if in.status != nil {
			line += "  " + renderStatus(in.status)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	if len(s.options) > 0 {
		b.WriteString("\n")
	}

	for _, o := range s.options {
		style := labelStyle
		if o == cur.option {
			style = focusedLabelStyle
		}

		b.WriteString(style.Render(o.label))
		b.WriteString(fmt.Sprintf("‹ %s ›\n", o.choiceLabel()))
	}

	if len(s.results) > 0 {
		b.WriteString("\n")
	}

	for _, r := range s.results {
		line := labelStyle.Render(r.label) + r.value
		if r.status != nil {
			line += "  " + renderStatus(r.status)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	for _, n := range s.notes {
		b.WriteString(noteStyle.Render(n))
		b.WriteString("\n")
	}

	if m.bannerText != "" {
		b.WriteString("\n")
		b.WriteString(bannerStyle.Render(m.bannerText))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.showHelp {
		b.WriteString(helpStyle.Render(m.help.FullHelpView(m.keys.FullHelp())))
	} else {
		b.WriteString(helpStyle.Render(m.help.ShortHelpView(m.keys.ShortHelp())))
	}

	return b.String()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(m.screens))
	for i, s := range m.screens {
		if i == m.current {
			tabs = append(tabs, activeTabStyle.Render(s.title))
		} else {
			tabs = append(tabs, tabStyle.Render(s.title))
		}
	}

	return lipgloss.NewStyle().Width(m.width).Render(strings.Join(tabs, ""))
}

func renderStatus(c *reference.Classification) string {
	switch c.Status {
	case reference.StatusOutOfReference:
		return outOfRangeStyle.Render(c.Label())
	case reference.StatusOutOfOptimal:
		return optimalStyle.Render(c.Label())
	default:
		return normalStyle.Render(c.Label())
	}
}

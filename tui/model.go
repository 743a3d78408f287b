/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/humaidq/clinicalc/gate"
	"github.com/humaidq/clinicalc/reference"
)

// bannerChangedMsg tells the model to re-read the banner text, sent when
// the banner is shown, re-armed or dismissed by its timer.
type bannerChangedMsg struct{}

// Model is the bubbletea model for the calculator TUI.
type Model struct {
	ctx     context.Context
	screens []*screen
	current int

	store  reference.Store
	gender reference.Gender

	banner     *gate.Banner
	bannerText string

	// UI state
	keys     KeyMap
	help     help.Model
	showHelp bool
	width    int
	height   int
}

// New creates a calculator TUI model. A nil store leaves every result
// unclassified.
func New(ctx context.Context, store reference.Store, gender reference.Gender, banner *gate.Banner) Model {
	if banner == nil {
		banner = gate.NewBanner(gate.DefaultDismissDelay)
	}

	return Model{
		ctx:     ctx,
		screens: defaultScreens(gender),
		store:   store,
		gender:  gender,
		banner:  banner,
		keys:    DefaultKeyMap(),
		help:    help.New(),
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) screen() *screen {
	return m.screens[m.current]
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case bannerChangedMsg:
		m.bannerText = m.banner.Message()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := m.screen()
	cur := s.focused()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.banner.Cancel()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = !m.showHelp
		return m, nil

	case key.Matches(msg, m.keys.NextScreen):
		m.switchScreen(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevScreen):
		m.switchScreen(-1)
		return m, nil

	case key.Matches(msg, m.keys.NextField):
		s.moveFocus(1)
		return m, nil

	case key.Matches(msg, m.keys.PrevField):
		s.moveFocus(-1)
		return m, nil

	case key.Matches(msg, m.keys.Clear):
		s.clear()
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		if text := s.submit(m.ctx, m.store, s.gender(m.gender)); text != "" {
			m.banner.Show(text)
			m.bannerText = text
		}
		return m, nil

	case cur.option != nil && key.Matches(msg, m.keys.CycleNext):
		m.cycle(cur.option, 1)
		return m, nil

	case cur.option != nil && key.Matches(msg, m.keys.CyclePrev):
		m.cycle(cur.option, -1)
		return m, nil
	}

	if cur.input == nil {
		return m, nil
	}

	before := cur.input.model.Value()

	var cmd tea.Cmd
	cur.input.model, cmd = cur.input.model.Update(msg)

	if s.panel != nil && cur.input.model.Value() != before {
		s.edit(cur.input)
		s.classifyPanel(m.ctx, m.store, s.gender(m.gender))
	}

	return m, cmd
}

func (m *Model) switchScreen(delta int) {
	n := len(m.screens)
	m.current = ((m.current+delta)%n + n) % n
	m.screen().syncFocus()
}

func (m *Model) cycle(o *option, delta int) {
	s := m.screen()
	o.cycle(delta)
	s.selectOption(o)

	if s.panel != nil {
		s.classifyPanel(m.ctx, m.store, s.gender(m.gender))
	}
}

// View renders the model.
func (m Model) View() string {
	return m.renderView()
}

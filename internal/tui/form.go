// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/toeirei/quadratic/internal/i18n"
	"github.com/toeirei/quadratic/internal/input"
	"github.com/toeirei/quadratic/internal/logging"
	"github.com/toeirei/quadratic/internal/report"
)

// formModel collects the three coefficients and shows the result below them.
type formModel struct {
	focusIndex int               // len(inputs) is the submit button
	inputs     []textinput.Model // 0: a, 1: b, 2: c
	format     report.Formatter
	keys       keyMap
	help       help.Model

	result    string
	resultErr bool
	status    string
	width     int

	// copyFn writes to the system clipboard; tests replace it.
	copyFn func(string) error
}

func newFormModel(f report.Formatter) formModel {
	m := formModel{
		inputs: make([]textinput.Model, len(input.Names)),
		format: f,
		keys:   newKeyMap(),
		help:   help.New(),
		copyFn: clipboard.WriteAll,
	}

	for i, name := range input.Names {
		t := textinput.New()
		t.Cursor.Style = focusedStyle
		t.CharLimit = 32
		t.Width = 24
		t.Prompt = fmt.Sprintf("%s = ", name)
		t.Placeholder = "0"
		m.inputs[i] = t
	}
	m.inputs[0].Focus()
	m.inputs[0].PromptStyle = focusedStyle
	m.inputs[0].TextStyle = focusedStyle
	return m
}

func (m formModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m formModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, m.keys.Copy):
			m.copyResult()
			return m, nil

		case key.Matches(msg, m.keys.Reset):
			for i := range m.inputs {
				m.inputs[i].Reset()
			}
			m.result, m.resultErr, m.status = "", false, ""
			return m, m.setFocus(0)

		case key.Matches(msg, m.keys.Solve):
			// Enter on the last field or the button solves; elsewhere it advances.
			if m.focusIndex >= len(m.inputs)-1 {
				m.solve()
				return m, nil
			}
			return m, m.setFocus(m.focusIndex + 1)

		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus(m.focusIndex + 1)

		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus(m.focusIndex - 1)
		}
	}

	// Handle character input and blinking
	cmd := m.updateInputs(msg)
	return m, cmd
}

// setFocus moves focus to i, wrapping around the inputs and the button.
func (m *formModel) setFocus(i int) tea.Cmd {
	n := len(m.inputs) + 1
	m.focusIndex = ((i % n) + n) % n

	cmds := make([]tea.Cmd, len(m.inputs))
	for j := range m.inputs {
		if j == m.focusIndex {
			cmds[j] = m.inputs[j].Focus()
			m.inputs[j].PromptStyle = focusedStyle
			m.inputs[j].TextStyle = focusedStyle
			continue
		}
		m.inputs[j].Blur()
		m.inputs[j].PromptStyle = blurredStyle
		m.inputs[j].TextStyle = blurredStyle
	}
	return tea.Batch(cmds...)
}

func (m *formModel) updateInputs(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, len(m.inputs))
	for i := range m.inputs {
		m.inputs[i], cmds[i] = m.inputs[i].Update(msg)
	}
	return tea.Batch(cmds...)
}

func (m *formModel) values() []string {
	vals := make([]string, len(m.inputs))
	for i := range m.inputs {
		vals[i] = m.inputs[i].Value()
	}
	return vals
}

func (m *formModel) solve() {
	m.status = ""
	eq, err := input.ParseEquation(m.values())
	if err != nil {
		m.result, m.resultErr = m.format.Error(err), true
		return
	}
	roots, err := eq.Solve()
	logging.Debugf("tui: a=%v b=%v c=%v roots=%v err=%v", eq.A, eq.B, eq.C, roots, err)
	m.result, m.resultErr = m.format.Outcome(roots, err), err != nil
}

func (m *formModel) copyResult() {
	if m.result == "" {
		m.status = i18n.T("tui.nothing_to_copy")
		return
	}
	if err := m.copyFn(m.result); err != nil {
		logging.Warnf("clipboard: %v", err)
		m.status = i18n.T("tui.copy_failed", map[string]any{"Error": err.Error()})
		return
	}
	m.status = i18n.T("tui.copied")
}

func (m formModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(i18n.T("tui.title")))
	b.WriteString("\n")
	b.WriteString(subtitleStyle.Render(i18n.T("tui.equation")))
	b.WriteString("\n\n")

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}

	button := buttonStyle.Render(i18n.T("tui.submit"))
	if m.focusIndex == len(m.inputs) {
		button = activeButtonStyle.Render(i18n.T("tui.submit"))
	}
	b.WriteString(button)
	b.WriteString("\n")

	if m.result != "" {
		style := successStyle
		if m.resultErr {
			style = errorStyle
		}
		b.WriteString(resultBoxStyle.Render(style.Render(m.result)))
		b.WriteString("\n")
	}

	var status string
	if m.status != "" {
		status = statusStyle.Render(m.status)
	}
	footer := AlignFooter(m.help.View(m.keys), status, m.width-4)
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, b.String(), footer))
}

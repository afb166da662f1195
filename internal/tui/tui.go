// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/toeirei/quadratic/internal/report"
)

// Run is the main entrypoint for the TUI. It blocks until the user quits.
func Run(f report.Formatter) error {
	_, err := tea.NewProgram(newFormModel(f)).Run()
	return err
}

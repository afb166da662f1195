// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

// Package report renders solver results for people and for machines.
// Human output is localized through internal/i18n; numbers are formatted
// with the conventions of the active locale.
package report

import (
	"errors"
	"math"

	"github.com/toeirei/quadratic/internal/i18n"
	"github.com/toeirei/quadratic/internal/input"
	"github.com/toeirei/quadratic/internal/solver"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// DefaultPrecision is the number of fraction digits shown when none is configured.
const DefaultPrecision = 6

// MaxPrecision bounds the configurable precision; float64 carries no more
// significant decimal digits than this.
const MaxPrecision = 17

// Formatter renders numbers and messages for one locale.
type Formatter struct {
	Tag       language.Tag
	Precision int
}

// NewFormatter returns a Formatter for the active i18n language.
func NewFormatter(precision int) Formatter {
	return Formatter{Tag: i18n.Tag(), Precision: ClampPrecision(precision)}
}

// ClampPrecision limits p to [0, MaxPrecision].
func ClampPrecision(p int) int {
	if p < 0 {
		return 0
	}
	if p > MaxPrecision {
		return MaxPrecision
	}
	return p
}

// Number formats x with at most Precision fraction digits and no grouping.
func (f Formatter) Number(x float64) string {
	digits := ClampPrecision(f.Precision)
	// Values that round to zero at this precision are shown as 0, not -0.
	if math.Round(x*math.Pow10(digits)) == 0 {
		x = 0
	}
	p := message.NewPrinter(f.Tag)
	return p.Sprint(number.Decimal(x,
		number.MaxFractionDigits(digits),
		number.NoSeparator(),
	))
}

// Roots describes a RootSet in a single sentence.
func (f Formatter) Roots(roots solver.RootSet) string {
	switch roots.Kind() {
	case solver.NoRealRoots:
		return i18n.T("result.no_roots")
	case solver.OneRoot:
		return i18n.T("result.single_root", map[string]any{"X": f.Number(roots[0])})
	default:
		return i18n.T("result.two_roots", map[string]any{
			"X1": f.Number(roots[0]),
			"X2": f.Number(roots[1]),
		})
	}
}

// Residuals returns one line per root with the value of the equation at
// that root.
func (f Formatter) Residuals(eq solver.Equation, roots solver.RootSet) []string {
	lines := make([]string, 0, len(roots))
	for _, x := range roots {
		lines = append(lines, i18n.T("result.residual", map[string]any{
			"X":        f.Number(x),
			"Residual": formatResidual(eq.Residual(x)),
		}))
	}
	return lines
}

// Error translates errors produced while reading or solving an equation
// into a user-facing message.
func (f Formatter) Error(err error) string {
	if errors.Is(err, solver.ErrInvalidCoefficient) {
		return i18n.T("error.invalid_coefficient")
	}

	var fe *input.FormatError
	if errors.As(err, &fe) {
		switch {
		case fe.Name == "":
			return i18n.T("error.format_count", map[string]any{"Count": fe.Count})
		case errors.Is(fe, input.ErrEmpty):
			return i18n.T("error.format_empty", map[string]any{"Name": fe.Name})
		default:
			return i18n.T("error.format", map[string]any{"Name": fe.Name, "Input": fe.Input})
		}
	}

	return i18n.T("error.unexpected", map[string]any{"Error": err.Error()})
}

// Outcome renders either the roots or the error of a solve attempt.
func (f Formatter) Outcome(roots solver.RootSet, err error) string {
	if err != nil {
		return f.Error(err)
	}
	return f.Roots(roots)
}

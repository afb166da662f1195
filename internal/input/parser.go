// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

// Package input turns user-typed text into equation coefficients.
package input

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/toeirei/quadratic/internal/solver"
)

// Names of the three coefficients, in prompt order.
var Names = [3]string{"a", "b", "c"}

// ErrEmpty is the cause of a FormatError for blank input.
var ErrEmpty = errors.New("empty input")

// ErrNotFinite is the cause of a FormatError for NaN or infinite values.
var ErrNotFinite = errors.New("value is not a finite number")

// FormatError reports text that could not be read as a coefficient.
type FormatError struct {
	Name  string // coefficient name, "a", "b" or "c"; empty for count errors
	Input string
	Count int // number of values supplied, set for count errors
	Err   error
}

func (e *FormatError) Error() string {
	if e.Name == "" {
		return fmt.Sprintf("expected 3 coefficients, got %d", e.Count)
	}
	return fmt.Sprintf("coefficient %s: cannot parse %q: %v", e.Name, e.Input, e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }

// ParseCoefficient reads a single coefficient. A decimal comma is accepted
// when the text contains no dot, so "1,5" parses as 1.5.
func ParseCoefficient(name, raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, &FormatError{Name: name, Input: raw, Err: ErrEmpty}
	}
	if !strings.Contains(s, ".") && strings.Count(s, ",") == 1 {
		s = strings.Replace(s, ",", ".", 1)
	}

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, &FormatError{Name: name, Input: raw, Err: err}
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, &FormatError{Name: name, Input: raw, Err: ErrNotFinite}
	}
	return v, nil
}

// ParseEquation reads exactly three coefficients in a, b, c order.
func ParseEquation(raw []string) (solver.Equation, error) {
	if len(raw) != len(Names) {
		return solver.Equation{}, &FormatError{Count: len(raw), Err: fmt.Errorf("wrong number of coefficients")}
	}
	var vals [3]float64
	for i, name := range Names {
		v, err := ParseCoefficient(name, raw[i])
		if err != nil {
			return solver.Equation{}, err
		}
		vals[i] = v
	}
	return solver.Equation{A: vals[0], B: vals[1], C: vals[2]}, nil
}

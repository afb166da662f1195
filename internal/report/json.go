// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/toeirei/quadratic/internal/input"
	"github.com/toeirei/quadratic/internal/solver"
)

// Result is the machine-readable form of a solve attempt.
type Result struct {
	Equation     solver.Equation `json:"equation"`
	Discriminant Float           `json:"discriminant"`
	Kind         string          `json:"kind,omitempty"`
	Roots        []Float         `json:"roots"`
	Residuals    []Float         `json:"residuals,omitempty"`
	Error        string          `json:"error,omitempty"`
	ErrorKind    string          `json:"error_kind,omitempty"`
}

// NewResult assembles a Result. Residuals are included when verify is set.
func NewResult(eq solver.Equation, roots solver.RootSet, err error, verify bool) Result {
	res := Result{
		Equation:     eq,
		Discriminant: Float(eq.Discriminant()),
		Roots:        []Float{},
	}
	if err != nil {
		res.Error = err.Error()
		res.ErrorKind = errorKind(err)
		return res
	}

	res.Kind = roots.Kind().String()
	for _, x := range roots {
		res.Roots = append(res.Roots, Float(x))
		if verify {
			res.Residuals = append(res.Residuals, Float(eq.Residual(x)))
		}
	}
	return res
}

// WriteJSON writes r as indented JSON followed by a newline.
func WriteJSON(w io.Writer, r Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

func errorKind(err error) string {
	var fe *input.FormatError
	switch {
	case errors.Is(err, solver.ErrInvalidCoefficient):
		return "invalid_coefficient"
	case errors.As(err, &fe):
		return "format"
	default:
		return "unexpected"
	}
}

// Float is a float64 that survives JSON encoding when it overflows:
// infinities and NaN are written as the strings "+Inf", "-Inf" and "NaN".
type Float float64

func (f Float) MarshalJSON() ([]byte, error) {
	v := float64(f)
	switch {
	case math.IsNaN(v):
		return []byte(`"NaN"`), nil
	case math.IsInf(v, 1):
		return []byte(`"+Inf"`), nil
	case math.IsInf(v, -1):
		return []byte(`"-Inf"`), nil
	}
	return json.Marshal(v)
}

func (f *Float) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		switch s {
		case "NaN":
			*f = Float(math.NaN())
		case "+Inf":
			*f = Float(math.Inf(1))
		case "-Inf":
			*f = Float(math.Inf(-1))
		default:
			return fmt.Errorf("invalid number %q", s)
		}
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*f = Float(v)
	return nil
}

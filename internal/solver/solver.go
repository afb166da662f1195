// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package solver

import (
	"errors"
	"math"
)

// Epsilon is the zero tolerance used for the leading coefficient and the
// discriminant: the smallest positive float64 distinguishable from zero.
const Epsilon = math.SmallestNonzeroFloat64

// ErrInvalidCoefficient is returned when the leading coefficient is zero
// within Epsilon.
var ErrInvalidCoefficient = errors.New("coefficient a must be non-zero; this is not a quadratic equation")

// RootSet is the ordered list of real roots of an equation. It holds zero,
// one or two values.
type RootSet []float64

// Kind classifies the RootSet by its length.
func (r RootSet) Kind() Kind {
	switch len(r) {
	case 0:
		return NoRealRoots
	case 1:
		return OneRoot
	default:
		return TwoRoots
	}
}

// Discriminant returns b² − 4ac.
func Discriminant(a, b, c float64) float64 {
	return b*b - 4*a*c
}

// Solve returns the real roots of a·x² + b·x + c = 0.
//
// When the discriminant is positive the root using +sqrt(d) comes first.
// The textbook formula is applied as is; no rounding is performed.
func Solve(a, b, c float64) (RootSet, error) {
	if math.Abs(a) < Epsilon {
		return nil, ErrInvalidCoefficient
	}

	d := Discriminant(a, b, c)
	switch Classify(d) {
	case NoRealRoots:
		return RootSet{}, nil
	case OneRoot:
		return RootSet{-b / (2 * a)}, nil
	default:
		s := math.Sqrt(d)
		return RootSet{(-b + s) / (2 * a), (-b - s) / (2 * a)}, nil
	}
}

// Residual evaluates a·x² + b·x + c. It is zero, up to rounding, for every
// root returned by Solve.
func Residual(a, b, c, x float64) float64 {
	return a*x*x + b*x + c
}

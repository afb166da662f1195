// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package solver

import "math"

// Kind describes how many real roots an equation has.
type Kind int

const (
	NoRealRoots Kind = iota
	OneRoot
	TwoRoots
)

// String returns the stable identifier used in JSON output and message IDs.
func (k Kind) String() string {
	switch k {
	case NoRealRoots:
		return "none"
	case OneRoot:
		return "one"
	case TwoRoots:
		return "two"
	}
	return "unknown"
}

// Classify maps a discriminant to a Kind using Epsilon as the zero band.
// A NaN discriminant, which overflowing coefficients can produce, is
// classified as TwoRoots; Solve then returns two NaN roots.
func Classify(d float64) Kind {
	switch {
	case d < -Epsilon:
		return NoRealRoots
	case math.Abs(d) <= Epsilon:
		return OneRoot
	default:
		return TwoRoots
	}
}

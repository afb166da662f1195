// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package solver

// Equation bundles the three coefficients of a·x² + b·x + c = 0.
type Equation struct {
	A float64 `json:"a"`
	B float64 `json:"b"`
	C float64 `json:"c"`
}

// Solve is shorthand for Solve(e.A, e.B, e.C).
func (e Equation) Solve() (RootSet, error) {
	return Solve(e.A, e.B, e.C)
}

func (e Equation) Discriminant() float64 {
	return Discriminant(e.A, e.B, e.C)
}

// Residual evaluates the equation at x.
func (e Equation) Residual(x float64) float64 {
	return Residual(e.A, e.B, e.C, x)
}

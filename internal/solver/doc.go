// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

// Package solver computes the real roots of a quadratic equation
// a·x² + b·x + c = 0.
//
// The package is pure: it performs no I/O, keeps no state between calls and
// is safe for concurrent use. Reading coefficients and rendering results is
// left to the callers in internal/console, internal/tui and ui/cli.
package solver

// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.
//
// Package cli implements the command-line interface for Quadratic using Cobra.
// It wires configuration, localization and logging, and provides commands
// that delegate to the solver and the interactive shells. CLI code should
// remain thin and leave the arithmetic to internal/solver.
package cli

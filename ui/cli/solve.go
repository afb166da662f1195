// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/toeirei/quadratic/internal/input"
	"github.com/toeirei/quadratic/internal/logging"
	"github.com/toeirei/quadratic/internal/report"
	"github.com/toeirei/quadratic/internal/solver"
)

const (
	outputText = "text"
	outputJSON = "json"
)

// newSolveCmd creates the 'solve' command, the non-interactive way to
// solve a single equation.
func newSolveCmd() *cobra.Command {
	var output string
	var verify bool

	cmd := &cobra.Command{
		Use:   "solve A B C",
		Short: "Solve a·x² + b·x + c = 0 for the given coefficients",
		Long: `Prints the real roots of the equation with coefficients A, B and C.
When the discriminant is positive the root using +sqrt(discriminant) is
printed first.

Flags must come before the coefficients. A leading negative coefficient
must be preceded by "--" so it is not read as a flag.`,
		Example: `  quadratic solve 1 -3 2
  quadratic solve --output json -- -1 0 4
  quadratic --language pl solve 1 2,5 1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch output {
			case outputText, outputJSON:
			default:
				return fmt.Errorf("unknown output format %q (want %q or %q)", output, outputText, outputJSON)
			}
			return runSolve(cmd, args, output, verify)
		},
	}

	// Everything after the first coefficient is positional, so "1 -3 2" works.
	cmd.Flags().SetInterspersed(false)
	cmd.Flags().StringVarP(&output, "output", "o", outputText, `Output format: "text" or "json"`)
	cmd.Flags().BoolVar(&verify, "verify", false, "Also print the value of the equation at each root")

	return cmd
}

func runSolve(cmd *cobra.Command, args []string, output string, verify bool) error {
	f := formatter()

	eq, err := input.ParseEquation(args)
	var roots solver.RootSet
	if err == nil {
		roots, err = eq.Solve()
	}
	logging.Debugf("solve: args=%q equation=%+v roots=%v err=%v", args, eq, roots, err)

	if output == outputJSON {
		if werr := report.WriteJSON(cmd.OutOrStdout(), report.NewResult(eq, roots, err, verify)); werr != nil {
			return fmt.Errorf("write json: %w", werr)
		}
		if err != nil {
			return &reportedError{err: err}
		}
		return nil
	}

	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), f.Error(err))
		return &reportedError{err: err}
	}

	fmt.Fprintln(cmd.OutOrStdout(), f.Roots(roots))
	if verify {
		for _, line := range f.Residuals(eq, roots) {
			fmt.Fprintln(cmd.OutOrStdout(), "  "+line)
		}
	}
	return nil
}

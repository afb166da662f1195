// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

// Package console implements the line-oriented interactive shell: it
// prompts for the three coefficients, solves the equation and prints the
// result, optionally repeating until the user declines.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/toeirei/quadratic/internal/i18n"
	"github.com/toeirei/quadratic/internal/input"
	"github.com/toeirei/quadratic/internal/logging"
	"github.com/toeirei/quadratic/internal/report"
	"github.com/toeirei/quadratic/internal/solver"
)

// Session is one run of the console shell.
type Session struct {
	In          io.Reader
	Out         io.Writer
	Format      report.Formatter
	Repeat      bool // ask for another equation after each result
	PauseOnExit bool // wait for Enter before returning
}

// Run drives the prompt loop until input ends, the user declines another
// round or ctx is cancelled. End of input is not an error. Cancellation is
// noticed even while a prompt is waiting for input.
func (s *Session) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	lines := readLines(s.In, done)
	defer s.pause(ctx, lines)

	for round := 1; ; round++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		eq, err := s.readEquation(ctx, lines)
		switch {
		case ctx.Err() != nil:
			fmt.Fprintln(s.Out)
			return ctx.Err()
		case errors.Is(err, io.EOF):
			fmt.Fprintln(s.Out)
			return nil
		case err != nil:
			logging.Debugf("round %d: input rejected: %v", round, err)
			fmt.Fprintln(s.Out, s.Format.Error(err))
		default:
			roots, serr := eq.Solve()
			logging.Debugf("round %d: a=%v b=%v c=%v discriminant=%v roots=%v err=%v",
				round, eq.A, eq.B, eq.C, eq.Discriminant(), roots, serr)
			fmt.Fprintln(s.Out, s.Format.Outcome(roots, serr))
		}

		if !s.Repeat {
			return nil
		}
		again, err := s.askAgain(ctx, lines)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil || !again {
			return nil
		}
	}
}

// readEquation prompts for a, b and c in turn. It stops at the first value
// that cannot be parsed.
func (s *Session) readEquation(ctx context.Context, lines <-chan lineResult) (solver.Equation, error) {
	var vals [3]float64
	for i, name := range input.Names {
		fmt.Fprint(s.Out, i18n.T("prompt.coefficient", map[string]any{"Name": name}))
		line, err := nextLine(ctx, lines)
		if err != nil {
			return solver.Equation{}, err
		}
		v, err := input.ParseCoefficient(name, line)
		if err != nil {
			return solver.Equation{}, err
		}
		vals[i] = v
	}
	return solver.Equation{A: vals[0], B: vals[1], C: vals[2]}, nil
}

func (s *Session) askAgain(ctx context.Context, lines <-chan lineResult) (bool, error) {
	fmt.Fprint(s.Out, i18n.T("prompt.again"))
	line, err := nextLine(ctx, lines)
	if err != nil {
		fmt.Fprintln(s.Out)
		return false, err
	}
	return isYes(line), nil
}

func (s *Session) pause(ctx context.Context, lines <-chan lineResult) {
	if !s.PauseOnExit || ctx.Err() != nil {
		return
	}
	fmt.Fprintln(s.Out, i18n.T("prompt.exit"))
	_, _ = nextLine(ctx, lines)
}

// isYes matches the answer against the localized list of affirmative words.
func isYes(answer string) bool {
	a := strings.ToLower(strings.TrimSpace(answer))
	if a == "" {
		return false
	}
	for _, y := range strings.Split(i18n.T("prompt.yes_answers"), ",") {
		if a == strings.TrimSpace(y) {
			return true
		}
	}
	return false
}

type lineResult struct {
	line string
	err  error
}

// readLines reads r line by line on its own goroutine so that callers can
// stop waiting when their context ends. The channel is closed after the
// first read error; the goroutine exits once done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan lineResult {
	ch := make(chan lineResult)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			line, err := readLine(br)
			select {
			case ch <- lineResult{line: line, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

// nextLine waits for the next line or for ctx to end.
func nextLine(ctx context.Context, lines <-chan lineResult) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-lines:
		if !ok {
			return "", io.EOF
		}
		return res.line, res.err
	}
}

// readLine returns the next line without its terminator. A final line
// without a newline is returned as is; io.EOF is only reported when
// nothing was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

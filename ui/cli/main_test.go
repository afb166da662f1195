// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/toeirei/quadratic/internal/config"
	"github.com/toeirei/quadratic/internal/i18n"
	"github.com/toeirei/quadratic/internal/input"
	"github.com/toeirei/quadratic/internal/report"
	"github.com/toeirei/quadratic/internal/solver"
)

// isolateConfig keeps tests away from real config files and restores the
// package-level state touched by commands.
func isolateConfig(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", tmp)
	t.Setenv("HOME", tmp)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
		appConfig = config.Default()
		i18n.Init("en")
	})
	return tmp
}

// executeCommand runs a fresh root command with the given arguments and
// captures its output. stdin may be nil.
func executeCommand(t *testing.T, stdin io.Reader, args ...string) (string, string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	if stdin != nil {
		cmd.SetIn(stdin)
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

func TestSolveCmd_Text(t *testing.T) {
	isolateConfig(t)
	cases := []struct {
		args []string
		want string
	}{
		{[]string{"solve", "1", "0", "1"}, "No real roots."},
		{[]string{"solve", "1", "2", "1"}, "One real root: x = -1"},
		{[]string{"solve", "1", "-3", "2"}, "Two real roots: x1 = 2, x2 = 1"},
		{[]string{"solve", "1", "5", "6"}, "Two real roots: x1 = -2, x2 = -3"},
		{[]string{"solve", "--", "-1", "0", "4"}, "Two real roots: x1 = -2, x2 = 2"},
		{[]string{"--precision", "3", "solve", "3", "-1", "-1"}, "Two real roots: x1 = 0.768, x2 = -0.434"},
		{[]string{"solve", "1", "0", "-1e-14"}, "Two real roots: x1 = 0, x2 = 0"},
	}
	for _, tc := range cases {
		out, errOut, err := executeCommand(t, nil, tc.args...)
		if err != nil {
			t.Fatalf("%v: unexpected error %v (stderr: %s)", tc.args, err, errOut)
		}
		if strings.TrimSpace(out) != tc.want {
			t.Fatalf("%v: expected %q, got %q", tc.args, tc.want, out)
		}
	}
}

func TestSolveCmd_InvalidCoefficient(t *testing.T) {
	isolateConfig(t)
	out, errOut, err := executeCommand(t, nil, "solve", "0", "1", "2")
	if !errors.Is(err, solver.ErrInvalidCoefficient) {
		t.Fatalf("expected ErrInvalidCoefficient, got %v", err)
	}
	var reported *reportedError
	if !errors.As(err, &reported) {
		t.Fatalf("expected the error to be marked as reported")
	}
	if out != "" || !strings.Contains(errOut, "coefficient a must not be zero") {
		t.Fatalf("unexpected output %q / %q", out, errOut)
	}
}

func TestSolveCmd_FormatErrors(t *testing.T) {
	isolateConfig(t)

	_, errOut, err := executeCommand(t, nil, "solve", "1", "two", "3")
	var fe *input.FormatError
	if !errors.As(err, &fe) || fe.Name != "b" {
		t.Fatalf("expected FormatError for b, got %v", err)
	}
	if !strings.Contains(errOut, "two is not a valid number for coefficient b") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}

	_, errOut, err = executeCommand(t, nil, "solve", "1", "2")
	if !errors.As(err, &fe) || fe.Count != 2 {
		t.Fatalf("expected count FormatError, got %v", err)
	}
	if !strings.Contains(errOut, "got 2") {
		t.Fatalf("unexpected stderr: %q", errOut)
	}
}

func TestSolveCmd_JSON(t *testing.T) {
	isolateConfig(t)
	out, _, err := executeCommand(t, nil, "solve", "--output", "json", "--verify", "1", "-3", "2")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var res report.Result
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if res.Kind != "two" || len(res.Roots) != 2 || res.Roots[0] != 2 || res.Roots[1] != 1 || len(res.Residuals) != 2 {
		t.Fatalf("unexpected result: %+v", res)
	}

	out, _, err = executeCommand(t, nil, "solve", "-o", "json", "0", "1", "2")
	if !errors.Is(err, solver.ErrInvalidCoefficient) {
		t.Fatalf("expected ErrInvalidCoefficient, got %v", err)
	}
	if err := json.Unmarshal([]byte(out), &res); err != nil || res.ErrorKind != "invalid_coefficient" {
		t.Fatalf("unexpected JSON error document: %s", out)
	}

	out, _, err = executeCommand(t, nil, "solve", "-o", "json", "1e200", "1e200", "1")
	if err != nil {
		t.Fatalf("overflowing coefficients must still produce JSON: %v", err)
	}
	var overflow report.Result
	if err := json.Unmarshal([]byte(out), &overflow); err != nil {
		t.Fatalf("invalid JSON: %v\n%s", err, out)
	}
	if overflow.Kind != "two" || !math.IsInf(float64(overflow.Discriminant), 1) || !math.IsInf(float64(overflow.Roots[0]), 1) {
		t.Fatalf("unexpected overflow result: %s", out)
	}

	if _, _, err := executeCommand(t, nil, "solve", "-o", "xml", "1", "2", "1"); err == nil {
		t.Fatalf("expected error for unknown output format")
	}
}

func TestSolveCmd_Verify(t *testing.T) {
	isolateConfig(t)
	out, _, err := executeCommand(t, nil, "solve", "--verify", "1", "2", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "residual at x = -1: 0") {
		t.Fatalf("expected residual line, got %q", out)
	}
}

func TestSolveCmd_LanguageFlag(t *testing.T) {
	isolateConfig(t)
	out, _, err := executeCommand(t, nil, "--language", "pl", "solve", "4", "4", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "Jeden pierwiastek rzeczywisty: x = -0,5" {
		t.Fatalf("unexpected Polish output: %q", out)
	}

	out, _, err = executeCommand(t, nil, "--language", "pl", "solve", "1", "2,5", "1")
	if err != nil {
		t.Fatalf("decimal comma must be accepted: %v", err)
	}
	if !strings.Contains(out, "x1 = -0,5, x2 = -2") {
		t.Fatalf("unexpected output: %q", out)
	}
}

func TestSolveCmd_ConfigFile(t *testing.T) {
	isolateConfig(t)
	file := filepath.Join(t.TempDir(), "q.yaml")
	if err := os.WriteFile(file, []byte("language: de\nprecision: 2\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	out, _, err := executeCommand(t, nil, "--config", file, "solve", "3", "-1", "-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.TrimSpace(out) != "Zwei reelle Nullstellen: x1 = 0,77, x2 = -0,43" {
		t.Fatalf("unexpected output: %q", out)
	}

	if _, _, err := executeCommand(t, nil, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "solve", "1", "2", "1"); err == nil {
		t.Fatalf("expected error for missing --config file")
	}
}

func TestRoot_PlainInteractive(t *testing.T) {
	isolateConfig(t)
	out, _, err := executeCommand(t, strings.NewReader("1\n-3\n2\n"), "--repeat=false")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "Enter coefficient a: ") || !strings.Contains(out, "Two real roots: x1 = 2, x2 = 1") {
		t.Fatalf("unexpected transcript:\n%s", out)
	}
}

func TestRoot_PlainInteractiveRepeatAndPause(t *testing.T) {
	isolateConfig(t)
	in := "0\n1\n2\ny\n1\n0\n1\nn\n\n"
	out, _, err := executeCommand(t, strings.NewReader(in), "--mode", "plain", "--pause")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, want := range []string{"coefficient a must not be zero", "No real roots.", "Press Enter to exit."} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in transcript:\n%s", want, out)
		}
	}
}

func TestRoot_TUIMode(t *testing.T) {
	isolateConfig(t)
	called := false
	prev := runTUI
	runTUI = func(f report.Formatter) error {
		called = true
		if f.Precision != 4 {
			t.Errorf("expected precision 4, got %d", f.Precision)
		}
		return nil
	}
	defer func() { runTUI = prev }()

	if _, _, err := executeCommand(t, strings.NewReader(""), "--mode", "tui", "--precision", "4"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !called {
		t.Fatalf("expected the TUI to be started")
	}
}

func TestRoot_InvalidMode(t *testing.T) {
	isolateConfig(t)
	_, _, err := executeCommand(t, strings.NewReader(""), "--mode", "gui")
	if err == nil || !strings.Contains(err.Error(), "invalid configuration") {
		t.Fatalf("expected configuration error, got %v", err)
	}
}

func TestWantTUI(t *testing.T) {
	var buf bytes.Buffer
	if !wantTUI(config.ModeTUI, &buf, &buf) {
		t.Fatalf("tui mode must always use the TUI")
	}
	if wantTUI(config.ModePlain, os.Stdin, os.Stdout) {
		t.Fatalf("plain mode must never use the TUI")
	}
	if wantTUI(config.ModeAuto, &buf, &buf) {
		t.Fatalf("auto mode must not use the TUI without a terminal")
	}
}

func TestConfigInitAndShow(t *testing.T) {
	tmp := isolateConfig(t)

	out, _, err := executeCommand(t, nil, "--language", "pl", "config", "init")
	if err != nil {
		t.Fatalf("config init: %v", err)
	}
	path := filepath.Join(tmp, "quadratic", "quadratic.yaml")
	if !strings.Contains(out, path) {
		t.Fatalf("expected written path in output, got %q", out)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read written config: %v", err)
	}
	if !strings.Contains(string(data), "language: pl") {
		t.Fatalf("unexpected config content:\n%s", data)
	}

	if _, errOut, err := executeCommand(t, nil, "config", "init"); err == nil || !strings.Contains(errOut, "--force") {
		t.Fatalf("expected refusal to overwrite, got %v / %q", err, errOut)
	}
	if _, _, err := executeCommand(t, nil, "config", "init", "--force"); err != nil {
		t.Fatalf("config init --force: %v", err)
	}

	out, _, err = executeCommand(t, nil, "config", "show")
	if err != nil {
		t.Fatalf("config show: %v", err)
	}
	if !strings.Contains(out, "language: pl") || !strings.Contains(out, "precision: 6") {
		t.Fatalf("unexpected config show output:\n%s", out)
	}
}

func TestRoot_Version(t *testing.T) {
	isolateConfig(t)
	out, _, err := executeCommand(t, nil, "--version")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.HasPrefix(out, "quadratic version ") {
		t.Fatalf("unexpected version output: %q", out)
	}
}

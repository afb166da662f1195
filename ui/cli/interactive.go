// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/quadratic/internal/config"
	"github.com/toeirei/quadratic/internal/console"
	"github.com/toeirei/quadratic/internal/logging"
	"github.com/toeirei/quadratic/internal/tui"
	"golang.org/x/term"
)

// runTUI is swapped out by tests; the real TUI needs a terminal.
var runTUI = tui.Run

func runInteractive(cmd *cobra.Command, args []string) error {
	in, out := cmd.InOrStdin(), cmd.OutOrStdout()

	if wantTUI(appConfig.Interactive.Mode, in, out) {
		logging.Debugf("starting TUI")
		return runTUI(formatter())
	}

	logging.Debugf("starting plain console session")
	s := &console.Session{
		In:          in,
		Out:         out,
		Format:      formatter(),
		Repeat:      appConfig.Interactive.Repeat,
		PauseOnExit: appConfig.Interactive.PauseOnExit,
	}
	return s.Run(cmd.Context())
}

// wantTUI decides between the TUI and the plain prompt. In auto mode the
// TUI is used only when both ends are terminals.
func wantTUI(mode string, in io.Reader, out io.Writer) bool {
	switch mode {
	case config.ModeTUI:
		return true
	case config.ModePlain:
		return false
	}
	return isTerminal(in) && isTerminal(out)
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface (CLI) for the Quadratic
// application using the Cobra library. It defines the root command, the
// persistent flags shared by all subcommands and the Execute entry point.

package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/toeirei/quadratic/internal/config"
	"github.com/toeirei/quadratic/internal/i18n"
	"github.com/toeirei/quadratic/internal/logging"
	"github.com/toeirei/quadratic/internal/report"
)

var version = "dev"   // this will be set by the linker
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)

// appConfig is the effective configuration of the running command. It is
// populated by setupDefaultServices before any command runs.
var appConfig = config.Default()

// reportedError marks an error whose message was already shown to the user.
// It still makes the process exit non-zero.
type reportedError struct{ err error }

func (e *reportedError) Error() string { return e.err.Error() }
func (e *reportedError) Unwrap() error { return e.err }

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	logging.SetOutput(cmd.ErrOrStderr())
	verbose, _ := cmd.Flags().GetBool("verbose")
	logging.SetDebug(verbose)

	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	cfg, err := config.LoadConfig[config.Config](cmd, config.Defaults(), optionalConfigPath)
	// A missing config file is normal; everything else is fatal.
	if errors.As(err, &viper.ConfigFileNotFoundError{}) {
		logging.Debugf("no config file found, using defaults")
	} else if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if cfg.Language == "" {
		cfg.Language = config.Default().Language
	}
	cfg.Precision = report.ClampPrecision(cfg.Precision)
	appConfig = cfg

	i18n.Init(appConfig.Language)
	logging.Debugf("config: language=%s precision=%d mode=%s", appConfig.Language, appConfig.Precision, appConfig.Interactive.Mode)
	return nil
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only proceed if the user has explicitly set the --config flag.
	if !cmd.Flags().Changed("config") {
		return nil, nil
	}
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, fmt.Errorf("could not read --config flag: %w", err)
	}
	if path == "" {
		return nil, nil
	}
	// Make sure the user-provided file exists to avoid unwanted behavior.
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
	}
	return &path, nil
}

// formatter returns a Formatter for the effective language and precision.
func formatter() report.Formatter {
	return report.NewFormatter(appConfig.Precision)
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	rootCmd := NewRootCmd()
	err := rootCmd.ExecuteContext(ctx)
	if err != nil {
		var reported *reportedError
		if !errors.As(err, &reported) {
			fmt.Fprintln(rootCmd.ErrOrStderr(), "Error:", err)
		}
	}
	return err
}

// NewRootCmd creates and configures a new root cobra command.
// This function is used to create the main application command as well as
// fresh instances for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quadratic",
		Short: "Quadratic finds the real roots of a·x² + b·x + c = 0.",
		Long: `Quadratic solves quadratic equations given their three coefficients
and reports zero, one or two real roots depending on the sign of the
discriminant b² - 4ac.

Running without a subcommand starts an interactive session that prompts
for the coefficients. In a terminal this is a form-based TUI; otherwise a
plain line-by-line prompt is used.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setupDefaultServices,
		Args:              cobra.NoArgs,
		RunE:              runInteractive,
	}

	v, c, d := resolveBuildVersion(nil)
	cmd.Version = compositeVersion(v, c, d)

	// Define flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file")
	cmd.PersistentFlags().String("language", "en", `Output language ("en", "pl", "de")`)
	cmd.PersistentFlags().Int("precision", report.DefaultPrecision, "Maximum number of fraction digits shown")

	cmd.Flags().String("mode", config.ModeAuto, `Interactive mode: "auto", "tui" or "plain"`)
	cmd.Flags().Bool("repeat", true, "Offer to solve another equation after each result (plain mode)")
	cmd.Flags().Bool("pause", false, "Wait for Enter before exiting (plain mode)")

	cmd.AddCommand(newSolveCmd())
	cmd.AddCommand(newConfigCmd())

	return cmd
}

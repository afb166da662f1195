// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/toeirei/quadratic/internal/config"
	"github.com/toeirei/quadratic/internal/i18n"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or create the configuration file",
	}
	cmd.AddCommand(newConfigInitCmd())
	cmd.AddCommand(newConfigShowCmd())
	return cmd
}

// newConfigInitCmd writes the effective configuration (defaults plus any
// flags given) to the user or system config path.
func newConfigInitCmd() *cobra.Command {
	var system, force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with the current settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.GetConfigPath(system)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				msg := i18n.T("cli.config_exists", map[string]any{"Path": path})
				fmt.Fprintln(cmd.ErrOrStderr(), msg)
				return &reportedError{err: errors.New(msg)}
			}

			written, err := config.WriteConfigFile(&appConfig, system)
			if err != nil {
				return fmt.Errorf("could not write config file: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), i18n.T("cli.config_written", map[string]any{"Path": written}))
			return nil
		},
	}
	cmd.Flags().BoolVar(&system, "system", false, "Write the system-wide file instead of the user file")
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing file")
	return cmd
}

func newConfigShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := config.Marshal(&appConfig)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
}

// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

// Package config loads and writes the Quadratic configuration file.
// Values are layered by viper: defaults, config file, environment
// (QUADRATIC_*), then command-line flags.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Interactive modes accepted by interactive.mode.
const (
	ModeAuto  = "auto"
	ModeTUI   = "tui"
	ModePlain = "plain"
)

// Config is the effective application configuration.
type Config struct {
	Language    string      `mapstructure:"language" yaml:"language"`
	Precision   int         `mapstructure:"precision" yaml:"precision"`
	Interactive Interactive `mapstructure:"interactive" yaml:"interactive"`
}

// Interactive holds the settings of the interactive shells.
type Interactive struct {
	Mode        string `mapstructure:"mode" yaml:"mode"`
	Repeat      bool   `mapstructure:"repeat" yaml:"repeat"`
	PauseOnExit bool   `mapstructure:"pause_on_exit" yaml:"pause_on_exit"`
}

// Defaults returns the default values keyed the way viper expects them.
func Defaults() map[string]any {
	return map[string]any{
		"language":                  "en",
		"precision":                 6,
		"interactive.mode":          ModeAuto,
		"interactive.repeat":        true,
		"interactive.pause_on_exit": false,
	}
}

// Default returns a Config populated from Defaults.
func Default() Config {
	return Config{
		Language:  "en",
		Precision: 6,
		Interactive: Interactive{
			Mode:   ModeAuto,
			Repeat: true,
		},
	}
}

// Validate reports settings that cannot be honoured.
func (c Config) Validate() error {
	switch c.Interactive.Mode {
	case ModeAuto, ModeTUI, ModePlain:
	default:
		return fmt.Errorf("invalid interactive.mode %q (want %q, %q or %q)", c.Interactive.Mode, ModeAuto, ModeTUI, ModePlain)
	}
	if c.Precision < 0 {
		return fmt.Errorf("precision must not be negative, got %d", c.Precision)
	}
	return nil
}

// GetConfigPath returns the full path for the configuration file.
func GetConfigPath(system bool) (string, error) {
	var configDir string
	var err error

	if system {
		switch runtime.GOOS {
		case "windows":
			configDir = filepath.Join(os.Getenv("ProgramData"), "Quadratic")
		default: // Linux, macOS, etc.
			configDir = "/etc/quadratic"
		}
	} else {
		configDir, err = os.UserConfigDir()
		if err != nil {
			return "", fmt.Errorf("could not get user config directory: %w", err)
		}
		configDir = filepath.Join(configDir, "quadratic")
	}

	return filepath.Join(configDir, "quadratic.yaml"), nil
}

// LoadConfig resolves a configuration of type T. A missing config file is
// reported as viper.ConfigFileNotFoundError together with a fully populated
// value built from defaults, environment and flags.
func LoadConfig[T any](cmd *cobra.Command, defaults map[string]any, additionalConfigFilePath *string) (T, error) {
	var c T
	v := viper.New()

	// 1. Set defaults
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	// 2. Set up file search paths
	v.SetConfigName("quadratic")
	v.SetConfigType("yaml")

	// 3. An explicit --config file wins over the search paths.
	if additionalConfigFilePath != nil {
		v.SetConfigFile(*additionalConfigFilePath)
	}

	// 4. Add standard config locations
	if userConfigPath, err := GetConfigPath(false); err == nil {
		v.AddConfigPath(filepath.Dir(userConfigPath))
	}
	if systemConfigPath, err := GetConfigPath(true); err == nil {
		v.AddConfigPath(filepath.Dir(systemConfigPath))
	}
	v.AddConfigPath(".")

	// 5. Read in the primary config file.
	var notFound error
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return c, err
		}
		notFound = err
	} else if isEmptyFile(v.ConfigFileUsed()) {
		// A zero-length file carries no settings; treat it like a missing one.
		notFound = viper.ConfigFileNotFoundError{}
	}

	// 6. Read from environment variables
	v.SetEnvPrefix("quadratic")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// 7. Command-line flags, only those the user actually set.
	if cmd != nil {
		if err := bindChangedFlags(v, cmd); err != nil {
			return c, err
		}
	}

	if err := v.Unmarshal(&c); err != nil {
		return c, err
	}

	return c, notFound
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"language":  "language",
	"precision": "precision",
	"mode":      "interactive.mode",
	"repeat":    "interactive.repeat",
	"pause":     "interactive.pause_on_exit",
}

func bindChangedFlags(v *viper.Viper, cmd *cobra.Command) error {
	for name, key := range flagKeys {
		f := cmd.Flags().Lookup(name)
		if f == nil || !f.Changed {
			continue
		}
		if err := v.BindPFlag(key, f); err != nil {
			return fmt.Errorf("bind flag --%s: %w", name, err)
		}
	}
	return nil
}

func isEmptyFile(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Size() == 0
}

// Marshal renders c as YAML.
func Marshal[T any](c *T) ([]byte, error) {
	return yaml.Marshal(c)
}

// WriteConfigFile writes c to the user (or system) config path and returns
// the path written.
func WriteConfigFile[T any](c *T, system bool) (string, error) {
	path, err := GetConfigPath(system)
	if err != nil {
		return "", err
	}

	data, err := Marshal(c)
	if err != nil {
		return "", err
	}

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return "", fmt.Errorf("could not create config directory %s: %w", configDir, err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", err
	}

	return path, nil
}

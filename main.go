// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

// Command-line entrypoint for Quadratic.
//
// Usage:
//
//	go run . [flags]
//	./quadratic [flags]
//	./quadratic solve 1 -3 2
//
// This launches the Quadratic CLI. See --help for options.
package main

import (
	"os"

	"github.com/toeirei/quadratic/ui/cli"
)

func main() {
	// Errors are reported to the user by cli.Execute.
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

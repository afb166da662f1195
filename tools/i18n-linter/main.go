// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter is a tool to check for missing or orphaned translation keys.
// It scans the Go source code for i18n.T() calls and compares them against
// the YAML locale files to ensure consistency.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "active.en.yaml"
	projectRoot   = "."
)

// keyRe finds i18n.T("some.key") calls.
var keyRe = regexp.MustCompile(`i18n\.T\("([^"]+)"`)

func main() {
	fmt.Println("Running i18n linter...")

	usedKeys, err := findUsedKeys(projectRoot)
	if err != nil {
		fmt.Printf("Error finding used keys: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Found %d unique translation keys used in source code.\n", len(usedKeys))

	localeFiles, err := filepath.Glob(filepath.Join(localesDir, "*.yaml"))
	if err != nil {
		fmt.Printf("Error finding locale files: %v\n", err)
		os.Exit(1)
	}

	primaryKeys, err := loadKeysFromLocale(filepath.Join(localesDir, primaryLocale))
	if err != nil {
		fmt.Printf("Error loading primary locale '%s': %v\n", primaryLocale, err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %d keys from primary locale (%s).\n\n", len(primaryKeys), primaryLocale)

	failed := false

	fmt.Println("--- Keys used in code but missing from the primary locale ---")
	if missing := difference(usedKeys, primaryKeys); len(missing) > 0 {
		for _, key := range missing {
			fmt.Printf("  - Missing: %s\n", key)
		}
		failed = true
	} else {
		fmt.Println("  None found.")
	}
	fmt.Println()

	fmt.Println("--- Orphaned keys (in primary locale but not used in code) ---")
	if orphaned := difference(primaryKeys, usedKeys); len(orphaned) > 0 {
		for _, key := range orphaned {
			fmt.Printf("  - Orphaned: %s\n", key)
		}
	} else {
		fmt.Println("  None found.")
	}
	fmt.Println()

	fmt.Println("--- Keys missing from secondary locales ---")
	for _, file := range localeFiles {
		if filepath.Base(file) == primaryLocale {
			continue
		}
		secondaryKeys, err := loadKeysFromLocale(file)
		if err != nil {
			fmt.Printf("  - Error loading %s: %v\n", file, err)
			failed = true
			continue
		}
		missing := difference(primaryKeys, secondaryKeys)
		if len(missing) == 0 {
			fmt.Printf("%s: all keys present.\n", file)
			continue
		}
		fmt.Printf("%s:\n", file)
		for _, key := range missing {
			fmt.Printf("  - Missing: %s\n", key)
		}
		failed = true
	}

	fmt.Println("\n--- Linter Finished ---")
	if failed {
		fmt.Println("Found issues that need to be addressed.")
		os.Exit(1)
	}
	fmt.Println("All translation files are consistent.")
}

// findUsedKeys scans all non-test .go files for i18n.T("key") calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() && (info.Name() == "tools" || strings.HasPrefix(info.Name(), "_")) {
			return filepath.SkipDir
		}
		if info.IsDir() || !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, match := range keyRe.FindAllStringSubmatch(string(content), -1) {
			keys[match[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]interface{}
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into a flat map with dot-separated keys.
func flattenYAML(prefix string, node interface{}, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		for k, val := range v {
			newPrefix := k
			if prefix != "" {
				newPrefix = prefix + "." + k
			}
			flattenYAML(newPrefix, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

// difference returns the sorted keys of a that are not in b.
func difference(a, b map[string]struct{}) []string {
	var out []string
	for k := range a {
		if _, ok := b[k]; !ok {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}

// Copyright (c) 2026 ToeiRei
// Quadratic - real roots of quadratic equations
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides internationalization and localization support for Quadratic.
// It uses the go-i18n library to load and manage translation files, allowing the
// prompts and results to be displayed in multiple languages.
package i18n

import (
	"embed"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"golang.org/x/text/language/display"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
)

// Init initializes the i18n bundle and sets up the localizer for a specific language.
// It parses all embedded YAML files from the 'locales' directory.
func Init(lang string) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, _ := localeFS.ReadFile("locales/" + f.Name())
		b.MustParseMessageFileBytes(data, f.Name())
	}

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	localizer = i18n.NewLocalizer(b, lang)
	current = lang
}

// T is a convenience function to translate a message by its ID.
//
// The optional data map is passed to the message template.
// If the i18n system has not been initialized, it will default to English.
// If a translation for the given ID is not found, it returns the ID itself.
func T(messageID string, data ...map[string]any) string {
	mu.RLock()
	l := localizer
	mu.RUnlock()
	if l == nil {
		Init("en")
		mu.RLock()
		l = localizer
		mu.RUnlock()
	}

	cfg := &i18n.LocalizeConfig{MessageID: messageID}
	if len(data) > 0 {
		cfg.TemplateData = data[0]
	}

	msg, err := l.Localize(cfg)
	if err != nil {
		return messageID
	}
	return msg
}

// SetLang changes the active language of the localizer.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the language the localizer was last initialized with.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// Tag resolves the active language to the best matching bundled locale.
func Tag() language.Tag {
	mu.RLock()
	b, lang := bundle, current
	mu.RUnlock()
	if b == nil {
		return language.English
	}
	matcher := language.NewMatcher(b.LanguageTags())
	tag, _, _ := matcher.Match(language.Make(lang))
	base, _ := tag.Base()
	return language.Make(base.String())
}

// GetAvailableLocales returns the bundled locale codes mapped to their
// display names in their own language.
func GetAvailableLocales() map[string]string {
	out := make(map[string]string)
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		code := localeCode(f.Name())
		if code == "" {
			continue
		}
		tag := language.Make(code)
		out[code] = display.Self.Name(tag)
	}
	return out
}

// Locales returns the sorted list of bundled locale codes.
func Locales() []string {
	var codes []string
	for code := range GetAvailableLocales() {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// localeCode extracts "pl" from "active.pl.yaml".
func localeCode(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) != 3 || parts[0] != "active" {
		return ""
	}
	return parts[1]
}

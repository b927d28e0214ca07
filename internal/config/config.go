// Package config loads analyzer settings for the Glint syntax tooling
// from a glint.toml file, the way the teacher's syntax/package.go loads
// a Typst package manifest — same library, different document.
package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Analyzer holds the settings the CLI and any future language-server
// front end read before running a parse.
type Analyzer struct {
	// MaxParseDepth bounds how deeply nested blocks may be before the
	// parser bails out with a recursion-limit diagnostic instead of
	// recursing further, guarding against stack overflow on
	// pathological or adversarial input. Plumbed through to
	// syntax.ParseWithDepth.
	MaxParseDepth int `toml:"max_parse_depth"`
}

// Default returns the settings used when no glint.toml is present.
func Default() Analyzer {
	return Analyzer{MaxParseDepth: 128}
}

// Load reads and parses a glint.toml file at path. A missing file is not
// an error: it yields Default().
func Load(path string) (Analyzer, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return Analyzer{}, err
	}
	return cfg, nil
}

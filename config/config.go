// Package config loads per-rule linter settings from a TOML file.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dhamidi/cslint/calc"
)

// DefaultName is the config file looked up in the working directory
// when no explicit path is given.
const DefaultName = ".cslint.toml"

// File mirrors the on-disk layout:
//
//	[rules.fixBalance]
//	enabled = true
//	severity = "error"
type File struct {
	Rules map[string]Rule `toml:"rules"`
}

type Rule struct {
	Enabled  *bool  `toml:"enabled"`
	Severity string `toml:"severity"`
}

// Load reads rule options from path. An empty path means DefaultName
// in the working directory; in that case a missing file yields default
// options rather than an error.
func Load(path string) (calc.Options, error) {
	explicit := path != ""
	if path == "" {
		path = DefaultName
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && os.IsNotExist(err) {
			return calc.Options{}, nil
		}
		return calc.Options{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes TOML rule options. Unknown rule IDs are kept; the
// linter ignores entries it has no rule for.
func Parse(data []byte) (calc.Options, error) {
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return calc.Options{}, fmt.Errorf("parse config: %w", err)
	}
	opts := calc.Options{}
	for id, r := range f.Rules {
		opts[calc.RuleID(id)] = calc.RuleOptions{
			Enabled:  r.Enabled,
			Severity: calc.Severity(r.Severity),
		}
	}
	return opts, nil
}

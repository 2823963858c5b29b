// Package config holds the tunable heuristics of the matcher and
// evaluator. The defaults are workable for typical policy documents;
// real-world corpora may need different thresholds, so they load from
// a TOML file rather than living as hard-coded constants.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Matcher thresholds for heading detection.
type Matcher struct {
	// MaxHeadingLen is the maximum rune length of a trimmed line that
	// can still qualify as a heading.
	MaxHeadingLen int `toml:"max_heading_len"`
}

// Evaluator thresholds for content rules.
type Evaluator struct {
	// MinSectionBody is the minimum body character count below which a
	// located section is reported as incomplete.
	MinSectionBody int `toml:"min_section_body"`
}

// Config bundles all threshold tables.
type Config struct {
	Matcher   Matcher   `toml:"matcher"`
	Evaluator Evaluator `toml:"evaluator"`
}

// Default returns the built-in thresholds.
func Default() Config {
	return Config{
		Matcher:   Matcher{MaxHeadingLen: 80},
		Evaluator: Evaluator{MinSectionBody: 20},
	}
}

// Load reads threshold overrides from a TOML file. Fields absent from
// the file keep their defaults; zero or negative values are rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if cfg.Matcher.MaxHeadingLen <= 0 {
		return Config{}, fmt.Errorf("%s: matcher.max_heading_len must be > 0", path)
	}
	if cfg.Evaluator.MinSectionBody <= 0 {
		return Config{}, fmt.Errorf("%s: evaluator.min_section_body must be > 0", path)
	}
	return cfg, nil
}

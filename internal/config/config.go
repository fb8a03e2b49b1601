// Package config loads per-repository defaults for gitstat and validates
// the effective run options.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the optional per-repository defaults file, looked up at the
// repository root.
const FileName = ".gitstat.yaml"

// DefaultThreshold is the message-length cutoff used when neither the config
// file nor the flags set one.
const DefaultThreshold = 10

// ErrConflictingOptions reports mutually exclusive display modes requested
// together. Surfaced before any parsing or git invocation.
var ErrConflictingOptions = errors.New("verbose and concise are mutually exclusive")

// Config holds the per-repository defaults. Flag values override anything
// read from the file.
type Config struct {
	Threshold int    `yaml:"threshold"`
	Concise   bool   `yaml:"concise"`
	CSVPath   string `yaml:"csv_path"`
	Limit     int    `yaml:"limit"`
}

// Default returns the built-in configuration used when no file exists.
func Default() Config {
	return Config{Threshold: DefaultThreshold}
}

// Load reads .gitstat.yaml from repoRoot. A missing file is not an error and
// yields the defaults; an unreadable or syntactically invalid file is.
func Load(repoRoot string) (Config, error) {
	cfg := Default()

	path := filepath.Join(repoRoot, FileName)
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is anchored at the repo root
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing %s: %w", path, err)
	}
	if cfg.Threshold == 0 {
		cfg.Threshold = DefaultThreshold
	}
	return cfg, nil
}

// Options are the effective run options after merging config and flags.
type Options struct {
	Threshold int
	Verbose   bool
	Concise   bool
	CSVPath   string
	Limit     int
}

// Validate rejects option combinations before any work starts.
func (o Options) Validate() error {
	if o.Verbose && o.Concise {
		return ErrConflictingOptions
	}
	if o.Threshold <= 0 {
		return fmt.Errorf("threshold must be positive, got %d", o.Threshold)
	}
	if o.Limit < 0 {
		return fmt.Errorf("limit must be non-negative, got %d", o.Limit)
	}
	return nil
}

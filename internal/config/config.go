// Package config loads the project configuration file: .phpfix.toml, or
// .phpfix.yaml / .phpfix.yml, found by walking up from the working directory.
package config

import (
	"errors"
	"fmt"
	"strings"

	"phpfix/internal/fix"
	"phpfix/internal/ruleset"
)

var (
	// ErrNotFound is returned by Find when no config file exists up to the root.
	ErrNotFound = errors.New("no phpfix config found")
	// ErrInvalid wraps every validation failure; the message names the key.
	ErrInvalid = errors.New("invalid config")
)

// FileNames are the recognised config names, in lookup order.
var FileNames = []string{".phpfix.toml", ".phpfix.yaml", ".phpfix.yml"}

// Config is the effective configuration.
type Config struct {
	// Path of the loaded file; empty when running on defaults.
	Path string
	// Root is the directory holding the file (or the start directory).
	Root       string
	Preset     string
	Whitespace Whitespace
	Rules      ruleset.Rules
	Run        Run
	Cache      Cache
}

type Whitespace struct {
	Indent     string `toml:"indent" yaml:"indent"`
	LineEnding string `toml:"line_ending" yaml:"line_ending"`
}

type Run struct {
	Jobs       int      `toml:"jobs" yaml:"jobs"`
	Risky      bool     `toml:"risky" yaml:"risky"`
	Extensions []string `toml:"extensions" yaml:"extensions"`
	Exclude    []string `toml:"exclude" yaml:"exclude"`
}

type Cache struct {
	Enabled bool   `toml:"enabled" yaml:"enabled"`
	Path    string `toml:"path" yaml:"path"`
}

// Default returns the configuration used when no file is found.
func Default() Config {
	ws := fix.DefaultWhitespaces()
	return Config{
		Preset:     "default",
		Whitespace: Whitespace{Indent: ws.Indent, LineEnding: ws.LineEnding},
		Run: Run{
			Extensions: []string{".php"},
			Exclude:    []string{"vendor"},
		},
		Cache: Cache{Enabled: true, Path: ".phpfix.cache"},
	}
}

// Whitespaces converts the [whitespace] section.
func (c Config) Whitespaces() fix.Whitespaces {
	return fix.Whitespaces{Indent: c.Whitespace.Indent, LineEnding: c.Whitespace.LineEnding}
}

// RuleSet resolves the preset and merges the [rules] table over it.
func (c Config) RuleSet() (ruleset.RuleSet, error) {
	preset := c.Preset
	if preset == "" {
		preset = "default"
	}
	rs, err := ruleset.Preset(preset)
	if err != nil {
		return ruleset.RuleSet{}, err
	}
	return rs.WithRules(c.Rules), nil
}

// lineEndingAliases lets files spell line endings without escapes.
var lineEndingAliases = map[string]string{
	"lf":   "\n",
	"crlf": "\r\n",
}

func (c *Config) normalize() {
	if le, ok := lineEndingAliases[strings.ToLower(c.Whitespace.LineEnding)]; ok {
		c.Whitespace.LineEnding = le
	}
	for i, ext := range c.Run.Extensions {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			c.Run.Extensions[i] = "." + ext
		}
	}
}

// Validate checks every section and names the offending key.
func (c Config) Validate() error {
	ws := c.Whitespaces()
	if err := (fix.Whitespaces{Indent: ws.Indent, LineEnding: "\n"}).Validate(); err != nil {
		return fmt.Errorf("%w: whitespace.indent: %w", ErrInvalid, err)
	}
	if err := ws.Validate(); err != nil {
		return fmt.Errorf("%w: whitespace.line_ending: %w", ErrInvalid, err)
	}
	if c.Run.Jobs < 0 {
		return fmt.Errorf("%w: run.jobs: must be >= 0, got %d", ErrInvalid, c.Run.Jobs)
	}
	if len(c.Run.Extensions) == 0 {
		return fmt.Errorf("%w: run.extensions: must not be empty", ErrInvalid)
	}
	for _, ext := range c.Run.Extensions {
		if ext == "" || ext == "." {
			return fmt.Errorf("%w: run.extensions: empty extension", ErrInvalid)
		}
	}
	if c.Cache.Enabled && strings.TrimSpace(c.Cache.Path) == "" {
		return fmt.Errorf("%w: cache.path: must be set when the cache is enabled", ErrInvalid)
	}
	if _, err := c.RuleSet(); err != nil {
		return fmt.Errorf("%w: preset: %w", ErrInvalid, err)
	}
	return nil
}

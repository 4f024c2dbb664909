package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/goccy/go-yaml"

	"phpfix/internal/ruleset"
)

type fileConfig struct {
	Preset     string     `toml:"preset" yaml:"preset"`
	Whitespace Whitespace `toml:"whitespace" yaml:"whitespace"`
	Run        Run        `toml:"run" yaml:"run"`
	Cache      Cache      `toml:"cache" yaml:"cache"`
}

// Find walks up from startDir and returns the first config file found.
func Find(startDir string) (string, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		for _, name := range FileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			} else if !errors.Is(err, os.ErrNotExist) {
				return "", fmt.Errorf("failed to stat %q: %w", candidate, err)
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ErrNotFound
}

// Discover loads the nearest config above startDir, or the defaults rooted at
// startDir when there is none.
func Discover(startDir string) (Config, error) {
	path, err := Find(startDir)
	if errors.Is(err, ErrNotFound) {
		cfg := Default()
		cfg.Root, _ = filepath.Abs(startDir)
		return cfg, nil
	}
	if err != nil {
		return Config{}, err
	}
	return Load(path)
}

// Load reads a TOML or YAML config by extension. Missing keys keep defaults.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config: %w", err)
	}
	var cfg Config
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		cfg, err = decodeYAML(data)
	default:
		cfg, err = decodeTOML(data)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	cfg.Path = path
	cfg.Root = filepath.Dir(path)
	cfg.normalize()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func fromFile(fc fileConfig, rules ruleset.Rules) Config {
	cfg := Default()
	if fc.Preset != "" {
		cfg.Preset = fc.Preset
	}
	cfg.Whitespace = fc.Whitespace
	cfg.Run = fc.Run
	cfg.Cache = fc.Cache
	cfg.Rules = rules
	return cfg
}

func defaultFileConfig() fileConfig {
	d := Default()
	return fileConfig{Preset: d.Preset, Whitespace: d.Whitespace, Run: d.Run, Cache: d.Cache}
}

func decodeTOML(data []byte) (Config, error) {
	fc := defaultFileConfig()
	if _, err := toml.Decode(string(data), &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse TOML: %w", err)
	}
	rules, err := ruleset.FromTOML(data)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	return fromFile(fc, rules), nil
}

func decodeYAML(data []byte) (Config, error) {
	fc := defaultFileConfig()
	var raw struct {
		Rules yaml.MapSlice `yaml:"rules"`
	}
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	rules := ruleset.Rules{}
	for _, item := range raw.Rules {
		name := fmt.Sprint(item.Key)
		v, err := ruleset.ValueOf(item.Value)
		if err != nil {
			return Config{}, fmt.Errorf("%w: rules.%s: %w", ErrInvalid, name, err)
		}
		rules = rules.Set(name, v)
	}
	return fromFile(fc, rules), nil
}

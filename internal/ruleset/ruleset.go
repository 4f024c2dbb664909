package ruleset

import (
	"errors"
	"fmt"
	"sort"

	"phpfix/internal/fix"
)

var (
	// ErrDuplicateFixer is returned when two custom fixers share a name.
	ErrDuplicateFixer = errors.New("duplicate fixer name")
	// ErrUnknownPreset is returned by Preset.
	ErrUnknownPreset = errors.New("unknown rule set")
)

// Fixers is an ordered list of custom fixers.
type Fixers []fix.Fixer

// Merge concatenates two lists.
func (f Fixers) Merge(other Fixers) Fixers {
	out := make(Fixers, 0, len(f)+len(other))
	out = append(out, f...)
	return append(out, other...)
}

// RuleSet pairs custom fixers with the rule table that configures them.
type RuleSet struct {
	CustomFixers Fixers
	Rules        Rules
}

// New enables every custom fixer by name and then merges rules on top, so
// rules can still disable or configure them.
func New(custom Fixers, rules Rules) RuleSet {
	enable := Rules{}
	for _, f := range custom {
		enable = enable.Set(f.Name(), Bool(true))
	}
	return RuleSet{
		CustomFixers: custom,
		Rules:        enable.Merge(rules),
	}
}

// WithCustomFixers returns a rule set with more custom fixers.
func (rs RuleSet) WithCustomFixers(custom Fixers) RuleSet {
	return New(rs.CustomFixers.Merge(custom), rs.Rules)
}

// WithRules returns a rule set with rules merged on top.
func (rs RuleSet) WithRules(rules Rules) RuleSet {
	return New(rs.CustomFixers, rs.Rules.Merge(rules))
}

// Merge combines two rule sets; other wins on rule conflicts.
func (rs RuleSet) Merge(other RuleSet) RuleSet {
	return New(rs.CustomFixers.Merge(other.CustomFixers), rs.Rules.Merge(other.Rules))
}

// EnabledFixers returns the custom fixers whose rule is enabled.
func (rs RuleSet) EnabledFixers() ([]fix.Fixer, error) {
	seen := make(map[string]struct{}, len(rs.CustomFixers))
	out := make([]fix.Fixer, 0, len(rs.CustomFixers))
	for _, f := range rs.CustomFixers {
		name := f.Name()
		if _, dup := seen[name]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateFixer, name)
		}
		seen[name] = struct{}{}
		if v, ok := rs.Rules.Get(name); ok && v.Enabled() {
			out = append(out, f)
		}
	}
	return out, nil
}

// UnknownRules lists rule names no custom fixer implements, in table order.
// They belong to other tools sharing the table and are ignored here.
func (rs RuleSet) UnknownRules() []string {
	known := make(map[string]struct{}, len(rs.CustomFixers))
	for _, f := range rs.CustomFixers {
		known[f.Name()] = struct{}{}
	}
	var out []string
	for _, n := range rs.Rules.Names() {
		if _, ok := known[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// Default registers both attribute fixers under the Custom/ prefix, on top
// of the built-in rule table.
func Default() RuleSet {
	return New(Fixers{
		fix.Named(fix.NewAttributesNewLine()),
		fix.Named(fix.NewPhpdocAboveAttribute()),
	}, BuiltinRules())
}

// Testing is the rule set used for test suites. Its rules target external
// fixers only.
func Testing() RuleSet {
	return New(nil, NewRules(
		Entry{Name: "php_unit_method_casing", Value: Options(map[string]any{"case": "snake_case"})},
		Entry{Name: "php_unit_test_annotation", Value: Options(map[string]any{"style": "annotation"})},
	))
}

var presets = map[string]func() RuleSet{
	"default": Default,
	"testing": Testing,
}

// Preset returns a named rule set.
func Preset(name string) (RuleSet, error) {
	mk, ok := presets[name]
	if !ok {
		return RuleSet{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return mk(), nil
}

// PresetNames lists the preset names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

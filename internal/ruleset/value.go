package ruleset

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrInvalidValue is returned by ValueOf for values that are neither a bool
// nor an options table.
var ErrInvalidValue = errors.New("rule value must be a bool or a table of options")

// Value is a rule's configuration: either a plain bool or a table of options.
type Value struct {
	options map[string]any
	enabled bool
}

// Bool is an on/off rule value.
func Bool(enabled bool) Value {
	return Value{enabled: enabled}
}

// Options is a rule value carrying options; the rule counts as enabled
// unless the table sets "enabled" to false.
func Options(opts map[string]any) Value {
	cp := make(map[string]any, len(opts))
	for k, v := range opts {
		cp[k] = v
	}
	return Value{options: cp, enabled: true}
}

// ValueOf converts a decoded TOML/YAML value.
func ValueOf(v any) (Value, error) {
	switch x := v.(type) {
	case bool:
		return Bool(x), nil
	case map[string]any:
		return Options(x), nil
	case map[any]any:
		opts := make(map[string]any, len(x))
		for k, val := range x {
			opts[fmt.Sprint(k)] = val
		}
		return Options(opts), nil
	}
	return Value{}, fmt.Errorf("%w, got %T", ErrInvalidValue, v)
}

// IsOptions reports whether the value is an options table.
func (v Value) IsOptions() bool {
	return v.options != nil
}

// Enabled reports whether the rule should run.
func (v Value) Enabled() bool {
	if v.options == nil {
		return v.enabled
	}
	if on, ok := v.options["enabled"].(bool); ok {
		return on
	}
	return true
}

// Option returns a single option.
func (v Value) Option(name string) (any, bool) {
	val, ok := v.options[name]
	return val, ok
}

// OptionsMap returns a copy of the options, or nil for bool values.
func (v Value) OptionsMap() map[string]any {
	if v.options == nil {
		return nil
	}
	cp := make(map[string]any, len(v.options))
	for k, val := range v.options {
		cp[k] = val
	}
	return cp
}

func (v Value) String() string {
	if v.options == nil {
		if v.enabled {
			return "true"
		}
		return "false"
	}
	keys := make([]string, 0, len(v.options))
	for k := range v.options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s = %v", k, v.options[k]))
	}
	return "{ " + strings.Join(parts, ", ") + " }"
}

package ruleset

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// FromTOML reads the [rules] table of a TOML document. Rule order follows
// the document.
func FromTOML(data []byte) (Rules, error) {
	var raw struct {
		Rules map[string]any `toml:"rules"`
	}
	meta, err := toml.Decode(string(data), &raw)
	if err != nil {
		return Rules{}, err
	}

	// порядок правил берём из метаданных: map его теряет
	rules := Rules{}
	for _, key := range meta.Keys() {
		if len(key) != 2 || key[0] != "rules" {
			continue
		}
		v, err := ValueOf(raw.Rules[key[1]])
		if err != nil {
			return Rules{}, fmt.Errorf("rules.%s: %w", key[1], err)
		}
		rules = rules.Set(key[1], v)
	}
	return rules, nil
}

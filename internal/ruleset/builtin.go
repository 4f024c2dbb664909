package ruleset

import (
	_ "embed"
	"fmt"
	"sync"
)

//go:embed builtin_rules.toml
var builtinRulesTOML []byte

// BuiltinRules is the rule table of the default preset. Rules values are
// never mutated in place, so the parsed table is shared.
var BuiltinRules = sync.OnceValue(func() Rules {
	rules, err := FromTOML(builtinRulesTOML)
	if err != nil {
		panic(fmt.Sprintf("ruleset: embedded rule table: %v", err))
	}
	return rules
})

package fix

import (
	"strings"

	"phpfix/internal/source"
	"phpfix/internal/tokens"
)

// CustomPrefix namespaces fixers that are not part of the built-in catalogue.
const CustomPrefix = "Custom/"

type named struct {
	inner Fixer
}

// Named wraps a fixer so that its name becomes
// "Custom/" + lower(inner name) with '\' replaced by '_'.
// Every other call is forwarded unchanged.
func Named(inner Fixer) Fixer {
	return &named{inner: inner}
}

// CustomName computes the name Named gives to a fixer called name.
func CustomName(name string) string {
	return CustomPrefix + strings.ReplaceAll(strings.ToLower(name), `\`, "_")
}

func (n *named) Name() string { return CustomName(n.inner.Name()) }

func (n *named) Definition() Definition { return n.inner.Definition() }

func (n *named) Priority() int { return n.inner.Priority() }

func (n *named) IsRisky() bool { return n.inner.IsRisky() }

func (n *named) IsCandidate(s *tokens.Stream) bool { return n.inner.IsCandidate(s) }

func (n *named) Supports(path string) bool { return n.inner.Supports(path) }

func (n *named) Fix(file *source.File, s *tokens.Stream) { n.inner.Fix(file, s) }

// SetWhitespaces forwards to the wrapped fixer when it is whitespace-aware.
func (n *named) SetWhitespaces(w Whitespaces) {
	if aware, ok := n.inner.(WhitespacesAware); ok {
		aware.SetWhitespaces(w)
	}
}

package fix

import (
	"errors"
	"fmt"

	"phpfix/internal/source"
	"phpfix/internal/tokens"
)

// Fixer is a rewrite rule over one token stream.
//
// Fix never returns an error: malformed structure is left untouched.
// Fixers with a higher Priority run first.
type Fixer interface {
	Name() string
	Definition() Definition
	Priority() int
	IsRisky() bool
	IsCandidate(s *tokens.Stream) bool
	Supports(path string) bool
	Fix(file *source.File, s *tokens.Stream)
}

// ErrInvalidWhitespaces is returned by Whitespaces.Validate.
var ErrInvalidWhitespaces = errors.New("invalid whitespace configuration")

// Whitespaces is the whitespace style used when a fixer synthesizes
// whitespace. Both strings are used verbatim.
type Whitespaces struct {
	Indent     string
	LineEnding string
}

// DefaultWhitespaces is four spaces and "\n".
func DefaultWhitespaces() Whitespaces {
	return Whitespaces{Indent: "    ", LineEnding: "\n"}
}

// Validate accepts a tab, two or four spaces, and "\n" or "\r\n".
func (w Whitespaces) Validate() error {
	switch w.Indent {
	case "  ", "    ", "\t":
	default:
		return fmt.Errorf("%w: indent %q, expected tab or two or four spaces", ErrInvalidWhitespaces, w.Indent)
	}
	switch w.LineEnding {
	case "\n", "\r\n":
	default:
		return fmt.Errorf("%w: line ending %q, expected \"\\n\" or \"\\r\\n\"", ErrInvalidWhitespaces, w.LineEnding)
	}
	return nil
}

// WhitespacesAware is implemented by fixers that synthesize whitespace.
// SetWhitespaces is called once, before the fixer is shared between workers.
type WhitespacesAware interface {
	SetWhitespaces(w Whitespaces)
}

// Configure applies w to every whitespace-aware fixer.
func Configure(fixers []Fixer, w Whitespaces) error {
	if err := w.Validate(); err != nil {
		return err
	}
	for _, f := range fixers {
		if aware, ok := f.(WhitespacesAware); ok {
			aware.SetWhitespaces(w)
		}
	}
	return nil
}

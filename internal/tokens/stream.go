package tokens

import (
	"errors"
	"fmt"

	"phpfix/internal/token"
)

// ErrOutOfRange is the panic payload (wrapped) for indices outside the stream.
var ErrOutOfRange = errors.New("token index out of range")

// Stream is an ordered, mutable token sequence.
type Stream struct {
	toks    []token.Token
	counts  [token.NumKinds]int
	changed bool
}

// New builds a stream over a copy of toks.
func New(toks []token.Token) *Stream {
	s := &Stream{toks: make([]token.Token, len(toks))}
	copy(s.toks, toks)
	for _, t := range s.toks {
		s.count(t, 1)
	}
	return s
}

func (s *Stream) count(t token.Token, delta int) {
	if int(t.Kind) < token.NumKinds {
		s.counts[t.Kind] += delta
	}
}

func (s *Stream) check(i int) {
	if i < 0 || i >= len(s.toks) {
		panic(fmt.Errorf("%w: %d not in [0,%d)", ErrOutOfRange, i, len(s.toks)))
	}
}

// Count returns the number of tokens.
func (s *Stream) Count() int {
	return len(s.toks)
}

// At returns the token at index i.
func (s *Stream) At(i int) token.Token {
	s.check(i)
	return s.toks[i]
}

// IsWhitespace reports whether the token at i is whitespace.
func (s *Stream) IsWhitespace(i int) bool {
	return s.At(i).IsWhitespace()
}

// KindPresent reports in O(1) whether any token of the kind exists.
func (s *Stream) KindPresent(kind token.Kind) bool {
	if int(kind) >= token.NumKinds {
		return false
	}
	return s.counts[kind] > 0
}

// AllKindsPresent reports whether every kind is present.
func (s *Stream) AllKindsPresent(kinds ...token.Kind) bool {
	for _, k := range kinds {
		if !s.KindPresent(k) {
			return false
		}
	}
	return true
}

// IsChanged reports whether a mutation altered the stream since creation or
// the last ClearChanged.
func (s *Stream) IsChanged() bool {
	return s.changed
}

// ClearChanged resets the change flag.
func (s *Stream) ClearChanged() {
	s.changed = false
}

// Tokens returns a copy of the token sequence.
func (s *Stream) Tokens() []token.Token {
	out := make([]token.Token, len(s.toks))
	copy(out, s.toks)
	return out
}

// String renders the stream back to source text.
func (s *Stream) String() string {
	return token.Render(s.toks)
}

// ClearAt removes the token at i; later tokens shift down by one.
func (s *Stream) ClearAt(i int) {
	s.check(i)
	s.count(s.toks[i], -1)
	s.toks = append(s.toks[:i], s.toks[i+1:]...)
	s.changed = true
}

// InsertAt inserts toks before index i. i may equal Count() to append.
func (s *Stream) InsertAt(i int, toks ...token.Token) {
	if i != len(s.toks) {
		s.check(i)
	}
	if len(toks) == 0 {
		return
	}
	grown := make([]token.Token, 0, len(s.toks)+len(toks))
	grown = append(grown, s.toks[:i]...)
	grown = append(grown, toks...)
	grown = append(grown, s.toks[i:]...)
	s.toks = grown
	for _, t := range toks {
		s.count(t, 1)
	}
	s.changed = true
}

// OverrideRange replaces the inclusive range [start, end] with toks. The
// stream is only marked changed when the replacement differs from the range.
func (s *Stream) OverrideRange(start, end int, toks []token.Token) {
	s.check(start)
	s.check(end)
	if end < start {
		panic(fmt.Errorf("%w: range [%d,%d] is inverted", ErrOutOfRange, start, end))
	}
	old := s.toks[start : end+1]
	if sameTokens(old, toks) {
		return
	}
	for _, t := range old {
		s.count(t, -1)
	}
	for _, t := range toks {
		s.count(t, 1)
	}
	replaced := make([]token.Token, 0, len(s.toks)-len(old)+len(toks))
	replaced = append(replaced, s.toks[:start]...)
	replaced = append(replaced, toks...)
	replaced = append(replaced, s.toks[end+1:]...)
	s.toks = replaced
	s.changed = true
}

// EnsureLineBreakAt makes sure a line break starts at i. A whitespace token
// at i that already breaks the line is left as is, any other whitespace token
// there is rewritten to lineEnding+indent, and otherwise a new one is inserted
// before i. It reports whether a token was inserted.
func (s *Stream) EnsureLineBreakAt(i int, lineEnding, indent string) bool {
	if i < len(s.toks) && s.At(i).IsWhitespace() {
		if s.toks[i].HasLineBreak() {
			return false
		}
		s.toks[i] = token.NewWhitespace(lineEnding + indent)
		s.changed = true
		return false
	}
	s.InsertAt(i, token.NewWhitespace(lineEnding+indent))
	return true
}

func sameTokens(a, b []token.Token) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}

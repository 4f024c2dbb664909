package token

import (
	"strings"

	"phpfix/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// New creates a synthesized token with no source location.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// NewWhitespace creates a synthesized whitespace token.
func NewWhitespace(text string) Token {
	return Token{Kind: Whitespace, Text: text}
}

// IsWhitespace reports whether the token is a whitespace run.
func (t Token) IsWhitespace() bool { return t.Kind == Whitespace }

// IsComment reports whether the token is a plain or documentation comment.
func (t Token) IsComment() bool { return t.Kind == Comment || t.Kind == DocComment }

// IsGivenKind reports whether the token's kind is one of kinds.
func (t Token) IsGivenKind(kinds ...Kind) bool {
	for _, k := range kinds {
		if t.Kind == k {
			return true
		}
	}
	return false
}

// HasLineBreak reports whether the token text contains '\n' or '\r'.
func (t Token) HasLineBreak() bool {
	return strings.ContainsAny(t.Text, "\r\n")
}

// Equals compares kind and text; spans are ignored.
func (t Token) Equals(other Token) bool {
	return t.Kind == other.Kind && t.Text == other.Text
}

// Render concatenates token texts.
func Render(toks []Token) string {
	var sb strings.Builder
	for _, t := range toks {
		sb.WriteString(t.Text)
	}
	return sb.String()
}

package fix

import (
	"phpfix/internal/source"
	"phpfix/internal/token"
	"phpfix/internal/tokens"
)

// AttributesNewLine puts every attribute block on its own line: the text
// after a closing '#[...]' moves to the next line, indented like the line
// of the declaration it decorates.
type AttributesNewLine struct {
	ws Whitespaces
}

// NewAttributesNewLine creates the fixer with DefaultWhitespaces.
func NewAttributesNewLine() *AttributesNewLine {
	return &AttributesNewLine{ws: DefaultWhitespaces()}
}

func (f *AttributesNewLine) Name() string { return "attributes_new_line" }

func (f *AttributesNewLine) Priority() int { return 0 }

func (f *AttributesNewLine) IsRisky() bool { return false }

func (f *AttributesNewLine) Supports(string) bool { return true }

func (f *AttributesNewLine) SetWhitespaces(w Whitespaces) { f.ws = w }

func (f *AttributesNewLine) Definition() Definition {
	return NewDefinition("Attributes should be on their own line.",
		WithVersionedSample("<?php\n#[Foo] #[Bar] class Baz\n{\n}\n", 80000),
		WithVersionedSample("<?php\n#[Foo] class Bar\n{\n    #[Baz] public function foo() {}\n}\n", 80000),
		WithVersionedSample("<?php\n#[Foo] class Bar\n{\n    #[Test] public const TEST = 'Test';\n}\n", 80000),
	)
}

func (f *AttributesNewLine) IsCandidate(s *tokens.Stream) bool {
	return s.KindPresent(token.AttributeOpen)
}

func (f *AttributesNewLine) Fix(_ *source.File, s *tokens.Stream) {
	for i := s.Count() - 1; i >= 0; i-- {
		if s.At(i).Kind == token.AttributeClose {
			f.fixNewline(s, i)
		}
	}
}

func (f *AttributesNewLine) fixNewline(s *tokens.Stream, end int) {
	next := end + 1
	if next >= s.Count() {
		return
	}
	if s.IsWhitespace(next) {
		if s.At(next).HasLineBreak() {
			return
		}
		s.ClearAt(next)
	}
	// next == Count() here appends
	s.EnsureLineBreakAt(next, f.ws.LineEnding, indentAfterAttribute(s, end))
}

// indentAfterAttribute is "" when the block ends the meaningful content or
// decorates a class; otherwise the indentation of the current line.
func indentAfterAttribute(s *tokens.Stream, end int) string {
	next, ok := s.NextMeaningful(end)
	if !ok || s.At(next).Kind == token.KwClass {
		return ""
	}
	return s.IndentBefore(next)
}

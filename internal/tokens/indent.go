package tokens

import (
	"strings"

	"phpfix/internal/token"
)

// lineContent are the kinds whose text can carry the line break that
// precedes a token: whitespace proper, inline HTML and literal string text.
var lineContent = token.NewSet(token.Whitespace, token.InlineHTML, token.EncapsedAndWhitespace)

// IndentBefore resolves the indentation of the line holding the token at i:
// the text after the last '\n' of the nearest earlier line-content token that
// contains a '\n'. It returns "" when no such token exists.
func (s *Stream) IndentBefore(i int) string {
	j := i
	for {
		prev, ok := s.PrevOfKind(j, lineContent)
		if !ok {
			return ""
		}
		text := s.toks[prev].Text
		if nl := strings.LastIndexByte(text, '\n'); nl >= 0 {
			return text[nl+1:]
		}
		j = prev
	}
}

package lexer

import (
	"phpfix/internal/token"
)

// scanInlineHTML consumes text up to the next open tag. When the input is
// positioned at an open tag the tag itself is returned.
func (lx *Lexer) scanInlineHTML() token.Token {
	if tok, ok := lx.scanOpenTag(); ok {
		return tok
	}
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '<' && lx.atOpenTag() {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.InlineHTML, start)
}

func (lx *Lexer) atOpenTag() bool {
	if lx.cursor.HasPrefixFold("<?php") || lx.cursor.HasPrefix("<?=") {
		return true
	}
	// короткий тег "<?" только если за ним пробельный символ
	return lx.cursor.HasPrefix("<?") && isSpace(lx.cursor.PeekAt(2))
}

// scanOpenTag lexes '<?php', '<?=' or '<?'. Like PHP, '<?php' and '<?'
// swallow exactly one following whitespace byte ("\r\n" counts as one).
func (lx *Lexer) scanOpenTag() (token.Token, bool) {
	start := lx.cursor.Mark()
	switch {
	case lx.cursor.HasPrefix("<?="):
		lx.cursor.BumpN(3)
		lx.inPHP = true
		return lx.emit(token.OpenTagWithEcho, start), true
	case lx.cursor.HasPrefixFold("<?php"):
		lx.cursor.BumpN(5)
	case lx.cursor.HasPrefix("<?") && isSpace(lx.cursor.PeekAt(2)):
		lx.cursor.BumpN(2)
	default:
		return token.Token{}, false
	}
	lx.eatOneLineBreakOrSpace()
	lx.inPHP = true
	return lx.emit(token.OpenTag, start), true
}

// scanCloseTag lexes '?>' plus a single directly following line break.
func (lx *Lexer) scanCloseTag() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2)
	switch {
	case lx.cursor.HasPrefix("\r\n"):
		lx.cursor.BumpN(2)
	case lx.cursor.Peek() == '\n':
		lx.cursor.Bump()
	}
	lx.inPHP = false
	return lx.emit(token.CloseTag, start)
}

func (lx *Lexer) eatOneLineBreakOrSpace() {
	switch {
	case lx.cursor.HasPrefix("\r\n"):
		lx.cursor.BumpN(2)
	case isSpace(lx.cursor.Peek()):
		lx.cursor.Bump()
	}
}

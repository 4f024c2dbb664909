package lexer

import (
	"phpfix/internal/diag"
	"phpfix/internal/token"
)

// scanWhitespace coalesces spaces, tabs and line breaks into one token.
func (lx *Lexer) scanWhitespace() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && isSpace(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Whitespace, start)
}

// scanLineComment lexes '//' and '#' comments. The terminating line break is
// not part of the comment, and a '?>' ends the comment early.
func (lx *Lexer) scanLineComment() token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || b == '\r' {
			break
		}
		if b == '?' && lx.cursor.PeekAt(1) == '>' {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.Comment, start)
}

// scanBlockComment lexes '/* */' and '/** */'. A doc comment needs
// whitespace after '/**', so '/**/' stays a plain comment.
func (lx *Lexer) scanBlockComment() token.Token {
	start := lx.cursor.Mark()
	kind := token.Comment
	if lx.cursor.HasPrefix("/**") && isSpace(lx.cursor.PeekAt(3)) {
		kind = token.DocComment
	}
	lx.cursor.BumpN(2)
	for !lx.cursor.EOF() {
		if lx.cursor.HasPrefix("*/") {
			lx.cursor.BumpN(2)
			return lx.emit(kind, start)
		}
		lx.cursor.Bump()
	}
	tok := lx.emit(kind, start)
	lx.errLex(diag.LexUnterminatedBlockComment, tok.Span, "unterminated block comment")
	return tok
}

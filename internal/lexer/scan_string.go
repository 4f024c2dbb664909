package lexer

import (
	"phpfix/internal/diag"
	"phpfix/internal/token"
)

// scanString lexes a quoted or backtick string as one opaque token.
// Interpolation is not split out: the fixers never look inside strings.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == quote {
			return lx.emit(token.String, start)
		}
	}
	tok := lx.emit(token.String, start)
	lx.errLex(diag.LexUnterminatedString, tok.Span, "unterminated string literal")
	return tok
}

// isHeredocStart checks for '<<<' LABEL, '<<<"LABEL"' or "<<<'LABEL'"
// followed by a line break.
func (lx *Lexer) isHeredocStart() bool {
	_, _, ok := lx.heredocLabel()
	return ok
}

// heredocLabel returns the label and the header length from '<<<' up to and
// including the line break.
func (lx *Lexer) heredocLabel() (label string, headerLen uint32, ok bool) {
	n := uint32(3)
	for b := lx.cursor.PeekAt(n); b == ' ' || b == '\t'; b = lx.cursor.PeekAt(n) {
		n++
	}
	quote := lx.cursor.PeekAt(n)
	if quote == '\'' || quote == '"' {
		n++
	} else {
		quote = 0
	}
	labelStart := n
	if !isIdentStartByte(lx.cursor.PeekAt(n)) {
		return "", 0, false
	}
	for isIdentContinueByte(lx.cursor.PeekAt(n)) {
		n++
	}
	labelEnd := n
	if quote != 0 {
		if lx.cursor.PeekAt(n) != quote {
			return "", 0, false
		}
		n++
	}
	switch {
	case lx.cursor.PeekAt(n) == '\r' && lx.cursor.PeekAt(n+1) == '\n':
		n += 2
	case lx.cursor.PeekAt(n) == '\n':
		n++
	default:
		return "", 0, false
	}
	off := lx.cursor.Off
	return string(lx.file.Content[off+labelStart : off+labelEnd]), n, true
}

// scanHeredoc consumes the whole heredoc/nowdoc including the closing label.
// The closing label may be indented (PHP 7.3+) and must not be followed by
// a name character.
func (lx *Lexer) scanHeredoc() token.Token {
	start := lx.cursor.Mark()
	label, headerLen, _ := lx.heredocLabel()
	lx.cursor.BumpN(int(headerLen))

	for !lx.cursor.EOF() {
		// начало строки
		for b := lx.cursor.Peek(); b == ' ' || b == '\t'; b = lx.cursor.Peek() {
			lx.cursor.Bump()
		}
		if lx.cursor.HasPrefix(label) {
			after := lx.cursor.PeekAt(uint32(len(label)))
			if !isIdentContinueByte(after) {
				lx.cursor.BumpN(len(label))
				return lx.emit(token.Heredoc, start)
			}
		}
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.cursor.Eat('\n')
	}
	tok := lx.emit(token.Heredoc, start)
	lx.errLex(diag.LexUnterminatedHeredoc, tok.Span, "unterminated heredoc "+label)
	return tok
}

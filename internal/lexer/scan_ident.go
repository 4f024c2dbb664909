package lexer

import (
	"strings"

	"phpfix/internal/token"
)

// scanIdentOrKeyword lexes a name, including qualified names like
// '\Foo\Bar' and 'namespace\Baz'. Keywords are resolved case-insensitively.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Eat('\\')
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '\\' && isIdentStartByte(lx.cursor.PeekAt(1)) {
			lx.cursor.BumpN(2)
			continue
		}
		break
	}
	tok := lx.emit(token.Ident, start)
	if strings.ContainsRune(tok.Text, '\\') {
		return tok
	}
	if kw, ok := token.LookupKeyword(tok.Text); ok && lx.keywordAllowed(kw) {
		tok.Kind = kw
	}
	return tok
}

// keywordAllowed rejects keyword readings that PHP treats as plain names:
// 'Foo::class', '$x->class', 'function list()', 'const CLASS', and 'enum'
// not followed by a name.
func (lx *Lexer) keywordAllowed(kw token.Kind) bool {
	switch lx.prev {
	case token.DoubleColon, token.ObjectOperator, token.KwFunction, token.KwConst:
		return false
	}
	if kw == token.KwEnum {
		return lx.nameFollows()
	}
	return true
}

func (lx *Lexer) nameFollows() bool {
	n := uint32(0)
	for isSpace(lx.cursor.PeekAt(n)) {
		n++
	}
	return n > 0 && isIdentStartByte(lx.cursor.PeekAt(n))
}

// scanVariable lexes '$name'.
func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	for !lx.cursor.EOF() && isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	return lx.emit(token.Variable, start)
}

package lexer

import (
	"phpfix/internal/diag"
	"phpfix/internal/token"
)

// Жадность: сначала 3-символьные, затем 2-символьные, затем 1-символьные.
var ops3 = []string{"===", "!==", "<=>", "**=", "...", "<<=", ">>=", "??=", "?->"}

var ops2 = []string{
	"::", "->", "=>", "==", "!=", "<>", "<=", ">=", "&&", "||", "??",
	"++", "--", "+=", "-=", "*=", "/=", ".=", "%=", "**", "<<", ">>",
	"&=", "|=", "^=",
}

func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()

	for _, op := range ops3 {
		if lx.cursor.HasPrefix(op) {
			lx.cursor.BumpN(3)
			if op == "?->" {
				return lx.emit(token.ObjectOperator, start)
			}
			return lx.emit(token.Operator, start)
		}
	}
	for _, op := range ops2 {
		if lx.cursor.HasPrefix(op) {
			lx.cursor.BumpN(2)
			switch op {
			case "::":
				return lx.emit(token.DoubleColon, start)
			case "->":
				return lx.emit(token.ObjectOperator, start)
			}
			return lx.emit(token.Operator, start)
		}
	}

	// односимвольные
	ch := lx.cursor.Bump()
	switch ch {
	case ';':
		return lx.emit(token.Semicolon, start)
	case ',':
		return lx.emit(token.Comma, start)
	case '(':
		return lx.emit(token.LParen, start)
	case ')':
		return lx.emit(token.RParen, start)
	case '{':
		return lx.emit(token.LBrace, start)
	case '}':
		return lx.emit(token.RBrace, start)
	case '[':
		lx.brackets = append(lx.brackets, false)
		return lx.emit(token.LBracket, start)
	case ']':
		return lx.scanCloseBracket(start)
	}

	tok := lx.emit(token.Operator, start)
	if ch < 0x20 {
		lx.warnLex(diag.LexUnknownChar, tok.Span, "unexpected control character")
	}
	return tok
}

// scanAttributeOpen lexes '#[' and opens an attribute frame.
func (lx *Lexer) scanAttributeOpen() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(2)
	lx.brackets = append(lx.brackets, true)
	return lx.emit(token.AttributeOpen, start)
}

// scanCloseBracket pops the innermost '[' frame; the ']' closing a '#['
// frame is an AttributeClose. A stray ']' stays a plain RBracket.
func (lx *Lexer) scanCloseBracket(start Mark) token.Token {
	n := len(lx.brackets)
	if n == 0 {
		return lx.emit(token.RBracket, start)
	}
	attr := lx.brackets[n-1]
	lx.brackets = lx.brackets[:n-1]
	if attr {
		return lx.emit(token.AttributeClose, start)
	}
	return lx.emit(token.RBracket, start)
}

package lexer

import (
	"phpfix/internal/token"
)

// scanNumber lexes integer and float literals loosely: digits, letters,
// '_' and '.' continue the literal, and an exponent may carry a sign.
// Значение не проверяем, число остаётся непрозрачным текстом.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	seenDot := false
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isDec(b) || b == '_':
			lx.cursor.Bump()
		case b == '.' && !seenDot && isDec(lx.cursor.PeekAt(1)):
			seenDot = true
			lx.cursor.Bump()
		case (b == 'e' || b == 'E') && (lx.cursor.PeekAt(1) == '+' || lx.cursor.PeekAt(1) == '-') && isDec(lx.cursor.PeekAt(2)):
			lx.cursor.BumpN(2)
		case isIdentStartByte(b):
			// 0x1F, 0b101, 1e5
			lx.cursor.Bump()
		default:
			return lx.emit(token.Number, start)
		}
	}
	return lx.emit(token.Number, start)
}

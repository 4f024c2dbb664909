package lexer

import (
	"phpfix/internal/diag"
	"phpfix/internal/source"
	"phpfix/internal/token"
)

// Lexer turns a PHP source file into a lossless token sequence: whitespace
// and comments are ordinary tokens and concatenating every token's Text
// reproduces the file.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	inPHP  bool
	// brackets tracks open '[' frames; true marks a frame opened by '#['
	// so that its ']' becomes token.AttributeClose.
	brackets []bool
	// prev is the kind of the last token that was neither whitespace nor comment.
	prev token.Kind
	done bool
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
		prev:   token.Invalid,
	}
}

// Tokenize lexes the whole file. The result never contains token.EOF.
func Tokenize(file *source.File, opts Options) []token.Token {
	lx := New(file, opts)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		if tok.Kind == token.EOF {
			return toks
		}
		toks = append(toks, tok)
	}
}

// Next возвращает следующий токен, включая пробельные и комментарии.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.cursor.EOF() {
		lx.finish()
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	if !lx.inPHP {
		return lx.scanInlineHTML()
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isSpace(ch):
		tok = lx.scanWhitespace()

	case ch == '#':
		if lx.cursor.PeekAt(1) == '[' {
			tok = lx.scanAttributeOpen()
		} else {
			tok = lx.scanLineComment()
		}

	case ch == '/' && lx.cursor.PeekAt(1) == '/':
		tok = lx.scanLineComment()

	case ch == '/' && lx.cursor.PeekAt(1) == '*':
		tok = lx.scanBlockComment()

	case ch == '?' && lx.cursor.PeekAt(1) == '>':
		tok = lx.scanCloseTag()

	case ch == '$' && isIdentStartByte(lx.cursor.PeekAt(1)):
		tok = lx.scanVariable()

	case isIdentStartByte(ch) || (ch == '\\' && isIdentStartByte(lx.cursor.PeekAt(1))):
		tok = lx.scanIdentOrKeyword()

	case isDec(ch) || (ch == '.' && isDec(lx.cursor.PeekAt(1))):
		tok = lx.scanNumber()

	case ch == '\'' || ch == '"' || ch == '`':
		tok = lx.scanString(ch)

	case lx.cursor.HasPrefix("<<<") && lx.isHeredocStart():
		tok = lx.scanHeredoc()

	default:
		// иначе → scanOperatorOrPunct() (включая скобки, запятые и т.д.)
		tok = lx.scanOperatorOrPunct()
	}

	if !tok.IsWhitespace() && !tok.IsComment() {
		lx.prev = tok.Kind
	}
	return tok
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

// finish reports attribute blocks still open at EOF, once.
func (lx *Lexer) finish() {
	if lx.done {
		return
	}
	lx.done = true
	for _, attr := range lx.brackets {
		if attr {
			lx.errLex(diag.LexUnclosedAttribute, lx.emptySpan(), "attribute block is not closed before end of file")
			return
		}
	}
}

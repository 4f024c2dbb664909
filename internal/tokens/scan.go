package tokens

import (
	"phpfix/internal/token"
)

// meaningful tokens are everything except whitespace and comments.
func meaningful(t token.Token) bool {
	return !t.IsWhitespace() && !t.IsComment()
}

// PrevMeaningful returns the index of the nearest meaningful token strictly
// before i.
func (s *Stream) PrevMeaningful(i int) (int, bool) {
	s.check(i)
	for j := i - 1; j >= 0; j-- {
		if meaningful(s.toks[j]) {
			return j, true
		}
	}
	return -1, false
}

// NextMeaningful returns the index of the nearest meaningful token strictly
// after i.
func (s *Stream) NextMeaningful(i int) (int, bool) {
	s.check(i)
	for j := i + 1; j < len(s.toks); j++ {
		if meaningful(s.toks[j]) {
			return j, true
		}
	}
	return -1, false
}

// PrevOfKind returns the nearest index before i whose kind is in kinds.
func (s *Stream) PrevOfKind(i int, kinds token.Set) (int, bool) {
	s.check(i)
	for j := i - 1; j >= 0; j-- {
		if kinds.Has(s.toks[j].Kind) {
			return j, true
		}
	}
	return -1, false
}

// NextOfKind returns the nearest index after i whose kind is in kinds.
func (s *Stream) NextOfKind(i int, kinds token.Set) (int, bool) {
	s.check(i)
	for j := i + 1; j < len(s.toks); j++ {
		if kinds.Has(s.toks[j].Kind) {
			return j, true
		}
	}
	return -1, false
}

// BlockType names a pair of delimiters.
type BlockType uint8

const (
	BlockParen     BlockType = iota // ( )
	BlockBrace                      // { }
	BlockBracket                    // [ ] outside attributes
	BlockAttribute                  // #[ ]
)

func (b BlockType) delims() (open, closing token.Kind) {
	switch b {
	case BlockParen:
		return token.LParen, token.RParen
	case BlockBrace:
		return token.LBrace, token.RBrace
	case BlockBracket:
		return token.LBracket, token.RBracket
	default:
		return token.AttributeOpen, token.AttributeClose
	}
}

func (b BlockType) String() string {
	switch b {
	case BlockParen:
		return "paren"
	case BlockBrace:
		return "brace"
	case BlockBracket:
		return "bracket"
	case BlockAttribute:
		return "attribute"
	}
	return "block(?)"
}

// MatchingBlockStart finds the opener of the block closed at closeIdx by
// counting nesting depth. It returns false when closeIdx is not a closer of
// the block type or no opener balances it.
func (s *Stream) MatchingBlockStart(block BlockType, closeIdx int) (int, bool) {
	open, closing := block.delims()
	if s.At(closeIdx).Kind != closing {
		return -1, false
	}
	depth := 0
	for j := closeIdx; j >= 0; j-- {
		switch s.toks[j].Kind {
		case closing:
			depth++
		case open:
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return -1, false
}

// MatchingBlockEnd finds the closer of the block opened at openIdx.
func (s *Stream) MatchingBlockEnd(block BlockType, openIdx int) (int, bool) {
	open, closing := block.delims()
	if s.At(openIdx).Kind != open {
		return -1, false
	}
	depth := 0
	for j := openIdx; j < len(s.toks); j++ {
		switch s.toks[j].Kind {
		case open:
			depth++
		case closing:
			depth--
			if depth == 0 {
				return j, true
			}
		}
	}
	return -1, false
}

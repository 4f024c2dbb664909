package fix

import (
	"phpfix/internal/source"
	"phpfix/internal/token"
	"phpfix/internal/tokens"
)

// headerStop ends the backward walk over a class declaration header.
var headerStop = token.NewSet(
	token.KwClass, token.KwInterface, token.KwTrait, token.KwFunction,
	token.CloseTag, token.OpenTag, token.Semicolon,
)

// PhpdocAboveAttribute moves a class doc comment that sits between the
// attributes and the class keyword above the first attribute.
type PhpdocAboveAttribute struct{}

func NewPhpdocAboveAttribute() *PhpdocAboveAttribute {
	return &PhpdocAboveAttribute{}
}

func (f *PhpdocAboveAttribute) Name() string { return "phpdoc_above_attribute" }

// Priority is 1: runs before blank-line cleanup after doc comments.
func (f *PhpdocAboveAttribute) Priority() int { return 1 }

func (f *PhpdocAboveAttribute) IsRisky() bool { return false }

func (f *PhpdocAboveAttribute) Supports(string) bool { return true }

func (f *PhpdocAboveAttribute) Definition() Definition {
	return NewDefinition("PHPDoc comment must be positioned above attributes on class declarations.",
		WithDescription("Only class declarations are handled. The doc comment closest to the class keyword is moved above the first attribute block of the declaration."),
		WithVersionedSample("<?php\n\n#[AsAlias]\n/**\n * This is a class comment.\n */\nclass MyClass {}\n", 80000),
	)
}

func (f *PhpdocAboveAttribute) IsCandidate(s *tokens.Stream) bool {
	return s.AllKindsPresent(token.AttributeOpen, token.DocComment)
}

func (f *PhpdocAboveAttribute) Fix(_ *source.File, s *tokens.Stream) {
	for i := s.Count() - 1; i > 0; i-- {
		if s.At(i).Kind != token.KwClass {
			continue
		}
		start := declarationStart(s, i)

		doc, firstAttr := -1, -1
		for j := start; j < i; j++ {
			switch s.At(j).Kind {
			case token.DocComment:
				doc = j
			case token.AttributeOpen:
				if firstAttr < 0 {
					firstAttr = j
				}
			}
		}
		if doc >= 0 && firstAttr >= 0 && doc > firstAttr {
			moveDocAbove(s, doc, firstAttr, i)
		}
	}
}

// declarationStart walks back from the class keyword over modifiers and
// attribute blocks and returns the first index of the header. Doc comments
// are comments, so PrevMeaningful already steps over them.
func declarationStart(s *tokens.Stream, class int) int {
	idx := class
	for idx > 0 {
		prev, ok := s.PrevMeaningful(idx)
		if !ok {
			break
		}
		tok := s.At(prev)
		switch {
		case headerStop.Has(tok.Kind):
			return idx
		case token.Modifiers.Has(tok.Kind), tok.Kind == token.DocComment:
			idx = prev
		case tok.Kind == token.AttributeClose:
			open, ok := s.MatchingBlockStart(tokens.BlockAttribute, prev)
			if !ok {
				return idx
			}
			idx = open
		default:
			return idx
		}
	}
	return idx
}

// moveDocAbove rewrites
//
//	#[A] #[B] /** doc */ class
//
// into
//
//	/** doc */ #[A] #[B] class
//
// keeping the whitespace that followed each part attached to it.
func moveDocAbove(s *tokens.Stream, doc, firstAttr, class int) {
	lastAttrEnd := doc - 1
	for lastAttrEnd > firstAttr && s.IsWhitespace(lastAttrEnd) {
		lastAttrEnd--
	}
	if s.At(lastAttrEnd).Kind != token.AttributeClose {
		return
	}

	docEnd := doc
	for docEnd+1 < class && s.IsWhitespace(docEnd+1) {
		docEnd++
	}

	moved := make([]token.Token, 0, docEnd-firstAttr+1)
	for j := doc; j <= docEnd; j++ {
		moved = append(moved, s.At(j))
	}
	for j := firstAttr; j < doc; j++ {
		moved = append(moved, s.At(j))
	}
	s.OverrideRange(firstAttr, docEnd, moved)
}

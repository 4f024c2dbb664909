package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input. It never appears in a stream.
	EOF

	// Whitespace is a run of spaces, tabs and line breaks.
	Whitespace
	// InlineHTML is text outside of <?php ... ?>.
	InlineHTML
	// EncapsedAndWhitespace is literal text inside an interpolated string.
	EncapsedAndWhitespace
	// OpenTag is '<?php' (or '<?') including one trailing whitespace byte.
	OpenTag
	// OpenTagWithEcho is '<?='.
	OpenTagWithEcho
	// CloseTag is '?>' including one trailing line break.
	CloseTag

	// Comment is a '//', '#' or '/* */' comment.
	Comment
	// DocComment is a '/** */' documentation comment.
	DocComment

	// AttributeOpen is the '#[' opening an attribute block.
	AttributeOpen
	// AttributeClose is the ']' closing an attribute block.
	AttributeClose

	// Ident is a name: identifier, qualified name or non-declaration keyword.
	Ident
	// Variable is '$name'.
	Variable
	// Number is an integer or float literal.
	Number
	// String is a quoted or backtick string literal.
	String
	// Heredoc is a complete heredoc or nowdoc literal.
	Heredoc

	// Semicolon represents ';'.
	Semicolon // ;
	// Comma represents ','.
	Comma // ,
	// LParen represents '('.
	LParen // (
	// RParen represents ')'.
	RParen // )
	// LBrace represents '{'.
	LBrace // {
	// RBrace represents '}'.
	RBrace // }
	// LBracket represents '['.
	LBracket // [
	// RBracket represents ']' that does not close an attribute.
	RBracket // ]
	// DoubleColon represents '::'.
	DoubleColon // ::
	// ObjectOperator represents '->' and '?->'.
	ObjectOperator // ->
	// Operator is any other operator or punctuation.
	Operator

	// KwAbstract represents the 'abstract' keyword.
	KwAbstract
	// KwClass represents the 'class' keyword.
	KwClass
	// KwConst represents the 'const' keyword.
	KwConst
	// KwEnum represents the 'enum' keyword.
	KwEnum
	// KwExtends represents the 'extends' keyword.
	KwExtends
	// KwFinal represents the 'final' keyword.
	KwFinal
	// KwFn represents the 'fn' keyword.
	KwFn
	// KwFunction represents the 'function' keyword.
	KwFunction
	// KwImplements represents the 'implements' keyword.
	KwImplements
	// KwInterface represents the 'interface' keyword.
	KwInterface
	// KwNamespace represents the 'namespace' keyword.
	KwNamespace
	// KwNew represents the 'new' keyword.
	KwNew
	// KwPrivate represents the 'private' keyword.
	KwPrivate
	// KwProtected represents the 'protected' keyword.
	KwProtected
	// KwPublic represents the 'public' keyword.
	KwPublic
	// KwReadonly represents the 'readonly' keyword.
	KwReadonly
	// KwStatic represents the 'static' keyword.
	KwStatic
	// KwTrait represents the 'trait' keyword.
	KwTrait
	// KwUse represents the 'use' keyword.
	KwUse
	// KwVar represents the 'var' keyword.
	KwVar

	kindCount
)

// NumKinds is the size of the kind vocabulary.
const NumKinds = int(kindCount)

var kindNames = [...]string{
	Invalid:               "Invalid",
	EOF:                   "EOF",
	Whitespace:            "Whitespace",
	InlineHTML:            "InlineHTML",
	EncapsedAndWhitespace: "EncapsedAndWhitespace",
	OpenTag:               "OpenTag",
	OpenTagWithEcho:       "OpenTagWithEcho",
	CloseTag:              "CloseTag",
	Comment:               "Comment",
	DocComment:            "DocComment",
	AttributeOpen:         "AttributeOpen",
	AttributeClose:        "AttributeClose",
	Ident:                 "Ident",
	Variable:              "Variable",
	Number:                "Number",
	String:                "String",
	Heredoc:               "Heredoc",
	Semicolon:             "Semicolon",
	Comma:                 "Comma",
	LParen:                "LParen",
	RParen:                "RParen",
	LBrace:                "LBrace",
	RBrace:                "RBrace",
	LBracket:              "LBracket",
	RBracket:              "RBracket",
	DoubleColon:           "DoubleColon",
	ObjectOperator:        "ObjectOperator",
	Operator:              "Operator",
	KwAbstract:            "KwAbstract",
	KwClass:               "KwClass",
	KwConst:               "KwConst",
	KwEnum:                "KwEnum",
	KwExtends:             "KwExtends",
	KwFinal:               "KwFinal",
	KwFn:                  "KwFn",
	KwFunction:            "KwFunction",
	KwImplements:          "KwImplements",
	KwInterface:           "KwInterface",
	KwNamespace:           "KwNamespace",
	KwNew:                 "KwNew",
	KwPrivate:             "KwPrivate",
	KwProtected:           "KwProtected",
	KwPublic:              "KwPublic",
	KwReadonly:            "KwReadonly",
	KwStatic:              "KwStatic",
	KwTrait:               "KwTrait",
	KwUse:                 "KwUse",
	KwVar:                 "KwVar",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsKeyword reports whether the kind is a keyword the lexer distinguishes.
func (k Kind) IsKeyword() bool {
	return k >= KwAbstract && k < kindCount
}

const setWords = (NumKinds + 63) / 64

// Set is a fixed-size set of kinds.
type Set [setWords]uint64

// NewSet builds a set from the given kinds.
func NewSet(kinds ...Kind) Set {
	var s Set
	for _, k := range kinds {
		s = s.With(k)
	}
	return s
}

// With returns a copy of the set with k added.
func (s Set) With(k Kind) Set {
	s[k/64] |= 1 << (k % 64)
	return s
}

// Has reports whether k is in the set.
func (s Set) Has(k Kind) bool {
	if int(k) >= NumKinds {
		return false
	}
	return s[k/64]&(1<<(k%64)) != 0
}

// Kinds returns the members in ascending order.
func (s Set) Kinds() []Kind {
	out := make([]Kind, 0, 4)
	for k := Kind(0); k < kindCount; k++ {
		if s.Has(k) {
			out = append(out, k)
		}
	}
	return out
}

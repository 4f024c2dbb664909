package token

import "strings"

var keywords = map[string]Kind{
	"abstract":   KwAbstract,
	"class":      KwClass,
	"const":      KwConst,
	"enum":       KwEnum,
	"extends":    KwExtends,
	"final":      KwFinal,
	"fn":         KwFn,
	"function":   KwFunction,
	"implements": KwImplements,
	"interface":  KwInterface,
	"namespace":  KwNamespace,
	"new":        KwNew,
	"private":    KwPrivate,
	"protected":  KwProtected,
	"public":     KwPublic,
	"readonly":   KwReadonly,
	"static":     KwStatic,
	"trait":      KwTrait,
	"use":        KwUse,
	"var":        KwVar,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Keywords are case-insensitive: "CLASS" and "Class" both map to KwClass.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[strings.ToLower(ident)]
	return k, ok
}

// Modifiers are the keywords allowed in front of a class declaration.
var Modifiers = NewSet(KwPublic, KwProtected, KwPrivate, KwAbstract, KwFinal, KwReadonly)

// ClassLike are the keywords that open a class-like declaration.
var ClassLike = NewSet(KwClass, KwInterface, KwTrait, KwEnum)

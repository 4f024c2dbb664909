// Package token defines the lexical vocabulary the fixers operate on.
// Invariants:
//   - Token.Text is the exact source text of the token; concatenating the
//     texts of a file's tokens in order reproduces the file byte for byte.
//   - Whitespace is a first-class token (Kind Whitespace), not trivia: the
//     fixers insert, remove and rewrite it in place.
//   - Token.Span records where the token came from in the original file.
//     Tokens synthesized by a fixer carry a zero Span. A token's position in
//     a stream is its index there and is never stored on the token.
//   - Kinds the fixers do not interpret (operators, strings, heredocs, ...)
//     are opaque content and are only ever copied.
package token

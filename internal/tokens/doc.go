// Package tokens implements the mutable token stream the fixers rewrite.
//
// A Stream is a flat, index-addressable sequence of token.Token values built
// from one source unit. Structure (attribute blocks, declaration headers,
// indentation) is discovered by scanning neighbouring tokens, never by
// building a syntax tree.
//
// Invariants:
//   - Rendering a Stream that was never mutated reproduces the source.
//   - Every mutation invalidates indices at or after the smallest affected
//     index. Fixers therefore walk the stream from Count()-1 toward 0 so that
//     edits at position i never move the positions they have yet to visit.
//   - Indexing outside [0, Count()) is a programming error and panics with
//     an error wrapping ErrOutOfRange.
//   - A Stream is owned by one goroutine at a time.
package tokens

// Package testkit holds invariant checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"phpfix/internal/source"
	"phpfix/internal/token"
)

// CheckSpanInvariants runs the tokenizer invariants on a lexed file:
// 1) every token is non-empty and its span points into sf
// 2) spans are contiguous, starting at 0 and ending at len(sf.Content)
// 3) each token's text equals the bytes its span covers
func CheckSpanInvariants(toks []token.Token, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var off uint32
	for i, tok := range toks {
		sp := tok.Span
		if tok.Text == "" || sp.End <= sp.Start {
			return fmt.Errorf("token %d (%v) is empty: %v", i, tok.Kind, sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("token %d span file mismatch: got=%d want=%d", i, sp.File, sf.ID)
		}
		if sp.Start != off {
			return fmt.Errorf("token %d starts at %d, previous ended at %d", i, sp.Start, off)
		}
		if sp.End > lenContent {
			return fmt.Errorf("token %d span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if got := string(sf.Content[sp.Start:sp.End]); got != tok.Text {
			return fmt.Errorf("token %d text %q differs from source %q", i, tok.Text, got)
		}
		off = sp.End
	}
	if off != lenContent {
		return fmt.Errorf("tokens cover %d of %d bytes", off, lenContent)
	}
	return nil
}

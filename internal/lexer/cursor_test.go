package lexer

import (
	"testing"

	"phpfix/internal/source"
)

func newTestCursor(content string) Cursor {
	fs := source.NewFileSet()
	id := fs.AddVirtual("c.php", []byte(content))
	return NewCursor(fs.Get(id))
}

func TestCursorPeekAndBump(t *testing.T) {
	c := newTestCursor("ab")
	if c.Peek() != 'a' || c.PeekAt(1) != 'b' || c.PeekAt(2) != 0 {
		t.Fatalf("unexpected peeks")
	}
	if b0, b1, ok := c.Peek2(); !ok || b0 != 'a' || b1 != 'b' {
		t.Fatalf("Peek2 = %q %q %v", b0, b1, ok)
	}
	if c.Bump() != 'a' || c.Bump() != 'b' || !c.EOF() || c.Bump() != 0 {
		t.Fatalf("Bump sequence broken")
	}
}

func TestCursorPrefixes(t *testing.T) {
	c := newTestCursor("<?PHP echo")
	if !c.HasPrefixFold("<?php") {
		t.Fatal("HasPrefixFold must ignore ASCII case")
	}
	if c.HasPrefix("<?php") {
		t.Fatal("HasPrefix must be case sensitive")
	}
	if c.HasPrefix("<?PHP echo more") {
		t.Fatal("HasPrefix past the limit must be false")
	}
}

func TestCursorMarkResetSpan(t *testing.T) {
	c := newTestCursor("hello")
	m := c.Mark()
	c.BumpN(3)
	sp := c.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 {
		t.Fatalf("SpanFrom = %v", sp)
	}
	c.Reset(m)
	if !c.Eat('h') || c.Eat('x') {
		t.Fatalf("Eat after Reset misbehaves")
	}
	c.BumpN(100)
	if !c.EOF() {
		t.Fatal("BumpN must stop at the limit")
	}
}

package tokens_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"phpfix/internal/lexer"
	"phpfix/internal/source"
	"phpfix/internal/token"
	"phpfix/internal/tokens"
)

func lexStream(t *testing.T, src string) *tokens.Stream {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(src))
	return tokens.New(lexer.Tokenize(fs.Get(id), lexer.Options{}))
}

func texts(s *tokens.Stream) []string {
	out := make([]string, 0, s.Count())
	for _, tok := range s.Tokens() {
		out = append(out, tok.Text)
	}
	return out
}

func expectPanicOutOfRange(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, tokens.ErrOutOfRange) {
			t.Fatalf("expected ErrOutOfRange panic, got %v", r)
		}
	}()
	fn()
}

func TestStreamRendersSource(t *testing.T) {
	src := "<?php\n#[A]\nclass B {}\n"
	s := lexStream(t, src)
	if s.String() != src {
		t.Fatalf("String() = %q", s.String())
	}
	if s.IsChanged() {
		t.Fatal("fresh stream must not be changed")
	}
}

func TestAtOutOfRangePanics(t *testing.T) {
	s := lexStream(t, "<?php $a;")
	expectPanicOutOfRange(t, func() { s.At(-1) })
	expectPanicOutOfRange(t, func() { s.At(s.Count()) })
	expectPanicOutOfRange(t, func() { s.ClearAt(s.Count()) })
	expectPanicOutOfRange(t, func() { s.InsertAt(s.Count() + 1) })
	expectPanicOutOfRange(t, func() { s.OverrideRange(2, 1, nil) })
}

func TestKindPresentTracksMutations(t *testing.T) {
	s := lexStream(t, "<?php #[A] class B {}")
	if !s.KindPresent(token.AttributeOpen) || s.KindPresent(token.DocComment) {
		t.Fatal("unexpected initial kinds")
	}
	s.InsertAt(1, token.New(token.DocComment, "/** d */"))
	if !s.AllKindsPresent(token.AttributeOpen, token.DocComment) {
		t.Fatal("inserted doc comment not counted")
	}
	s.ClearAt(1)
	if s.KindPresent(token.DocComment) {
		t.Fatal("removed doc comment still counted")
	}
	open, ok := s.NextOfKind(0, token.NewSet(token.AttributeOpen))
	if !ok {
		t.Fatal("attribute open not found")
	}
	end, _ := s.MatchingBlockEnd(tokens.BlockAttribute, open)
	s.OverrideRange(open, end, nil)
	if s.KindPresent(token.AttributeOpen) || s.KindPresent(token.AttributeClose) {
		t.Fatal("overridden attribute still counted")
	}
	if s.KindPresent(token.Kind(255)) {
		t.Fatal("out-of-vocabulary kind reported present")
	}
}

func TestClearAtShiftsDown(t *testing.T) {
	s := lexStream(t, "<?php $a ;")
	s.ClearAt(2)
	if diff := cmp.Diff([]string{"<?php ", "$a", ";"}, texts(s)); diff != "" {
		t.Fatalf("tokens mismatch (-want +got):\n%s", diff)
	}
	if !s.IsChanged() {
		t.Fatal("ClearAt must mark the stream changed")
	}
}

func TestInsertAtAppend(t *testing.T) {
	s := lexStream(t, "<?php $a;")
	s.InsertAt(s.Count(), token.NewWhitespace("\n"))
	if s.String() != "<?php $a;\n" {
		t.Fatalf("String() = %q", s.String())
	}
}

func TestOverrideRangeSameTokensIsNoop(t *testing.T) {
	s := lexStream(t, "<?php #[A] class B {}")
	s.OverrideRange(1, 3, s.Tokens()[1:4])
	if s.IsChanged() {
		t.Fatal("identical override must not mark the stream changed")
	}
	s.OverrideRange(1, 3, []token.Token{token.New(token.Ident, "X")})
	if s.String() != "<?php X class B {}" || !s.IsChanged() {
		t.Fatalf("override result %q changed=%v", s.String(), s.IsChanged())
	}
}

func TestEnsureLineBreakAt(t *testing.T) {
	s := lexStream(t, "<?php #[A]class B {}")
	close, _ := s.NextOfKind(0, token.NewSet(token.AttributeClose))

	if !s.EnsureLineBreakAt(close+1, "\n", "  ") {
		t.Fatal("expected insertion before the class keyword")
	}
	want := "<?php #[A]\n  class B {}"
	if s.String() != want {
		t.Fatalf("String() = %q, want %q", s.String(), want)
	}

	s.ClearChanged()
	if s.EnsureLineBreakAt(close+1, "\n", "  ") || s.IsChanged() {
		t.Fatal("second call must be a no-op")
	}

	if s.EnsureLineBreakAt(close+1, "\r\n", "") || s.IsChanged() {
		t.Fatal("whitespace that already breaks the line must stay")
	}
	if s.String() != want {
		t.Fatalf("String() = %q, want %q", s.String(), want)
	}
}

func TestEnsureLineBreakAtKeepsBlankLines(t *testing.T) {
	const src = "<?php #[A]\n\n    class B {}"
	s := lexStream(t, src)
	close, _ := s.NextOfKind(0, token.NewSet(token.AttributeClose))

	if s.EnsureLineBreakAt(close+1, "\n", "") || s.IsChanged() {
		t.Fatal("expected no change")
	}
	if s.String() != src {
		t.Fatalf("String() = %q, want %q", s.String(), src)
	}
}

func TestEnsureLineBreakAtRewritesSameLineWhitespace(t *testing.T) {
	s := lexStream(t, "<?php #[A]   class B {}")
	close, _ := s.NextOfKind(0, token.NewSet(token.AttributeClose))

	if s.EnsureLineBreakAt(close+1, "\r\n", "\t") {
		t.Fatal("existing whitespace must be rewritten, not inserted")
	}
	if got := s.String(); got != "<?php #[A]\r\n\tclass B {}" || !s.IsChanged() {
		t.Fatalf("String() = %q changed=%v", got, s.IsChanged())
	}
}

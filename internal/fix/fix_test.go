package fix_test

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"phpfix/internal/fix"
	"phpfix/internal/lexer"
	"phpfix/internal/source"
	"phpfix/internal/tokens"
)

func lexStream(t *testing.T, src string) (*source.File, *tokens.Stream) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(src))
	file := fs.Get(id)
	return file, tokens.New(lexer.Tokenize(file, lexer.Options{}))
}

// run applies the fixers the way the driver does and returns the new source.
func run(t *testing.T, src string, fixers ...fix.Fixer) (string, *fix.ApplyResult) {
	t.Helper()
	file, s := lexStream(t, src)
	res := fix.Apply(file, s, fixers, fix.ApplyOptions{})
	return s.String(), res
}

func expectFixed(t *testing.T, f fix.Fixer, in, want string) {
	t.Helper()
	got, _ := run(t, in, f)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("%s mismatch (-want +got):\n%s", f.Name(), diff)
	}
}

// nonWhitespace returns the sorted texts of all non-whitespace tokens.
func nonWhitespace(t *testing.T, src string) []string {
	t.Helper()
	_, s := lexStream(t, src)
	out := make([]string, 0, s.Count())
	for _, tok := range s.Tokens() {
		if !tok.IsWhitespace() {
			out = append(out, tok.Text)
		}
	}
	sort.Strings(out)
	return out
}

var corpus = []string{
	"<?php\n#[Foo] #[Bar] class Baz {}\n",
	"<?php\n#[Foo] class Bar\n{\n    #[Baz] public function foo() {}\n}\n",
	"<?php\n#[Foo] class Bar\n{\n    #[Test] public const TEST = 'Test';\n}\n",
	"<?php\n\n#[AsAlias]\n/**\n * This is a class comment.\n */\nclass MyClass {}\n",
	"<?php\n#[A]   /** d */   final class C {}\n",
	"<?php\n#[A(['x' => [1, 2]])]\n/** d */\n#[B] readonly class C {}\n",
	"<?php\r\n#[A] /** d */ class C {}\r\n",
	"<?php\nfunction f(#[SensitiveParameter] $p) {}\n",
	"<?php\n/** only a doc */\nclass D {}\n",
	"<?php\n#[A] // note\nclass B {}\n",
	"<?php #[A]",
	"<?php\n$x = Foo::class; #[A] /** d */ class E {}\n",
}

func allFixers() []fix.Fixer {
	return []fix.Fixer{
		fix.Named(fix.NewAttributesNewLine()),
		fix.Named(fix.NewPhpdocAboveAttribute()),
	}
}

func TestFixersAreIdempotent(t *testing.T) {
	for _, src := range corpus {
		once, _ := run(t, src, allFixers()...)
		twice, res := run(t, once, allFixers()...)
		if once != twice {
			t.Fatalf("second pass changed %q:\nonce  %q\ntwice %q", src, once, twice)
		}
		if res.Changed() {
			t.Fatalf("second pass reported changes for %q: %v", src, res.AppliedNames())
		}
	}
}

func TestFixersPreserveContent(t *testing.T) {
	for _, src := range corpus {
		out, _ := run(t, src, allFixers()...)
		if diff := cmp.Diff(nonWhitespace(t, src), nonWhitespace(t, out)); diff != "" {
			t.Fatalf("non-whitespace content changed for %q (-want +got):\n%s", src, diff)
		}
	}
}

func TestBothFixersTogether(t *testing.T) {
	got, res := run(t, "<?php\n#[A] /** d */ class B {}\n", allFixers()...)
	want := "<?php\n/** d */ #[A]\nclass B {}\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
	wantApplied := []string{"Custom/phpdoc_above_attribute", "Custom/attributes_new_line"}
	if diff := cmp.Diff(wantApplied, res.AppliedNames()); diff != "" {
		t.Fatalf("applied order mismatch (-want +got):\n%s", diff)
	}
}

func TestDocCommentWithoutAttributeIsUntouched(t *testing.T) {
	src := "<?php\n/**\n * Doc.\n */\nclass D\n{\n    /** m */\n    public function m() {}\n}\n"
	got, res := run(t, src, allFixers()...)
	if got != src || res.Changed() {
		t.Fatalf("expected no change, got %q", got)
	}
	for _, sk := range res.Skipped {
		if sk.Reason != fix.ReasonNotCandidate {
			t.Fatalf("unexpected skip reason %q for %s", sk.Reason, sk.Name)
		}
	}
}

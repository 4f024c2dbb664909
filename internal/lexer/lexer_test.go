package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"phpfix/internal/diag"
	"phpfix/internal/lexer"
	"phpfix/internal/source"
	"phpfix/internal/testkit"
	"phpfix/internal/token"
)

// testReporter собирает все диагностики, полученные от лексера
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string, notes []diag.Note) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
		Notes:    notes,
	})
}

func (r *testReporter) codes() []diag.Code {
	out := make([]diag.Code, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		out = append(out, d.Code)
	}
	return out
}

func lex(t *testing.T, input string) ([]token.Token, *testReporter) {
	t.Helper()
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.php", []byte(input))
	reporter := &testReporter{}
	file := fs.Get(fileID)
	toks := lexer.Tokenize(file, lexer.Options{Reporter: reporter})
	if got := token.Render(toks); got != input {
		t.Fatalf("tokens do not round-trip:\nwant %q\ngot  %q", input, got)
	}
	if err := testkit.CheckSpanInvariants(toks, file); err != nil {
		t.Fatalf("span invariants: %v", err)
	}
	return toks, reporter
}

// meaningful returns "Kind:Text" for every non-whitespace token.
func meaningful(toks []token.Token) []string {
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		if tok.IsWhitespace() {
			continue
		}
		out = append(out, fmt.Sprintf("%s:%s", tok.Kind, tok.Text))
	}
	return out
}

func expectTokens(t *testing.T, input string, want ...string) {
	t.Helper()
	toks, rep := lex(t, input)
	if len(rep.diagnostics) != 0 {
		t.Fatalf("unexpected diagnostics for %q: %v", input, rep.codes())
	}
	got := meaningful(toks)
	if strings.Join(got, " | ") != strings.Join(want, " | ") {
		t.Fatalf("tokens for %q:\nwant %v\ngot  %v", input, want, got)
	}
}

func TestOpenTagSwallowsOneNewline(t *testing.T) {
	toks, _ := lex(t, "<?php\n\nclass A {}\n")
	if toks[0].Kind != token.OpenTag || toks[0].Text != "<?php\n" {
		t.Fatalf("open tag = %v %q", toks[0].Kind, toks[0].Text)
	}
	if toks[1].Kind != token.Whitespace || toks[1].Text != "\n" {
		t.Fatalf("expected remaining newline as whitespace, got %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestAttributeBrackets(t *testing.T) {
	expectTokens(t, "<?php #[Foo([1, 2]), Bar] class Baz {}",
		"OpenTag:<?php ",
		"AttributeOpen:#[", "Ident:Foo", "LParen:(", "LBracket:[", "Number:1", "Comma:,", "Number:2",
		"RBracket:]", "RParen:)", "Comma:,", "Ident:Bar", "AttributeClose:]",
		"KwClass:class", "Ident:Baz", "LBrace:{", "RBrace:}",
	)
}

func TestCommentsAndDocComments(t *testing.T) {
	expectTokens(t, "<?php\n/** doc */\n/**/\n/* c */\n// line\n# hash\n",
		"OpenTag:<?php\n",
		"DocComment:/** doc */",
		"Comment:/**/",
		"Comment:/* c */",
		"Comment:// line",
		"Comment:# hash",
	)
}

func TestLineCommentStopsAtCloseTag(t *testing.T) {
	expectTokens(t, "<?php // hi ?>\n<b>",
		"OpenTag:<?php ",
		"Comment:// hi ",
		"CloseTag:?>\n",
		"InlineHTML:<b>",
	)
}

func TestClassConstantIsNotDeclaration(t *testing.T) {
	expectTokens(t, "<?php Foo::class; $x->class; function class() {}",
		"OpenTag:<?php ",
		"Ident:Foo", "DoubleColon:::", "Ident:class", "Semicolon:;",
		"Variable:$x", "ObjectOperator:->", "Ident:class", "Semicolon:;",
		"KwFunction:function", "Ident:class", "LParen:(", "RParen:)", "LBrace:{", "RBrace:}",
	)
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	expectTokens(t, "<?php FINAL Class A {}",
		"OpenTag:<?php ", "KwFinal:FINAL", "KwClass:Class", "Ident:A", "LBrace:{", "RBrace:}",
	)
}

func TestEnumIsContextual(t *testing.T) {
	expectTokens(t, "<?php enum Suit {} enum(1);",
		"OpenTag:<?php ",
		"KwEnum:enum", "Ident:Suit", "LBrace:{", "RBrace:}",
		"Ident:enum", "LParen:(", "Number:1", "RParen:)", "Semicolon:;",
	)
}

func TestQualifiedNames(t *testing.T) {
	expectTokens(t, `<?php #[\Foo\Bar] new \Baz\Qux();`,
		"OpenTag:<?php ",
		`AttributeOpen:#[`, `Ident:\Foo\Bar`, `AttributeClose:]`,
		"KwNew:new", `Ident:\Baz\Qux`, "LParen:(", "RParen:)", "Semicolon:;",
	)
}

func TestStringsAreOpaque(t *testing.T) {
	expectTokens(t, `<?php $a = "x ] #[ \" y"; $b = '\'';`,
		"OpenTag:<?php ",
		"Variable:$a", "Operator:=", `String:"x ] #[ \" y"`, "Semicolon:;",
		"Variable:$b", "Operator:=", `String:'\''`, "Semicolon:;",
	)
}

func TestHeredoc(t *testing.T) {
	src := "<?php\n$x = <<<EOT\n  class A {}\n  EOT;\n$y = <<<'N'\n#[X]\nN;\n"
	expectTokens(t, src,
		"OpenTag:<?php\n",
		"Variable:$x", "Operator:=", "Heredoc:<<<EOT\n  class A {}\n  EOT", "Semicolon:;",
		"Variable:$y", "Operator:=", "Heredoc:<<<'N'\n#[X]\nN", "Semicolon:;",
	)
}

func TestOperators(t *testing.T) {
	expectTokens(t, "<?php $a?->b ?? $c <=> 1.5e-3 ... [];",
		"OpenTag:<?php ",
		"Variable:$a", "ObjectOperator:?->", "Ident:b", "Operator:??", "Variable:$c",
		"Operator:<=>", "Number:1.5e-3", "Operator:...", "LBracket:[", "RBracket:]", "Semicolon:;",
	)
}

func TestInlineHTMLAndEchoTag(t *testing.T) {
	expectTokens(t, "<p><?= $x ?></p>",
		"InlineHTML:<p>", "OpenTagWithEcho:<?=", "Variable:$x", "CloseTag:?>", "InlineHTML:</p>",
	)
}

func TestWhitespaceIsCoalesced(t *testing.T) {
	toks, _ := lex(t, "<?php\n\t \r\n  $a;")
	if toks[1].Kind != token.Whitespace || toks[1].Text != "\t \r\n  " {
		t.Fatalf("whitespace run = %v %q", toks[1].Kind, toks[1].Text)
	}
}

func TestCRLFAfterOpenTag(t *testing.T) {
	toks, _ := lex(t, "<?php\r\n#[A]\r\nclass B {}")
	if toks[0].Text != "<?php\r\n" {
		t.Fatalf("open tag must swallow CRLF as one line break, got %q", toks[0].Text)
	}
}

func TestDiagnostics(t *testing.T) {
	cases := []struct {
		input string
		want  diag.Code
	}{
		{"<?php /* open", diag.LexUnterminatedBlockComment},
		{"<?php 'open", diag.LexUnterminatedString},
		{"<?php <<<EOT\nbody\n", diag.LexUnterminatedHeredoc},
		{"<?php #[Foo class A {}", diag.LexUnclosedAttribute},
		{"<?php \x00", diag.LexUnknownChar},
	}
	for _, tc := range cases {
		_, rep := lex(t, tc.input)
		codes := rep.codes()
		if len(codes) != 1 || codes[0] != tc.want {
			t.Errorf("%q: diagnostics %v, want [%v]", tc.input, codes, tc.want)
		}
	}
}

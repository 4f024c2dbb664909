package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"phpfix/internal/diag"
	"phpfix/internal/source"
)

func unterminatedString(t *testing.T) (*diag.Bag, *source.FileSet) {
	t.Helper()
	fs := source.NewFileSet()
	content := []byte("<?php\n$a = 1;\n$s = 'open\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.php", content)

	bag := diag.NewBag(10)
	d := diag.New(diag.SevError, diag.LexUnterminatedString,
		source.Span{File: fileID, Start: 19, End: uint32(len(content))},
		"unterminated string literal",
	)
	d.Notes = []diag.Note{{Span: source.Span{File: fileID, Start: 19, End: 20}, Msg: "string starts here"}}
	bag.Add(d)
	return bag, fs
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	bag, fs := unterminatedString(t)

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.php:3:6"},
		{"relative", PathModeRelative, "\nsrc/test.php:3:6"},
		{"basename", PathModeBasename, "\ntest.php:3:6"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			opts := PrettyOpts{PathMode: tt.mode, BaseDir: "/home/user/project"}
			if err := Pretty(&buf, bag, fs, opts); err != nil {
				t.Fatalf("Pretty: %v", err)
			}
			// ведущий перевод строки упрощает проверку начала пути
			output := "\n" + buf.String()
			if !strings.Contains(output, tt.contains) {
				t.Errorf("expected output to contain %q, got:\n%s", tt.contains, output)
			}
			if !strings.Contains(output, "ERROR LEX1002: unterminated string literal") {
				t.Errorf("missing header, got:\n%s", output)
			}
		})
	}
}

func TestPrettyContextAndCaret(t *testing.T) {
	bag, fs := unterminatedString(t)
	var buf bytes.Buffer
	if err := Pretty(&buf, bag, fs, PrettyOpts{Context: 1, PathMode: PathModeBasename, ShowNotes: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := "test.php:3:6: ERROR LEX1002: unterminated string literal\n" +
		" 2 | $a = 1;\n" +
		" 3 | $s = 'open\n" +
		"   |      ^~~~~\n" +
		"  note: test.php:3:6: string starts here\n"
	if got := buf.String(); got != want {
		t.Fatalf("unexpected output:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyColor(t *testing.T) {
	bag, fs := unterminatedString(t)
	var plain, colored bytes.Buffer
	if err := Pretty(&plain, bag, fs, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if err := Pretty(&colored, bag, fs, PrettyOpts{Color: true}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Errorf("plain output contains escape codes")
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Errorf("colored output has no escape codes")
	}
}

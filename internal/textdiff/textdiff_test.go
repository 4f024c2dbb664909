package textdiff

import (
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestUnifiedEqual(t *testing.T) {
	if got := Unified("a.php", "x\n", "x\n", Options{}); got != "" {
		t.Fatalf("expected empty diff, got %q", got)
	}
}

func TestUnifiedSingleHunk(t *testing.T) {
	before := "<?php\n#[A] class B {}\n"
	after := "<?php\n#[A]\nclass B {}\n"
	want := strings.Join([]string{
		"--- a/src/B.php",
		"+++ b/src/B.php",
		"@@ -1,2 +1,3 @@",
		" <?php",
		"-#[A] class B {}",
		"+#[A]",
		"+class B {}",
		"",
	}, "\n")
	if diff := cmp.Diff(want, Unified("src/B.php", before, after, Options{})); diff != "" {
		t.Fatalf("diff mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifiedSeparateHunks(t *testing.T) {
	var before, after []string
	for i := 1; i <= 10; i++ {
		before = append(before, fmt.Sprintf("l%d", i))
		after = append(after, fmt.Sprintf("l%d", i))
	}
	after[1], after[8] = "L2", "L9"
	got := Unified("f", strings.Join(before, "\n")+"\n", strings.Join(after, "\n")+"\n", Options{Context: 1})
	want := strings.Join([]string{
		"--- a/f",
		"+++ b/f",
		"@@ -1,3 +1,3 @@",
		" l1",
		"-l2",
		"+L2",
		" l3",
		"@@ -8,3 +8,3 @@",
		" l8",
		"-l9",
		"+L9",
		" l10",
		"",
	}, "\n")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("diff mismatch (-want +got):\n%s", diff)
	}
}

func TestUnifiedNoNewlineAtEOF(t *testing.T) {
	got := Unified("f", "a\nb", "a\nc", Options{})
	if !strings.Contains(got, "-b\n\\ No newline at end of file\n+c\n\\ No newline at end of file\n") {
		t.Fatalf("missing no-newline markers:\n%s", got)
	}
}

func TestUnifiedColor(t *testing.T) {
	got := Unified("f", "a\n", "b\n", Options{Color: true})
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected ANSI colors, got %q", got)
	}
	plain := Unified("f", "a\n", "b\n", Options{})
	if strings.Contains(plain, "\x1b[") {
		t.Fatalf("unexpected ANSI colors in %q", plain)
	}
}

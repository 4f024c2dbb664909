package driver

import (
	"crypto/sha256"
	"os"
	"path/filepath"
	"testing"

	"phpfix/internal/fix"
)

func TestCacheRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "cache.bin")
	hash := sha256.Sum256([]byte("<?php\n"))

	c, err := OpenCache(path, "sig-a")
	if err != nil {
		t.Fatalf("OpenCache: %v", err)
	}
	if c.Has("a.php", hash) {
		t.Fatalf("empty cache reported a hit")
	}
	c.Put("a.php", hash)
	if err := c.Save(); err != nil {
		t.Fatalf("Save: %v", err)
	}

	same, err := OpenCache(path, "sig-a")
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if !same.Has("a.php", hash) || same.Len() != 1 {
		t.Fatalf("entry lost after reopen")
	}
	if same.Has("a.php", sha256.Sum256([]byte("<?php\n// edited\n"))) {
		t.Fatalf("different content must miss")
	}

	other, err := OpenCache(path, "sig-b")
	if err != nil {
		t.Fatalf("reopen with other signature: %v", err)
	}
	if other.Len() != 0 {
		t.Fatalf("signature change must invalidate the cache")
	}
}

func TestCacheCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.bin")
	if err := os.WriteFile(path, []byte{0xc1, 0xff, 0x00}, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	c, err := OpenCache(path, "sig")
	if err == nil {
		t.Fatalf("expected decode error")
	}
	if c == nil || c.Len() != 0 {
		t.Fatalf("expected a usable empty cache")
	}
	if err := c.Save(); err != nil {
		t.Fatalf("Save over corrupt file: %v", err)
	}
	if _, err := OpenCache(path, "sig"); err != nil {
		t.Fatalf("rewritten cache should decode: %v", err)
	}
}

func TestNilCacheIsDisabled(t *testing.T) {
	var c *Cache
	hash := sha256.Sum256(nil)
	c.Put("a.php", hash)
	if c.Has("a.php", hash) || c.Len() != 0 {
		t.Fatalf("nil cache must stay empty")
	}
	if err := c.Save(); err != nil {
		t.Fatalf("nil Save: %v", err)
	}
}

func TestSignature(t *testing.T) {
	fixers := []fix.Fixer{fix.NewAttributesNewLine(), fix.NewPhpdocAboveAttribute()}
	reversed := []fix.Fixer{fixers[1], fixers[0]}
	ws := fix.DefaultWhitespaces()

	base := Signature(fixers, ws, false)
	if base != Signature(reversed, ws, false) {
		t.Fatalf("signature must not depend on fixer order")
	}
	tabs := fix.Whitespaces{Indent: "\t", LineEnding: "\n"}
	for name, sig := range map[string]string{
		"risky":  Signature(fixers, ws, true),
		"indent": Signature(fixers, tabs, false),
		"fixers": Signature(fixers[:1], ws, false),
	} {
		if sig == base {
			t.Fatalf("%s change did not alter the signature", name)
		}
	}
}

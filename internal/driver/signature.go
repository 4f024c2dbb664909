package driver

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
	"strconv"

	"phpfix/internal/fix"
	"phpfix/internal/version"
)

// Signature identifies everything besides file content that affects the
// fixed output: tool version, enabled fixers, whitespace style and risky
// mode. H(version || names... || indent || line ending || risky).
func Signature(fixers []fix.Fixer, ws fix.Whitespaces, allowRisky bool) string {
	names := make([]string, 0, len(fixers))
	for _, f := range fixers {
		names = append(names, f.Name())
	}
	sort.Strings(names)

	h := sha256.New()
	write := func(s string) {
		_, _ = h.Write([]byte(strconv.Quote(s)))
	}
	write(version.Version)
	for _, n := range names {
		write(n)
	}
	write(ws.Indent)
	write(ws.LineEnding)
	write(strconv.FormatBool(allowRisky))
	return hex.EncodeToString(h.Sum(nil))
}

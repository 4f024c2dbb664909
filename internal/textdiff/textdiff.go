// Package textdiff renders unified line diffs between two versions of a file.
package textdiff

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Options configures Unified.
type Options struct {
	// Context is the number of unchanged lines around each change; 0 means 3.
	Context int
	// Color forces ANSI colors on.
	Color bool
}

type op uint8

const (
	opEqual op = iota
	opDelete
	opInsert
)

type line struct {
	op   op
	text string // без завершающего '\n'
	eol  bool
}

// Unified returns a unified diff from before to after, or "" when they are
// equal.
func Unified(path, before, after string, opts Options) string {
	if before == after {
		return ""
	}
	ctx := opts.Context
	if ctx <= 0 {
		ctx = 3
	}
	lines := diffLines(before, after)
	p := newPalette(opts.Color)

	var sb strings.Builder
	sb.WriteString(p.header(fmt.Sprintf("--- a/%s", path)) + "\n")
	sb.WriteString(p.header(fmt.Sprintf("+++ b/%s", path)) + "\n")
	for _, h := range hunks(lines, ctx) {
		writeHunk(&sb, lines, h, p)
	}
	return sb.String()
}

func diffLines(before, after string) []line {
	dmp := diffpatch.New()
	a, b, table := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffMain(a, b, false)
	diffs = dmp.DiffCharsToLines(diffs, table)

	out := make([]line, 0, len(diffs))
	for _, d := range diffs {
		kind := opEqual
		switch d.Type {
		case diffpatch.DiffDelete:
			kind = opDelete
		case diffpatch.DiffInsert:
			kind = opInsert
		}
		for _, piece := range strings.SplitAfter(d.Text, "\n") {
			if piece == "" {
				continue
			}
			eol := strings.HasSuffix(piece, "\n")
			out = append(out, line{op: kind, text: strings.TrimSuffix(piece, "\n"), eol: eol})
		}
	}
	return out
}

type hunk struct {
	start, end int // [start, end) в lines
}

// hunks groups changed lines with ctx lines of context, merging groups whose
// context would overlap.
func hunks(lines []line, ctx int) []hunk {
	var out []hunk
	for i := 0; i < len(lines); i++ {
		if lines[i].op == opEqual {
			continue
		}
		start := max(i-ctx, 0)
		end := i + 1
		for j := i + 1; j < len(lines); j++ {
			if lines[j].op != opEqual {
				end = j + 1
				continue
			}
			if j-end >= 2*ctx {
				break
			}
		}
		end = min(end+ctx, len(lines))
		if n := len(out); n > 0 && out[n-1].end >= start {
			out[n-1].end = end
		} else {
			out = append(out, hunk{start: start, end: end})
		}
		i = end - 1
	}
	return out
}

func writeHunk(sb *strings.Builder, lines []line, h hunk, p palette) {
	oldStart, newStart := 1, 1
	for _, l := range lines[:h.start] {
		if l.op != opInsert {
			oldStart++
		}
		if l.op != opDelete {
			newStart++
		}
	}
	oldLen, newLen := 0, 0
	for _, l := range lines[h.start:h.end] {
		if l.op != opInsert {
			oldLen++
		}
		if l.op != opDelete {
			newLen++
		}
	}
	sb.WriteString(p.hunk(fmt.Sprintf("@@ -%s +%s @@", rangeSpec(oldStart, oldLen), rangeSpec(newStart, newLen))) + "\n")
	for _, l := range lines[h.start:h.end] {
		switch l.op {
		case opDelete:
			sb.WriteString(p.del("-"+l.text) + "\n")
		case opInsert:
			sb.WriteString(p.ins("+"+l.text) + "\n")
		default:
			sb.WriteString(" " + l.text + "\n")
		}
		if !l.eol {
			sb.WriteString("\\ No newline at end of file\n")
		}
	}
}

func rangeSpec(start, n int) string {
	switch n {
	case 0:
		return fmt.Sprintf("%d,0", start-1)
	case 1:
		return fmt.Sprintf("%d", start)
	}
	return fmt.Sprintf("%d,%d", start, n)
}

type palette struct {
	header, hunk, del, ins func(a ...interface{}) string
}

func newPalette(enabled bool) palette {
	if !enabled {
		plain := func(a ...interface{}) string { return fmt.Sprint(a...) }
		return palette{header: plain, hunk: plain, del: plain, ins: plain}
	}
	mk := func(attrs ...color.Attribute) func(a ...interface{}) string {
		c := color.New(attrs...)
		c.EnableColor()
		return c.SprintFunc()
	}
	return palette{
		header: mk(color.Bold),
		hunk:   mk(color.FgCyan),
		del:    mk(color.FgRed),
		ins:    mk(color.FgGreen),
	}
}

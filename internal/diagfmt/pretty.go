package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"phpfix/internal/diag"
	"phpfix/internal/source"
)

type palette struct {
	sev     map[diag.Severity]*color.Color
	gutter  *color.Color
	caret   *color.Color
	noteHdr *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		sev: map[diag.Severity]*color.Color{
			diag.SevError:   color.New(color.FgRed, color.Bold),
			diag.SevWarning: color.New(color.FgYellow, color.Bold),
			diag.SevInfo:    color.New(color.FgCyan, color.Bold),
		},
		gutter:  color.New(color.FgBlue),
		caret:   color.New(color.FgGreen, color.Bold),
		noteHdr: color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.gutter, p.caret, p.noteHdr, p.sev[diag.SevError], p.sev[diag.SevWarning], p.sev[diag.SevInfo]} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекст строки с подчёркиванием ^~~~ по Span, затем Notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) error {
	p := newPalette(opts.Color)
	for _, d := range bag.Items() {
		if err := prettyOne(w, d, fs, opts, p); err != nil {
			return err
		}
	}
	return nil
}

func prettyOne(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts, p palette) error {
	file := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	sev := p.sev[d.Severity]
	if sev == nil {
		sev = p.sev[diag.SevInfo]
	}

	if _, err := fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		displayPath(file.Path, opts), start.Line, start.Col,
		sev.Sprint(d.Severity.String()), d.Code.ID(), d.Message); err != nil {
		return err
	}

	width := len(fmt.Sprint(start.Line))
	first := start.Line
	if ctx := uint32(max(opts.Context, 0)); first > ctx {
		first -= ctx
	} else {
		first = 1
	}
	for n := first; n <= start.Line; n++ {
		if _, err := fmt.Fprintf(w, " %s %s\n", p.gutter.Sprintf("%*d |", width, n), file.LineText(n)); err != nil {
			return err
		}
	}

	line := file.LineText(start.Line)
	underline := 1
	if end.Line == start.Line && end.Col > start.Col {
		underline = int(end.Col - start.Col)
	} else if rest := len(line) - int(start.Col) + 1; rest > 1 {
		underline = rest
	}
	marker := "^" + strings.Repeat("~", underline-1)
	pad := strings.Repeat(" ", int(start.Col)-1)
	if _, err := fmt.Fprintf(w, " %s %s%s\n", p.gutter.Sprintf("%*s |", width, ""), pad, p.caret.Sprint(marker)); err != nil {
		return err
	}

	if !opts.ShowNotes {
		return nil
	}
	for _, note := range d.Notes {
		noteStart, _ := fs.Resolve(note.Span)
		if _, err := fmt.Fprintf(w, "  %s %s:%d:%d: %s\n", p.noteHdr.Sprint("note:"),
			displayPath(fs.Get(note.Span.File).Path, opts), noteStart.Line, noteStart.Col, note.Msg); err != nil {
			return err
		}
	}
	return nil
}

func displayPath(path string, opts PrettyOpts) string {
	switch opts.PathMode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
	case PathModeBasename:
		return filepath.Base(path)
	case PathModeRelative, PathModeAuto:
		if opts.BaseDir == "" {
			return path
		}
		if rel, err := source.RelativePath(path, opts.BaseDir); err == nil {
			return rel
		}
	}
	return path
}

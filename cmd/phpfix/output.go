package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"phpfix/internal/driver"
	"phpfix/internal/observ"
)

type runSummary struct {
	Files   int  `json:"files"`
	Changed int  `json:"changed"`
	Cached  int  `json:"cached"`
	Errors  int  `json:"errors"`
	DryRun  bool `json:"dry_run"`
}

func summarize(results []driver.FixResult, dryRun bool) runSummary {
	s := runSummary{Files: len(results), DryRun: dryRun}
	for _, r := range results {
		switch {
		case r.Err != nil:
			s.Errors++
		case r.Cached:
			s.Cached++
		case r.Changed:
			s.Changed++
		}
	}
	return s
}

// exitCode combines status bits: 1 for failed files, 8 for pending changes in
// a dry run.
func (s runSummary) exitCode() int {
	code := 0
	if s.Errors > 0 {
		code |= exitGeneralError
	}
	if s.DryRun && s.Changed > 0 {
		code |= exitChangesFound
	}
	return code
}

var (
	changedMark = color.New(color.FgGreen, color.Bold)
	errorMark   = color.New(color.FgRed, color.Bold)
)

func renderText(out, errOut io.Writer, results []driver.FixResult, s runSummary, showDiff bool) error {
	n := 0
	for _, r := range results {
		if r.Err != nil {
			if _, err := fmt.Fprintf(errOut, "%s %s: %v\n", errorMark.Sprint("error"), r.Path, r.Err); err != nil {
				return err
			}
			for _, p := range r.Problems {
				sep := ":"
				if p.Pos.Line == 0 {
					sep = ": "
				}
				if _, err := fmt.Fprintf(errOut, "  %s%s%s\n", r.Path, sep, p); err != nil {
					return err
				}
			}
			continue
		}
		if !r.Changed {
			continue
		}
		n++
		line := fmt.Sprintf("%4d) %s", n, r.Path)
		if len(r.Applied) > 0 {
			line += fmt.Sprintf(" (%s)", strings.Join(r.Applied, ", "))
		}
		if _, err := fmt.Fprintln(out, changedMark.Sprint(line)); err != nil {
			return err
		}
		if showDiff && r.Diff != "" {
			if _, err := fmt.Fprint(out, r.Diff); err != nil {
				return err
			}
		}
	}

	verb := "Fixed"
	if s.DryRun {
		verb = "Checked"
	}
	_, err := fmt.Fprintf(out, "\n%s %d of %d files (%d changed, %d cached, %d failed)\n",
		verb, s.Files-s.Errors, s.Files, s.Changed, s.Cached, s.Errors)
	return err
}

type jsonFile struct {
	Path     string   `json:"path"`
	Applied  []string `json:"applied,omitempty"`
	Diff     string   `json:"diff,omitempty"`
	Error    string   `json:"error,omitempty"`
	Problems []string `json:"problems,omitempty"`
}

type jsonReport struct {
	Files   []jsonFile     `json:"files"`
	Summary runSummary     `json:"summary"`
	Timings *observ.Report `json:"timings,omitempty"`
}

func renderJSON(out io.Writer, results []driver.FixResult, s runSummary, rec *observ.Recorder) error {
	report := jsonReport{Files: make([]jsonFile, 0, len(results)), Summary: s}
	for _, r := range results {
		if r.Err == nil && !r.Changed {
			continue
		}
		f := jsonFile{Path: r.Path, Applied: r.Applied, Diff: r.Diff}
		if r.Err != nil {
			f.Error = r.Err.Error()
		}
		for _, p := range r.Problems {
			f.Problems = append(f.Problems, p.String())
		}
		report.Files = append(report.Files, f)
	}
	if rec != nil {
		timings := rec.Report()
		report.Timings = &timings
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

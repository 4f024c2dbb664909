package fix

// todo: режим --rules=... для запуска одного фиксера без конфига

import (
	"errors"
	"fmt"
	"sort"

	"phpfix/internal/source"
	"phpfix/internal/tokens"
)

// ErrUnknownFixer is returned by Lookup.
var ErrUnknownFixer = errors.New("unknown fixer")

// Skip reasons recorded in SkippedFix.Reason.
const (
	ReasonRisky        = "risky fixers are not allowed"
	ReasonUnsupported  = "file is not supported"
	ReasonNotCandidate = "not a candidate"
)

// ApplyOptions configures which fixers may run.
type ApplyOptions struct {
	AllowRisky bool
}

// AppliedFix records a fixer that changed the stream.
type AppliedFix struct {
	Name     string
	Priority int
}

// SkippedFix captures a fixer that did not run, with a reason.
type SkippedFix struct {
	Name   string
	Reason string
}

// ApplyResult aggregates applied and skipped fixers for one stream.
type ApplyResult struct {
	Applied []AppliedFix
	Skipped []SkippedFix
}

// Changed reports whether any fixer changed the stream.
func (r *ApplyResult) Changed() bool {
	return r != nil && len(r.Applied) > 0
}

// AppliedNames lists applied fixer names in run order.
func (r *ApplyResult) AppliedNames() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.Applied))
	for _, a := range r.Applied {
		names = append(names, a.Name)
	}
	return names
}

// Apply runs fixers over s in priority order. Candidacy is checked against
// the stream as left by the previous fixer. The change flag of s is reset
// before every fixer; use ApplyResult.Changed for the overall outcome.
func Apply(file *source.File, s *tokens.Stream, fixers []Fixer, opts ApplyOptions) *ApplyResult {
	result := &ApplyResult{
		Applied: make([]AppliedFix, 0),
		Skipped: make([]SkippedFix, 0),
	}
	if s == nil {
		return result
	}
	path := ""
	if file != nil {
		path = file.Path
	}

	for _, f := range Sorted(fixers) {
		name := f.Name()
		switch {
		case f.IsRisky() && !opts.AllowRisky:
			result.Skipped = append(result.Skipped, SkippedFix{Name: name, Reason: ReasonRisky})
			continue
		case !f.Supports(path):
			result.Skipped = append(result.Skipped, SkippedFix{Name: name, Reason: ReasonUnsupported})
			continue
		case s.Count() == 0 || !f.IsCandidate(s):
			result.Skipped = append(result.Skipped, SkippedFix{Name: name, Reason: ReasonNotCandidate})
			continue
		}

		s.ClearChanged()
		f.Fix(file, s)
		if s.IsChanged() {
			result.Applied = append(result.Applied, AppliedFix{Name: name, Priority: f.Priority()})
		}
	}
	return result
}

// Sorted returns a copy of fixers ordered by priority (descending) and then
// by name, so that equal priorities still run in a deterministic order.
func Sorted(fixers []Fixer) []Fixer {
	out := make([]Fixer, 0, len(fixers))
	for _, f := range fixers {
		if f != nil {
			out = append(out, f)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := out[i].Priority(), out[j].Priority()
		if pi != pj {
			return pi > pj
		}
		return out[i].Name() < out[j].Name()
	})
	return out
}

// Lookup finds a fixer by exact name.
func Lookup(fixers []Fixer, name string) (Fixer, error) {
	for _, f := range fixers {
		if f != nil && f.Name() == name {
			return f, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownFixer, name)
}

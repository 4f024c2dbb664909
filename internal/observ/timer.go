package observ

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// Phase records the duration and metadata of one step of fixing a file.
type Phase struct {
	Name  string
	Start time.Time
	Dur   time.Duration
	Note  string
}

// Timer tracks the phases of a single unit of work. It is not safe for
// concurrent use; give each worker its own and fold them into a Recorder.
type Timer struct {
	phases []Phase
}

// NewTimer creates a new empty Timer.
func NewTimer() *Timer { return &Timer{phases: make([]Phase, 0, 8)} }

// Begin starts a new phase and returns its index.
func (t *Timer) Begin(name string) int {
	t.phases = append(t.phases, Phase{Name: name, Start: time.Now()})
	return len(t.phases) - 1
}

// End finishes a phase by its index.
func (t *Timer) End(idx int, note string) {
	if idx < 0 || idx >= len(t.phases) {
		return
	}
	p := &t.phases[idx]
	p.Dur = time.Since(p.Start)
	p.Note = note
}

// Track runs fn as a phase.
func (t *Timer) Track(name string, fn func()) {
	idx := t.Begin(name)
	fn()
	t.End(idx, "")
}

// Phases returns the recorded phases.
func (t *Timer) Phases() []Phase {
	return t.phases
}

// PhaseReport представляет сжатую информацию о фазе для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	DurationMS float64 `json:"duration_ms"`
}

// Report описывает агрегированные данные.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Recorder aggregates phases from many timers by name. Safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	order  []string
	totals map[string]time.Duration
	counts map[string]int
}

// NewRecorder creates an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		totals: make(map[string]time.Duration),
		counts: make(map[string]int),
	}
}

// Add folds the phases of t into the recorder. A nil recorder ignores it.
func (r *Recorder) Add(t *Timer) {
	if r == nil || t == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range t.phases {
		if _, ok := r.totals[p.Name]; !ok {
			r.order = append(r.order, p.Name)
		}
		r.totals[p.Name] += p.Dur
		r.counts[p.Name]++
	}
}

// Report returns phases in first-seen order.
func (r *Recorder) Report() Report {
	if r == nil {
		return Report{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	report := Report{Phases: make([]PhaseReport, 0, len(r.order))}
	var total time.Duration
	for _, name := range r.order {
		total += r.totals[name]
		report.Phases = append(report.Phases, PhaseReport{
			Name:       name,
			Count:      r.counts[name],
			DurationMS: durationToMillis(r.totals[name]),
		})
	}
	report.TotalMS = durationToMillis(total)
	return report
}

// Summary returns a human-readable table, slowest phase first.
func (r *Recorder) Summary() string {
	report := r.Report()
	phases := append([]PhaseReport(nil), report.Phases...)
	sort.SliceStable(phases, func(i, j int) bool {
		return phases[i].DurationMS > phases[j].DurationMS
	})
	out := "timings:\n"
	for _, p := range phases {
		out += fmt.Sprintf("  %-12s %7.2f ms  x%d\n", p.Name, p.DurationMS, p.Count)
	}
	out += fmt.Sprintf("  %-12s %7.2f ms\n", "total", report.TotalMS)
	return out
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}

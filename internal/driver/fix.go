package driver

import (
	"bytes"
	"context"
	"crypto/sha256"
	"fmt"
	"os"
	"runtime"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"phpfix/internal/diag"
	"phpfix/internal/fix"
	"phpfix/internal/lexer"
	"phpfix/internal/observ"
	"phpfix/internal/source"
	"phpfix/internal/textdiff"
	"phpfix/internal/tokens"
)

// Options configures FixPaths.
type Options struct {
	Fixers     []fix.Fixer
	AllowRisky bool
	// DryRun reports changes without writing files.
	DryRun bool
	// Diff fills FixResult.Diff for changed files.
	Diff        bool
	DiffColor   bool
	DiffContext int
	// Jobs limits parallel workers; 0 means GOMAXPROCS.
	Jobs       int
	Extensions []string
	Exclude    []string
	// BaseDir makes paths in diffs relative; empty keeps them as given.
	BaseDir        string
	MaxDiagnostics int
	Cache          *Cache
	Logger         *zap.Logger
	Recorder       *observ.Recorder
	// Progress receives a queued event for every file, then one event when a
	// worker picks it up and one when it is finished.
	Progress ProgressSink
}

// Problem is a diagnostic with its resolved position. I/O problems have no
// position and a zero Pos.
type Problem struct {
	diag.Diagnostic
	Pos source.LineCol
}

func (p Problem) String() string {
	if p.Pos.Line == 0 {
		return fmt.Sprintf("%s %s: %s", p.Severity, p.Code.ID(), p.Message)
	}
	return fmt.Sprintf("%d:%d: %s %s: %s", p.Pos.Line, p.Pos.Col, p.Severity, p.Code.ID(), p.Message)
}

func ioProblem(code diag.Code, err error) Problem {
	return Problem{Diagnostic: diag.NewError(code, source.Span{}, err.Error())}
}

// FixResult captures the outcome for a single file.
type FixResult struct {
	Path    string
	Changed bool
	// Cached is true when the file was skipped on a cache hit.
	Cached   bool
	Applied  []string
	Diff     string
	Problems []Problem
	Err      error
}

// Outcome is the in-memory result of fixing one source unit.
type Outcome struct {
	Fixed    []byte
	Result   *fix.ApplyResult
	Problems []Problem
}

// FixContent tokenizes content, runs the fixers and renders the result.
// When the tokenizer reports errors the content is left alone and the
// returned error wraps ErrLexErrors.
func FixContent(path string, content []byte, fixers []fix.Fixer, opts fix.ApplyOptions, maxDiagnostics int) (Outcome, error) {
	fileSet := source.NewFileSet()
	fileID := fileSet.Add(path, content, 0)
	file := fileSet.Get(fileID)

	if maxDiagnostics <= 0 {
		maxDiagnostics = 256
	}
	bag := diag.NewBag(maxDiagnostics)
	reporter := (&lexer.ReporterAdapter{Bag: bag}).Reporter()
	toks := lexer.Tokenize(file, lexer.Options{Reporter: reporter})

	bag.Sort()
	bag.Dedup()
	var out Outcome
	for _, d := range bag.Items() {
		start, _ := fileSet.Resolve(d.Primary)
		out.Problems = append(out.Problems, Problem{Diagnostic: d, Pos: start})
	}
	if bag.HasErrors() {
		return out, fmt.Errorf("%s: %w", path, ErrLexErrors)
	}

	stream := tokens.New(toks)
	out.Result = fix.Apply(file, stream, fixers, opts)
	out.Fixed = []byte(stream.String())
	return out, nil
}

// FixPaths fixes the provided files or directories in parallel. Per-file
// failures are reported in FixResult.Err; the returned error is reserved for
// collection failures, ErrNoFiles and cancellation.
func FixPaths(ctx context.Context, paths []string, opts Options) ([]FixResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	exts := opts.Extensions
	if len(exts) == 0 {
		exts = []string{".php"}
	}

	files, err := collectFiles(ctx, paths, exts, opts.Exclude)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, ErrNoFiles
	}

	// Настраиваем параллелизм
	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}
	logger.Debug("fixing files", zap.Int("files", len(files)), zap.Int("jobs", jobs), zap.Int("fixers", len(opts.Fixers)))

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Status: StatusQueued})
	}

	// индексы уникальны для каждой горутины, мьютекс не нужен
	results := make([]FixResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(files)))
	for i, path := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			began := time.Now()
			emit(opts.Progress, Event{File: path, Status: StatusWorking})
			results[i] = fixFile(path, opts, logger)
			emit(opts.Progress, Event{
				File:    path,
				Status:  resultStatus(results[i]),
				Err:     results[i].Err,
				Elapsed: time.Since(began),
			})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}

	if !opts.DryRun {
		if err := opts.Cache.Save(); err != nil {
			logger.Warn("failed to save cache", zap.String("code", diag.IOCacheError.ID()), zap.Error(err))
		}
	}
	return results, nil
}

func fixFile(path string, opts Options, logger *zap.Logger) FixResult {
	began := time.Now()
	timer := observ.NewTimer()
	defer opts.Recorder.Add(timer)

	result := FixResult{Path: path}
	var (
		content []byte
		err     error
	)
	timer.Track("load", func() {
		// #nosec G304 -- path comes from the caller's file list
		content, err = os.ReadFile(path)
	})
	if err != nil {
		result.Err = fmt.Errorf("read %s: %w", path, err)
		result.Problems = []Problem{ioProblem(diag.IOLoadFileError, err)}
		return result
	}

	if opts.Cache.Has(path, sha256.Sum256(content)) {
		result.Cached = true
		logger.Debug("cache hit", zap.String("path", path))
		return result
	}

	var out Outcome
	timer.Track("fix", func() {
		out, err = FixContent(path, content, opts.Fixers, fix.ApplyOptions{AllowRisky: opts.AllowRisky}, opts.MaxDiagnostics)
	})
	result.Problems = out.Problems
	for _, p := range out.Problems {
		logger.Warn("tokenizer diagnostic", zap.String("path", path), zap.String("problem", p.String()))
	}
	if err != nil {
		result.Err = err
		return result
	}

	result.Applied = out.Result.AppliedNames()
	result.Changed = !bytes.Equal(content, out.Fixed)

	if result.Changed && opts.Diff {
		timer.Track("diff", func() {
			result.Diff = textdiff.Unified(displayPath(path, opts.BaseDir), string(content), string(out.Fixed), textdiff.Options{
				Context: opts.DiffContext,
				Color:   opts.DiffColor,
			})
		})
	}

	if result.Changed && !opts.DryRun {
		timer.Track("write", func() {
			err = writeFile(path, out.Fixed)
		})
		if err != nil {
			result.Err = fmt.Errorf("write %s: %w", path, err)
			result.Problems = append(result.Problems, ioProblem(diag.IOWriteFileError, err))
			return result
		}
	}
	if !result.Changed || !opts.DryRun {
		opts.Cache.Put(path, sha256.Sum256(out.Fixed))
	}

	logger.Debug("fixed file",
		zap.String("path", path),
		zap.Strings("applied", result.Applied),
		zap.Bool("changed", result.Changed),
		zap.Duration("duration", time.Since(began)),
	)
	return result
}

// writeFile replaces the file contents, keeping its permissions.
func writeFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, data, mode.Perm())
}

func displayPath(path, baseDir string) string {
	if baseDir == "" {
		return path
	}
	rel, err := source.RelativePath(path, baseDir)
	if err != nil {
		return path
	}
	return rel
}

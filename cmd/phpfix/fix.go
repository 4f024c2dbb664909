package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"phpfix/internal/config"
	"phpfix/internal/diag"
	"phpfix/internal/driver"
	"phpfix/internal/fix"
	"phpfix/internal/observ"
)

// Process status bits, as in PHP-CS-Fixer.
const (
	exitGeneralError = 1
	exitChangesFound = 8
)

var fixCmd = &cobra.Command{
	Use:   "fix [flags] <file.php|directory>...",
	Short: "Fix PHP files in place",
	Long: `Fix applies the enabled rules to every PHP file under the given paths.
With --dry-run nothing is written and the exit status is 8 when a file needs fixing.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runFix,
}

func init() {
	fixCmd.Flags().Bool("dry-run", false, "only report files that need fixing")
	fixCmd.Flags().Bool("diff", false, "print a unified diff for every changed file")
	fixCmd.Flags().String("config", "", "path to .phpfix.toml or .phpfix.yaml (default: discovered)")
	fixCmd.Flags().Int("jobs", 0, "parallel workers (0 = config value or GOMAXPROCS)")
	fixCmd.Flags().String("using-cache", "yes", "use the result cache (yes|no)")
	fixCmd.Flags().Bool("allow-risky", false, "run risky fixers")
	fixCmd.Flags().String("format", "text", "output format (text|json)")
	fixCmd.Flags().String("progress", "auto", "live progress view (auto|on|off)")
}

func runFix(cmd *cobra.Command, args []string) error {
	dryRun, err := cmd.Flags().GetBool("dry-run")
	if err != nil {
		return err
	}
	showDiff, err := cmd.Flags().GetBool("diff")
	if err != nil {
		return err
	}
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return err
	}
	usingCache, err := cmd.Flags().GetString("using-cache")
	if err != nil {
		return err
	}
	allowRisky, err := cmd.Flags().GetBool("allow-risky")
	if err != nil {
		return err
	}
	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	progressFlag, err := cmd.Flags().GetString("progress")
	if err != nil {
		return err
	}
	progressMode, err := readUIMode(progressFlag)
	if err != nil {
		return err
	}
	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return err
	}
	showTimings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return err
	}

	switch usingCache {
	case "yes", "no":
	default:
		return fmt.Errorf("--using-cache must be yes or no, got %q", usingCache)
	}
	switch format {
	case "text", "json":
	default:
		return fmt.Errorf("unsupported format %q (must be text or json)", format)
	}

	stopProfiling, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if stopErr := stopProfiling(); stopErr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "failed to write profiles: %v\n", stopErr)
		}
	}()

	logger, err := newLogger(cmd)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("jobs") {
		cfg.Run.Jobs = jobs
	}
	if cmd.Flags().Changed("allow-risky") {
		cfg.Run.Risky = allowRisky
	}

	rs, err := cfg.RuleSet()
	if err != nil {
		return err
	}
	if unknown := rs.UnknownRules(); len(unknown) > 0 {
		logger.Debug("rules are not implemented here, ignoring", zap.Int("count", len(unknown)), zap.Strings("rules", unknown))
	}
	fixers, err := rs.EnabledFixers()
	if err != nil {
		return err
	}
	ws := cfg.Whitespaces()
	if err := fix.Configure(fixers, ws); err != nil {
		return err
	}

	var recorder *observ.Recorder
	if showTimings {
		recorder = observ.NewRecorder()
	}

	opts := driver.Options{
		Fixers:         fixers,
		AllowRisky:     cfg.Run.Risky,
		DryRun:         dryRun,
		Diff:           showDiff,
		DiffColor:      format == "text" && useColor(cmd, os.Stdout),
		Jobs:           cfg.Run.Jobs,
		Extensions:     cfg.Run.Extensions,
		Exclude:        cfg.Run.Exclude,
		BaseDir:        cfg.Root,
		MaxDiagnostics: maxDiagnostics,
		Logger:         logger,
		Recorder:       recorder,
	}
	if cfg.Cache.Enabled && usingCache == "yes" {
		cachePath := cfg.Cache.Path
		if !filepath.IsAbs(cachePath) {
			cachePath = filepath.Join(cfg.Root, cachePath)
		}
		cache, cacheErr := driver.OpenCache(cachePath, driver.Signature(fixers, ws, cfg.Run.Risky))
		if cacheErr != nil {
			logger.Warn("cache is unreadable, starting fresh", zap.String("code", diag.IOCacheError.ID()), zap.String("path", cachePath), zap.Error(cacheErr))
		}
		opts.Cache = cache
	}

	var results []driver.FixResult
	if format == "text" && shouldUseTUI(progressMode) {
		title := "Fixing"
		if dryRun {
			title = "Checking"
		}
		results, err = runFixWithUI(cmd.Context(), title, args, opts)
	} else {
		results, err = driver.FixPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		if errors.Is(err, driver.ErrNoFiles) {
			return fmt.Errorf("fix: %w in %s", err, strings.Join(args, ", "))
		}
		return fmt.Errorf("fix: %w", err)
	}

	summary := summarize(results, dryRun)
	switch format {
	case "json":
		err = renderJSON(cmd.OutOrStdout(), results, summary, recorder)
	default:
		err = renderText(cmd.OutOrStdout(), cmd.ErrOrStderr(), results, summary, showDiff)
		if err == nil && recorder != nil {
			_, err = fmt.Fprint(cmd.ErrOrStderr(), recorder.Summary())
		}
	}
	if err != nil {
		return err
	}

	if code := summary.exitCode(); code != 0 {
		return exitCodeError{code: code}
	}
	return nil
}

// loadConfig reads the explicit --config file or discovers one from the
// working directory.
func loadConfig(path string) (config.Config, error) {
	if path != "" {
		return config.Load(path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return config.Config{}, err
	}
	return config.Discover(wd)
}

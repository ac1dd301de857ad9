package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/sitecheck/sitecheck/internal/checker"
	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/history"
	"github.com/sitecheck/sitecheck/internal/log"
	"github.com/sitecheck/sitecheck/internal/model"
	"github.com/sitecheck/sitecheck/internal/report"
	"github.com/spf13/cobra"
)

// NewReportCmd creates the report command.
func NewReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report [manifest...]",
		Short: "Audit a site manifest and render a readiness report",
		Long: `Report runs the full readiness audit for one or more site manifests.

The audit validates the configured color palette and records the site's
architecture, accessibility, responsiveness, code quality, and deployment
requirements. The result is rendered as a pass-rate report and saved to
the run history for later comparison.

Without arguments, the manifest is looked up as .sitecheck in the current
directory, then in the home directory. If no manifest exists, the built-in
defaults are used.

Examples:
  # Audit the current directory's manifest (or the defaults)
  sitecheck report

  # Audit a specific manifest
  sitecheck report path/to/.sitecheck

  # Audit several sites concurrently
  sitecheck report siteA/.sitecheck siteB/.sitecheck --batch 4

  # Output JSON report
  sitecheck report --json

  # Write the report to a file
  sitecheck report -o readiness.txt

  # Run without recording the result
  sitecheck report --no-save`,
		Args: cobra.ArbitraryArgs,
		RunE: runReportCmd,
	}

	// Batch auditing flags
	cmd.Flags().IntP("batch", "b", config.DefaultBatchSize,
		"Number of concurrent audits when several manifests are given")

	// Report flags
	cmd.Flags().BoolP("json", "j", false,
		"Output JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write report to specified file path (multi-manifest runs add a per-project suffix)")

	// History flags
	cmd.Flags().Bool("no-save", false,
		"Do not record this run in the history database")

	return cmd
}

// runReportCmd executes the report command.
func runReportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd, args)
	if err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Set up structured logging
	logger := log.NewLogger(os.Stderr, cfg.Verbose)
	slog.SetDefault(logger)

	// Set up context with signal handling for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		logger.Info("received shutdown signal, cancelling...")
		cancel()
	}()

	return runReport(ctx, cfg, logger)
}

// getVerboseFlag retrieves the verbose flag from the command or its parent.
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		verbose, err = cmd.Root().PersistentFlags().GetBool("verbose")
		if err != nil {
			return false
		}
	}
	return verbose
}

// buildConfig creates a Config from cobra command flags.
func buildConfig(cmd *cobra.Command, args []string) (*config.Config, error) {
	cfg := config.NewConfig()

	var err error

	cfg.BatchSize, err = cmd.Flags().GetInt("batch")
	if err != nil {
		return nil, err
	}

	cfg.JSONReport, err = cmd.Flags().GetBool("json")
	if err != nil {
		return nil, err
	}

	cfg.MarkdownReport, err = cmd.Flags().GetBool("markdown")
	if err != nil {
		return nil, err
	}

	cfg.ReportFile, err = cmd.Flags().GetString("output")
	if err != nil {
		return nil, err
	}

	noSave, err := cmd.Flags().GetBool("no-save")
	if err != nil {
		return nil, err
	}
	cfg.SaveToDB = !noSave
	cfg.DBDir = config.XDGDataDir()

	cfg.Verbose = getVerboseFlag(cmd)

	// Positional arguments are manifest paths
	cfg.ManifestPaths = args

	return cfg, nil
}

// loadManifests resolves the manifests to audit.
// Explicitly given paths must exist. Without arguments, a .sitecheck file
// is searched for; if none is found, the built-in defaults are used.
func loadManifests(cfg *config.Config, logger *slog.Logger) ([]*config.Manifest, error) {
	if len(cfg.ManifestPaths) > 0 {
		manifests := make([]*config.Manifest, 0, len(cfg.ManifestPaths))
		for _, path := range cfg.ManifestPaths {
			m, err := config.LoadManifest(path)
			if err != nil {
				return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
			}
			manifests = append(manifests, m)
		}
		return manifests, nil
	}

	if path := config.FindManifest(""); path != "" {
		m, err := config.LoadManifest(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifest %s: %w", path, err)
		}
		logger.Info("manifest loaded", "path", path)
		return []*config.Manifest{m}, nil
	}

	logger.Info("no manifest found, using built-in defaults")
	return []*config.Manifest{config.DefaultManifest()}, nil
}

// runReport executes the audit.
func runReport(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	manifests, err := loadManifests(cfg, logger)
	if err != nil {
		return err
	}

	logger.Info("starting audit",
		"manifests", len(manifests),
		"batchSize", cfg.BatchSize,
		"saveToDB", cfg.SaveToDB,
	)

	// Open history store if saving is enabled
	var store *history.Store
	if cfg.SaveToDB {
		store, err = history.Open(cfg.DBDir, history.DefaultOptions())
		if err != nil {
			return fmt.Errorf("failed to open history database: %w", err)
		}
		defer store.Close()
		logger.Info("history database opened", "dir", cfg.DBDir)
	}

	if len(manifests) > 1 && cfg.BatchSize > 1 {
		return runBatchAudit(ctx, cfg, manifests, store, logger)
	}

	return runSequentialAudit(ctx, cfg, manifests, store, logger)
}

// runSequentialAudit audits manifests one at a time.
func runSequentialAudit(ctx context.Context, cfg *config.Config, manifests []*config.Manifest, store *history.Store, logger *slog.Logger) error {
	for _, m := range manifests {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		r := model.NewReport(m.Project.Name, m.Project.Version, time.Now().UTC())

		runner := checker.DefaultRunner(m, checker.WithLogger(logger))
		if err := runner.Execute(ctx, r); err != nil {
			return fmt.Errorf("audit failed for %s: %w", m.Project.Name, err)
		}
		r.Summarize()

		path := reportFilePath(cfg.ReportFile, m.Project.Name, len(manifests))
		if err := outputReport(cfg, path, r); err != nil {
			return fmt.Errorf("report failed for %s: %w", m.Project.Name, err)
		}

		if err := saveReport(ctx, store, r, logger); err != nil {
			logger.Error("failed to save report", "project", m.Project.Name, "error", err)
		}
	}

	return nil
}

// runBatchAudit audits multiple manifests concurrently using BatchRunner.
func runBatchAudit(ctx context.Context, cfg *config.Config, manifests []*config.Manifest, store *history.Store, logger *slog.Logger) error {
	br := checker.NewBatchRunner(
		func(m *config.Manifest) *checker.Runner {
			return checker.DefaultRunner(m, checker.WithLogger(logger))
		},
		checker.WithConcurrency(cfg.BatchSize),
		checker.WithBatchLogger(logger),
	)

	reports, err := br.Run(ctx, manifests)
	if err != nil {
		return err
	}

	for _, r := range reports {
		if r == nil {
			continue
		}
		path := reportFilePath(cfg.ReportFile, r.ProjectName, len(reports))
		if err := outputReport(cfg, path, r); err != nil {
			return fmt.Errorf("report failed for %s: %w", r.ProjectName, err)
		}
		if err := saveReport(ctx, store, r, logger); err != nil {
			logger.Error("failed to save report", "project", r.ProjectName, "error", err)
		}
	}

	return nil
}

// reportFilePath resolves the output file for one report. A single-manifest
// run writes to base as given; a multi-manifest run suffixes the project name
// before the extension so reports do not overwrite each other.
func reportFilePath(base, project string, total int) string {
	if base == "" || total <= 1 {
		return base
	}
	ext := filepath.Ext(base)
	return strings.TrimSuffix(base, ext) + "-" + sanitizeFileName(project) + ext
}

// sanitizeFileName maps a project name onto a filesystem-safe token.
func sanitizeFileName(name string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '-' || r == '_' || r == '.':
			return r
		default:
			return '-'
		}
	}, name)
}

// outputReport renders the report in the requested format.
func outputReport(cfg *config.Config, path string, r *model.Report) error {
	// Determine output destination
	var output *os.File
	if path != "" {
		dir := filepath.Dir(path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0750); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}

		// Create/overwrite the output file with owner-only permissions
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer f.Close()
		output = f
	} else {
		output = os.Stdout
	}

	// JSON output (full report with version metadata)
	if cfg.JSONReport {
		writer := report.NewFullJSONWriter(output, getVersion(), report.WithPrettyPrint())
		_, err := writer.Write(r)
		return err
	}

	// Markdown output
	if cfg.MarkdownReport {
		writer := report.NewMarkdownWriter(output)
		_, err := writer.Write(r)
		return err
	}

	// Human-readable report (default)
	writer := report.NewTextWriter(output, report.WithVerbose(cfg.Verbose))
	_, err := writer.Write(r)
	return err
}

// saveReport records the run in the history store if enabled.
// If store is nil, this function is a no-op.
func saveReport(ctx context.Context, store *history.Store, r *model.Report, logger *slog.Logger) error {
	if store == nil {
		return nil
	}

	if err := store.SaveReport(ctx, r); err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	logger.Info("report saved to history", "project", r.ProjectName)
	return nil
}

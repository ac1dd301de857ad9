package checker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/model"
	"golang.org/x/sync/errgroup"
)

// BatchRunner handles concurrent auditing of multiple site manifests.
// It uses errgroup to manage goroutines and respect concurrency limits.
//
// Design decision: We use a separate BatchRunner rather than adding batch
// functionality to Runner because:
// 1. It keeps the Runner focused on single-audit execution
// 2. It provides cleaner separation of concerns
type BatchRunner struct {
	// runnerFactory creates a new runner for each manifest.
	// A factory ensures each audit gets a fresh runner instance.
	runnerFactory func(m *config.Manifest) *Runner

	// concurrency is the maximum number of concurrent audits.
	concurrency int

	// logger is used for batch-level logging.
	logger *slog.Logger

	// now supplies the report timestamp. Injectable so tests can pin it.
	now func() time.Time

	mu sync.Mutex
}

// BatchOption configures a BatchRunner.
type BatchOption func(*BatchRunner)

// WithBatchLogger sets a custom logger for batch auditing.
func WithBatchLogger(logger *slog.Logger) BatchOption {
	return func(b *BatchRunner) {
		b.logger = logger
	}
}

// WithConcurrency sets the maximum number of concurrent audits.
// Default is config.DefaultBatchSize if not specified.
func WithConcurrency(n int) BatchOption {
	return func(b *BatchRunner) {
		if n > 0 {
			b.concurrency = n
		}
	}
}

// WithNow sets the clock used to stamp reports.
func WithNow(now func() time.Time) BatchOption {
	return func(b *BatchRunner) {
		if now != nil {
			b.now = now
		}
	}
}

// NewBatchRunner creates a new BatchRunner.
//
// The runnerFactory function is called for each manifest to create a fresh
// runner. This ensures runner state doesn't leak between audits and allows
// per-manifest configuration (skip lists, palettes).
func NewBatchRunner(runnerFactory func(m *config.Manifest) *Runner, opts ...BatchOption) *BatchRunner {
	b := &BatchRunner{
		runnerFactory: runnerFactory,
		concurrency:   config.DefaultBatchSize,
		now:           time.Now,
	}

	for _, opt := range opts {
		opt(b)
	}

	if b.logger == nil {
		b.logger = slog.Default()
	}

	return b
}

// Run audits multiple manifests concurrently.
// It respects the configured concurrency limit and context cancellation.
//
// Design decision: We use errgroup.SetLimit rather than a worker pool
// because it's simpler and errgroup handles the concurrency correctly.
//
// Reports are returned in manifest order, and every manifest gets a
// report even if its audit faulted (the fault is recorded on the report).
// The error return indicates cancellation.
func (b *BatchRunner) Run(ctx context.Context, manifests []*config.Manifest) ([]*model.Report, error) {
	b.logger.Info("starting batch audit",
		"total_manifests", len(manifests),
		"concurrency", b.concurrency,
	)

	startTime := time.Now()

	// Pre-allocate results to maintain manifest order
	results := make([]*model.Report, len(manifests))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)

	for i, m := range manifests {
		i, m := i, m
		g.Go(func() error {
			// Check for cancellation before starting
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}

			report := model.NewReport(m.Project.Name, m.Project.Version, b.now().UTC())

			runner := b.runnerFactory(m)
			err := runner.Execute(ctx, report)

			report.Summarize()

			// Store result regardless of error; the report carries the
			// fault information if the audit failed.
			b.mu.Lock()
			results[i] = report
			b.mu.Unlock()

			if err != nil {
				b.logger.Warn("audit failed",
					"project", m.Project.Name,
					"error", err,
				)
				// Don't propagate to errgroup - the other audits should
				// still run. The error is recorded on the report.
				return nil
			}

			return nil
		})
	}

	err := g.Wait()

	b.logger.Info("batch audit complete",
		"total_manifests", len(manifests),
		"elapsed", time.Since(startTime),
	)

	return results, err
}

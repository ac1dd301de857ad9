package checker

import (
	"context"
	"log/slog"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/model"
)

// Checker defines the interface that all audit checkers must implement.
// Checkers are executed in sequence, each appending its check group to the
// accumulated report.
//
// Design decision: We use an interface rather than function types because:
// 1. It allows checkers to carry configuration state (e.g., the palette)
// 2. It provides a Name() method for logging and skip-list matching
// 3. It's more extensible for future features
type Checker interface {
	// Do executes the checker. It receives the context for cancellation
	// and the report to append to. Returns an error only for genuine
	// faults; a failed requirement is recorded as a fail Check, not an
	// error.
	Do(ctx context.Context, report *model.Report) error

	// Name returns the checker's group name for logging and skipping.
	Name() string
}

// Runner orchestrates the execution of multiple checkers.
// It maintains a list of checkers and executes them in order.
type Runner struct {
	// checkers contains the ordered list of checkers to execute.
	checkers []Checker

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// continueOnError determines whether to continue executing checkers
	// after one faults. If false, the runner stops on first error.
	continueOnError bool

	// skipped lists group names excluded via the manifest. It is copied
	// onto every report the runner executes so rendered output shows
	// what was excluded.
	skipped []string
}

// Option is a function that configures a Runner.
type Option func(*Runner)

// WithLogger sets a custom logger for the runner.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithContinueOnError configures the runner to continue execution even
// when a checker faults. The fault is recorded on the report and the
// remaining groups still run.
func WithContinueOnError(continueOnError bool) Option {
	return func(r *Runner) {
		r.continueOnError = continueOnError
	}
}

// New creates a new Runner with the given options.
// Checkers should be added using Add after creation.
func New(opts ...Option) *Runner {
	r := &Runner{
		checkers:        make([]Checker, 0),
		continueOnError: false,
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.logger == nil {
		r.logger = slog.Default()
	}

	return r
}

// Add appends checkers to the runner.
// Checkers are executed in the order they are added.
func (r *Runner) Add(checkers ...Checker) {
	r.checkers = append(r.checkers, checkers...)
}

// DefaultRunner builds the standard readiness audit for the given manifest.
// Group order is fixed so reports stay deterministic. Groups listed in the
// manifest's skip list are excluded and recorded on the report when the
// runner executes.
func DefaultRunner(m *config.Manifest, opts ...Option) *Runner {
	r := New(opts...)

	all := []Checker{
		NewDesignChecker(m.Colors),
		NewArchitectureChecker(),
		NewAccessibilityChecker(),
		NewResponsivenessChecker(),
		NewQualityChecker(),
		NewDeploymentChecker(),
	}

	for _, c := range all {
		if m.Skips(c.Name()) {
			r.skipped = append(r.skipped, c.Name())
			continue
		}
		r.Add(c)
	}

	return r
}

// Execute runs all checkers in sequence. It respects context cancellation
// and logs each checker's execution.
//
// Design decision: We check context.Done() before each checker rather than
// during, because checkers are fast and synchronous. This still allows the
// run to be interrupted between groups.
//
// Returns the first error encountered if continueOnError is false, or nil
// if all checkers complete (faults are recorded on the report).
func (r *Runner) Execute(ctx context.Context, report *model.Report) error {
	if len(r.skipped) > 0 {
		report.SkippedGroups = append(report.SkippedGroups, r.skipped...)
	}

	for _, c := range r.checkers {
		// Check for cancellation before starting each checker
		select {
		case <-ctx.Done():
			r.logger.Warn("audit cancelled",
				"checker", c.Name(),
				"reason", ctx.Err(),
			)
			report.Err = ctx.Err()
			report.ErrorMessage = ctx.Err().Error()
			return ctx.Err()
		default:
			// Continue with execution
		}

		r.logger.Debug("running checker",
			"checker", c.Name(),
			"project", report.ProjectName,
		)

		if err := c.Do(ctx, report); err != nil {
			r.logger.Error("checker failed",
				"checker", c.Name(),
				"project", report.ProjectName,
				"error", err,
			)

			report.Err = err
			report.ErrorMessage = err.Error()

			if !r.continueOnError {
				return err
			}
		}
	}

	return nil
}

// CheckerCount returns the number of checkers in the runner.
func (r *Runner) CheckerCount() int {
	return len(r.checkers)
}

// CheckerNames returns the names of all checkers in execution order.
func (r *Runner) CheckerNames() []string {
	names := make([]string, len(r.checkers))
	for i, c := range r.checkers {
		names[i] = c.Name()
	}
	return names
}

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/history"
	"github.com/sitecheck/sitecheck/internal/model"
	"github.com/spf13/cobra"
)

// Constants for readiness direction and summary messages.
const (
	readinessDirectionImproved  = "improved"
	readinessDirectionWorsened  = "worsened"
	readinessDirectionUnchanged = "unchanged"
	noRunsMessage               = "No checks"
)

// NewHistoryCmd creates the history command.
// This command browses and compares runs stored in the history database.
func NewHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history [project]",
		Short: "Browse and compare past readiness runs",
		Long: `History displays stored readiness runs and compares them over time.

By default it compares the latest two runs for the given project and
shows:
- Checks that regressed since the previous run
- Checks that were resolved
- The change in pass rate

Runs are recorded automatically by 'sitecheck report' unless --no-save
is given.

Examples:
  # Compare the latest two runs for a project
  sitecheck history "Static Marketing Site"

  # List stored runs for a project
  sitecheck history --list "Static Marketing Site"

  # Compare with a specific run by ID
  sitecheck history --with-run-id 5 "Static Marketing Site"

  # Output comparison in JSON format
  sitecheck history --json "Static Marketing Site"

  # List all projects in the database
  sitecheck history --list-projects`,
		Args: cobra.MaximumNArgs(1),
		RunE: runHistoryCmd,
	}

	// History listing flags
	cmd.Flags().BoolP("list", "l", false,
		"List stored runs for the specified project")
	cmd.Flags().BoolP("list-projects", "L", false,
		"List all projects in the database")
	cmd.Flags().IntP("limit", "n", config.DefaultHistoryLimit,
		"Maximum number of runs to list")

	// Comparison target flags
	cmd.Flags().Int64P("with-run-id", "i", 0,
		"Compare with a specific run by ID (use --list to see available IDs)")

	// Output format flags
	cmd.Flags().BoolP("json", "j", false,
		"Output comparison result in JSON format")

	return cmd
}

// runHistoryCmd executes the history command.
func runHistoryCmd(cmd *cobra.Command, args []string) error {
	// Handle --list-projects flag first (requires database but no project)
	listProjects, err := cmd.Flags().GetBool("list-projects")
	if err != nil {
		return err
	}

	// Validate arguments before opening the database
	var project string
	if !listProjects {
		if len(args) == 0 {
			return errors.New("project name is required (use --list-projects to see available projects)")
		}
		project = args[0]
	}

	// Runs are stored in the XDG data directory
	dbDir := config.XDGDataDir()

	store, err := history.Open(dbDir, history.DefaultOptions())
	if err != nil {
		return fmt.Errorf("failed to open history database: %w", err)
	}
	defer store.Close()

	ctx := context.Background()

	if listProjects {
		return listStoredProjects(ctx, cmd, store)
	}

	listRuns, err := cmd.Flags().GetBool("list")
	if err != nil {
		return err
	}
	if listRuns {
		limit, err := cmd.Flags().GetInt("limit")
		if err != nil {
			return err
		}
		return listRunHistory(ctx, cmd, store, project, limit)
	}

	jsonOutput, err := cmd.Flags().GetBool("json")
	if err != nil {
		return err
	}

	withRunID, err := cmd.Flags().GetInt64("with-run-id")
	if err != nil {
		return err
	}

	return runComparison(ctx, cmd, store, project, withRunID, jsonOutput)
}

// listStoredProjects lists all projects with runs in the database.
func listStoredProjects(ctx context.Context, cmd *cobra.Command, store *history.Store) error {
	projects, err := store.ListProjects(ctx)
	if err != nil {
		return fmt.Errorf("failed to list projects: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(projects) == 0 {
		fmt.Fprintln(out, "No stored runs found in the database.")
		fmt.Fprintln(out, "\nUse 'sitecheck report' to run an audit and record the result.")
		return nil
	}

	fmt.Fprintf(out, "Projects (%d):\n\n", len(projects))
	for _, p := range projects {
		fmt.Fprintf(out, "  • %s\n", p)
	}
	fmt.Fprintln(out, "\nUse 'sitecheck history --list <project>' to see stored runs for a project.")

	return nil
}

// listRunHistory lists stored runs for a specific project.
func listRunHistory(ctx context.Context, cmd *cobra.Command, store *history.Store, project string, limit int) error {
	runs, err := store.History(ctx, project, limit)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintf(out, "No stored runs found for %s\n", project)
		fmt.Fprintln(out, "\nUse 'sitecheck report' to audit this project.")
		return nil
	}

	fmt.Fprintf(out, "Run history for %s (%d runs):\n\n", project, len(runs))
	fmt.Fprintf(out, "  %-6s  %-20s  %-10s  %s\n", "ID", "Date", "Version", "Checks")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 60))

	for _, meta := range runs {
		fmt.Fprintf(out, "  %-6d  %-20s  %-10s  %s\n",
			meta.ID,
			meta.Timestamp.Format("2006-01-02 15:04:05"),
			meta.ProjectVersion,
			formatStatusSummary(meta.StatusSummary),
		)
	}

	fmt.Fprintln(out, "\nUse 'sitecheck history <project>' to compare the latest two runs.")
	fmt.Fprintln(out, "Use 'sitecheck history --with-run-id <id> <project>' to compare with a specific run.")

	return nil
}

// formatStatusSummary formats the status summary map into a short string.
func formatStatusSummary(summary map[string]int) string {
	if summary == nil {
		return "N/A"
	}

	var parts []string
	if v := summary["passed"]; v > 0 {
		parts = append(parts, fmt.Sprintf("P:%d", v))
	}
	if v := summary["failed"]; v > 0 {
		parts = append(parts, fmt.Sprintf("F:%d", v))
	}
	if v := summary["warnings"]; v > 0 {
		parts = append(parts, fmt.Sprintf("W:%d", v))
	}
	if v := summary["infos"]; v > 0 {
		parts = append(parts, fmt.Sprintf("I:%d", v))
	}

	if len(parts) == 0 {
		return noRunsMessage
	}
	return strings.Join(parts, " ")
}

// runComparison compares the latest run against an earlier one.
func runComparison(ctx context.Context, cmd *cobra.Command, store *history.Store, project string, withRunID int64, jsonOutput bool) error {
	reports, err := store.LatestReports(ctx, project, 2)
	if err != nil {
		return fmt.Errorf("failed to get run history: %w", err)
	}

	if len(reports) == 0 {
		return fmt.Errorf("no stored runs found for %s", project)
	}

	if len(reports) < 2 && withRunID == 0 {
		return fmt.Errorf("at least 2 runs are required for comparison (found %d)", len(reports))
	}

	// Latest run is always the current one
	current := reports[0]

	var previous *model.Report
	if withRunID > 0 {
		previous, err = store.GetReportByID(ctx, withRunID)
		if err != nil {
			return fmt.Errorf("failed to get run with ID %d: %w", withRunID, err)
		}
		if previous == nil {
			return fmt.Errorf("run with ID %d not found", withRunID)
		}
		if previous.ProjectName != project {
			return fmt.Errorf("run ID %d belongs to %s, not %s", withRunID, previous.ProjectName, project)
		}
	} else {
		previous = reports[1]
	}

	comparison := compareReports(previous, current)

	if jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(comparison)
	}
	return outputComparisonText(cmd, comparison)
}

// ComparisonResult holds the result of comparing two readiness runs.
type ComparisonResult struct {
	// Project is the audited project's name.
	Project string `json:"project"`

	// PreviousRun contains metadata about the earlier run.
	PreviousRun RunSummary `json:"previous_run"`

	// CurrentRun contains metadata about the latest run.
	CurrentRun RunSummary `json:"current_run"`

	// Regressed contains checks that passed before but fail now, plus
	// failing checks that are new in the current run.
	Regressed []model.Check `json:"regressed,omitempty"`

	// Resolved contains checks that failed before but pass now, plus
	// failing checks that disappeared from the current run.
	Resolved []model.Check `json:"resolved,omitempty"`

	// UnchangedCount is the number of checks with the same status in
	// both runs.
	UnchangedCount int `json:"unchanged_count"`

	// Direction is "improved", "worsened", or "unchanged".
	Direction string `json:"direction"`
}

// RunSummary contains metadata about one run for comparison display.
type RunSummary struct {
	// GeneratedAt is when the run was performed.
	GeneratedAt time.Time `json:"generated_at"`

	// ProjectVersion is the project's version string at run time.
	ProjectVersion string `json:"project_version"`

	// Total is the number of checks in the run.
	Total int `json:"total"`

	// Passed is the number of passing checks.
	Passed int `json:"passed"`

	// Failed is the number of failing checks.
	Failed int `json:"failed"`

	// PassRate is the formatted pass rate.
	PassRate string `json:"pass_rate"`
}

// newRunSummary extracts comparison metadata from a report.
func newRunSummary(r *model.Report) RunSummary {
	if r.Summary == nil {
		r.Summarize()
	}
	return RunSummary{
		GeneratedAt:    r.GeneratedAt,
		ProjectVersion: r.ProjectVersion,
		Total:          r.Summary.Total,
		Passed:         r.Summary.Passed,
		Failed:         r.Summary.Failed,
		PassRate:       r.Summary.PassRate,
	}
}

// compareReports compares two runs and generates a comparison result.
func compareReports(previous, current *model.Report) *ComparisonResult {
	result := &ComparisonResult{
		Project:     current.ProjectName,
		PreviousRun: newRunSummary(previous),
		CurrentRun:  newRunSummary(current),
	}

	previousChecks := checkStatusMap(previous)
	currentChecks := checkStatusMap(current)

	// Regressed: failing now but passed (or was absent) before
	for key, c := range currentChecks {
		if c.Status != model.StatusFail {
			continue
		}
		prev, existed := previousChecks[key]
		if !existed || prev.Status != model.StatusFail {
			result.Regressed = append(result.Regressed, c)
		}
	}

	// Resolved: failed before but passes (or is absent) now
	for key, c := range previousChecks {
		if c.Status != model.StatusFail {
			continue
		}
		cur, exists := currentChecks[key]
		if !exists || cur.Status != model.StatusFail {
			result.Resolved = append(result.Resolved, c)
		}
	}

	// Unchanged: same status in both runs
	for key, c := range currentChecks {
		if prev, existed := previousChecks[key]; existed && prev.Status == c.Status {
			result.UnchangedCount++
		}
	}

	switch {
	case len(result.Regressed) > 0 && len(result.Resolved) == 0:
		result.Direction = readinessDirectionWorsened
	case len(result.Resolved) > 0 && len(result.Regressed) == 0:
		result.Direction = readinessDirectionImproved
	case len(result.Regressed) == 0 && len(result.Resolved) == 0:
		result.Direction = readinessDirectionUnchanged
	default:
		// Mixed changes: fall back to the failed-check delta
		if result.CurrentRun.Failed < result.PreviousRun.Failed {
			result.Direction = readinessDirectionImproved
		} else if result.CurrentRun.Failed > result.PreviousRun.Failed {
			result.Direction = readinessDirectionWorsened
		} else {
			result.Direction = readinessDirectionUnchanged
		}
	}

	return result
}

// checkStatusMap flattens a report's checks into a map keyed by
// group and check name.
func checkStatusMap(r *model.Report) map[string]model.Check {
	result := make(map[string]model.Check)
	for _, g := range r.Groups {
		for _, c := range g.Checks {
			result[g.Name+"|"+c.Name] = c
		}
	}
	return result
}

// outputComparisonText outputs the comparison in human-readable format.
func outputComparisonText(cmd *cobra.Command, result *ComparisonResult) error {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Run Comparison: %s\n", result.Project)
	fmt.Fprintln(out, strings.Repeat("=", 60))

	fmt.Fprintf(out, "\nReadiness: %s\n", formatDirection(result.Direction))

	fmt.Fprintf(out, "\nPrevious run: %s (version %s)\n",
		result.PreviousRun.GeneratedAt.Format("2006-01-02 15:04:05"), result.PreviousRun.ProjectVersion)
	fmt.Fprintf(out, "Current run:  %s (version %s)\n",
		result.CurrentRun.GeneratedAt.Format("2006-01-02 15:04:05"), result.CurrentRun.ProjectVersion)

	fmt.Fprintln(out, "\nCheck Summary:")
	fmt.Fprintf(out, "  %-10s  %-10s  %-10s  %-10s\n", "Metric", "Previous", "Current", "Change")
	fmt.Fprintln(out, "  "+strings.Repeat("-", 45))
	fmt.Fprintf(out, "  %-10s  %-10d  %-10d  %-10s\n", "Total",
		result.PreviousRun.Total, result.CurrentRun.Total,
		formatDelta(result.CurrentRun.Total-result.PreviousRun.Total))
	fmt.Fprintf(out, "  %-10s  %-10d  %-10d  %-10s\n", "Passed",
		result.PreviousRun.Passed, result.CurrentRun.Passed,
		formatDelta(result.CurrentRun.Passed-result.PreviousRun.Passed))
	fmt.Fprintf(out, "  %-10s  %-10d  %-10d  %-10s\n", "Failed",
		result.PreviousRun.Failed, result.CurrentRun.Failed,
		formatDelta(result.CurrentRun.Failed-result.PreviousRun.Failed))
	fmt.Fprintf(out, "  %-10s  %-10s  %-10s\n", "Pass rate",
		result.PreviousRun.PassRate, result.CurrentRun.PassRate)

	if len(result.Regressed) > 0 {
		fmt.Fprintf(out, "\nRegressed Checks (%d):\n", len(result.Regressed))
		for _, c := range result.Regressed {
			fmt.Fprintf(out, "  [+] %s: %s\n", c.Name, c.Message)
			for _, rec := range c.Recommendations {
				fmt.Fprintf(out, "      Recommendation: %s\n", rec)
			}
		}
	}

	if len(result.Resolved) > 0 {
		fmt.Fprintf(out, "\nResolved Checks (%d):\n", len(result.Resolved))
		for _, c := range result.Resolved {
			fmt.Fprintf(out, "  [-] %s: %s\n", c.Name, c.Message)
		}
	}

	if result.UnchangedCount > 0 {
		fmt.Fprintf(out, "\nUnchanged: %d checks\n", result.UnchangedCount)
	}

	return nil
}

// formatDirection formats the readiness direction for display.
func formatDirection(direction string) string {
	switch direction {
	case readinessDirectionImproved:
		return "IMPROVED (fewer failing checks)"
	case readinessDirectionWorsened:
		return "WORSENED (more failing checks)"
	default:
		return "UNCHANGED"
	}
}

// formatDelta formats a numeric delta with sign for display.
func formatDelta(delta int) string {
	if delta > 0 {
		return "+" + strconv.Itoa(delta)
	} else if delta < 0 {
		return strconv.Itoa(delta)
	}
	return "0"
}

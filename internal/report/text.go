package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/sitecheck/sitecheck/internal/model"
)

// TextWriter outputs human-readable text reports.
// This format is designed for terminal display with clear section
// formatting and per-check status tags.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors by default because:
// 1. It works in all terminals without compatibility issues
// 2. It's easier to pipe to files or other tools
// 3. Color can be added as an option later if needed
type TextWriter struct {
	baseWriter

	// verbose enables check details and recommendations in the output.
	verbose bool
}

// TextWriterOption configures a TextWriter.
type TextWriterOption func(*TextWriter)

// WithVerbose enables verbose output with details and recommendations.
func WithVerbose(verbose bool) TextWriterOption {
	return func(w *TextWriter) {
		w.verbose = verbose
	}
}

// NewTextWriter creates a TextWriter that outputs to the given writer.
func NewTextWriter(output io.Writer, opts ...TextWriterOption) *TextWriter {
	w := &TextWriter{
		baseWriter: newBaseWriter(output),
		verbose:    false,
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write renders the report in human-readable format.
// The output is a pure function of the report contents, so identical
// reports always render byte-identically.
func (w *TextWriter) Write(report *model.Report) (int, error) {
	// Ensure the summary reflects the current check groups
	report.Summarize()

	var sb strings.Builder

	w.writeHeader(&sb, report)

	for i := range report.Groups {
		w.writeGroup(&sb, &report.Groups[i])
	}

	if len(report.SkippedGroups) > 0 {
		w.writeSkipped(&sb, report)
	}

	w.writeSummary(&sb, report)
	w.writeFooter(&sb)

	return w.output.Write([]byte(sb.String()))
}

// writeHeader writes the report header with project information.
func (w *TextWriter) writeHeader(sb *strings.Builder, report *model.Report) {
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("                    SITECHECK READINESS REPORT\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("Project:   %s\n", report.ProjectName))
	sb.WriteString(fmt.Sprintf("Version:   %s\n", report.ProjectVersion))
	sb.WriteString(fmt.Sprintf("Generated: %s\n", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")))

	if report.ErrorMessage != "" {
		sb.WriteString(fmt.Sprintf("Status:    ERROR - %s\n", report.ErrorMessage))
	}

	sb.WriteString("\n")
}

// writeGroup writes one check group section.
func (w *TextWriter) writeGroup(sb *strings.Builder, group *model.Group) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString(strings.ToUpper(group.Title))
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, check := range group.Checks {
		sb.WriteString(fmt.Sprintf("  [%s] %s: %s\n", check.Status.String(), check.Name, check.Message))

		if w.verbose || check.Status == model.StatusFail {
			if check.Details != "" {
				sb.WriteString(fmt.Sprintf("         Details: %s\n", check.Details))
			}
			for _, rec := range check.Recommendations {
				sb.WriteString(fmt.Sprintf("         Recommendation: %s\n", rec))
			}
		}
	}
	sb.WriteString("\n")
}

// writeSkipped lists the groups excluded via the manifest skip list.
func (w *TextWriter) writeSkipped(sb *strings.Builder, report *model.Report) {
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SKIPPED GROUPS\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	for _, name := range report.SkippedGroups {
		sb.WriteString(fmt.Sprintf("  [SKIP] %s\n", name))
	}
	sb.WriteString("\n")
}

// writeSummary writes the pass-rate summary section.
func (w *TextWriter) writeSummary(sb *strings.Builder, report *model.Report) {
	s := report.Summary

	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n")
	sb.WriteString("SUMMARY\n")
	sb.WriteString(strings.Repeat("-", 70))
	sb.WriteString("\n\n")

	sb.WriteString(fmt.Sprintf("  Total checks:   %d\n", s.Total))
	sb.WriteString(fmt.Sprintf("  Passed:         %d\n", s.Passed))
	if s.Failed > 0 {
		sb.WriteString(fmt.Sprintf("  Failed:         %d\n", s.Failed))
	}
	if s.Warnings > 0 {
		sb.WriteString(fmt.Sprintf("  Warnings:       %d\n", s.Warnings))
	}
	sb.WriteString(fmt.Sprintf("  Pass rate:      %s\n", s.PassRate))
	sb.WriteString(fmt.Sprintf("  Overall status: %s\n", s.OverallStatus.String()))
	sb.WriteString("\n")
}

// writeFooter writes the report footer.
func (w *TextWriter) writeFooter(sb *strings.Builder) {
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
	sb.WriteString("Report generated by sitecheck\n")
	sb.WriteString("https://github.com/sitecheck/sitecheck\n")
	sb.WriteString(strings.Repeat("=", 70))
	sb.WriteString("\n")
}

package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
	"github.com/sitecheck/sitecheck/internal/model"
)

// MarkdownWriter outputs reports in Markdown format.
// This format is designed for documentation and sharing.
//
// Design decision: We use the nao1215/markdown library for fluent markdown
// generation which provides:
// 1. Type-safe markdown generation
// 2. Support for tables, lists, and code blocks
// 3. GitHub-flavored markdown alerts
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write renders the report in Markdown format.
func (w *MarkdownWriter) Write(report *model.Report) (int, error) {
	report.Summarize()

	md := markdown.NewMarkdown(w.output)

	w.writeHeader(md, report)
	w.writeSummary(md, report)
	w.writeGroups(md, report)
	w.writeFooter(md)

	return len(md.String()), md.Build()
}

// writeHeader writes the report header with project information.
func (w *MarkdownWriter) writeHeader(md *markdown.Markdown, report *model.Report) {
	md.H1("Sitecheck Readiness Report")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Project", report.ProjectName},
			{"Version", report.ProjectVersion},
			{"Generated", report.GeneratedAt.Format("2006-01-02 15:04:05 MST")},
			{"Status", w.getStatusText(report)},
		},
	})
	md.PlainText("")
}

// getStatusText returns the status text based on report state.
func (w *MarkdownWriter) getStatusText(report *model.Report) string {
	if report.ErrorMessage != "" {
		return "❌ Error - " + report.ErrorMessage
	}
	if report.Summary.OverallStatus == model.StatusPass {
		return "✅ " + report.Summary.OverallStatus.String()
	}
	return "⚠️ " + report.Summary.OverallStatus.String()
}

// writeSummary writes the pass-rate summary section.
func (w *MarkdownWriter) writeSummary(md *markdown.Markdown, report *model.Report) {
	s := report.Summary

	md.H2("Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Metric", "Value"},
		Rows: [][]string{
			{"Total checks", strconv.Itoa(s.Total)},
			{"Passed", strconv.Itoa(s.Passed)},
			{"Failed", strconv.Itoa(s.Failed)},
			{"Warnings", strconv.Itoa(s.Warnings)},
			{"Pass rate", "**" + s.PassRate + "**"},
		},
	})
	md.PlainText("")

	if s.Total > 0 {
		w.writePieChart(md, s)
	}

	w.writeAlert(md, s)
}

// writePieChart writes a mermaid pie chart of the status distribution.
func (w *MarkdownWriter) writePieChart(md *markdown.Markdown, s *model.Summary) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Check Status Distribution"),
		piechart.WithShowData(true),
	)

	if s.Passed > 0 {
		chart.LabelAndIntValue("Pass", uint64(s.Passed))
	}
	if s.Failed > 0 {
		chart.LabelAndIntValue("Fail", uint64(s.Failed))
	}
	if s.Warnings > 0 {
		chart.LabelAndIntValue("Warning", uint64(s.Warnings))
	}
	if s.Infos > 0 {
		chart.LabelAndIntValue("Info", uint64(s.Infos))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// writeAlert writes an appropriate alert based on the summary.
func (w *MarkdownWriter) writeAlert(md *markdown.Markdown, s *model.Summary) {
	switch {
	case s.Total == 0:
		md.Note("No checks were run; the pass rate is not applicable.")
	case s.Failed > 0:
		md.Warningf(
			"%d check(s) failed. The site is not ready to publish until they are resolved.",
			s.Failed,
		)
	case s.Warnings > 0:
		md.Importantf(
			"%d check(s) raised warnings that should be reviewed before publishing.",
			s.Warnings,
		)
	default:
		md.Tip("All checks passed. The site is ready to publish.")
	}
	md.PlainText("")
}

// writeGroups writes one section per check group, plus skipped groups.
func (w *MarkdownWriter) writeGroups(md *markdown.Markdown, report *model.Report) {
	md.H2("Checks")
	md.PlainText("")

	if len(report.Groups) == 0 {
		md.PlainText("No check groups were run.")
		md.PlainText("")
	}

	for i := range report.Groups {
		w.writeGroupTable(md, &report.Groups[i])
	}

	if len(report.SkippedGroups) > 0 {
		md.H2("Skipped Groups")
		md.PlainText("")
		md.BulletList(report.SkippedGroups...)
		md.PlainText("")
	}
}

// writeGroupTable writes a table of checks for one group.
func (w *MarkdownWriter) writeGroupTable(md *markdown.Markdown, group *model.Group) {
	md.H3(group.Title)
	md.PlainText("")

	rows := make([][]string, len(group.Checks))
	for i, c := range group.Checks {
		details := c.Details
		if details == "" {
			details = "-"
		}
		rows[i] = []string{
			c.Status.String(),
			c.Name,
			c.Message,
			truncateString(details, 50),
		}
	}

	md.Table(markdown.TableSet{
		Header: []string{"Status", "Check", "Message", "Details"},
		Rows:   rows,
	})
	md.PlainText("")

	// Expand recommendations for checks that carry them
	for _, c := range group.Checks {
		if len(c.Recommendations) == 0 {
			continue
		}
		for _, rec := range c.Recommendations {
			md.Details(c.Name, rec)
		}
	}
	md.PlainText("")
}

// writeFooter writes the report footer.
func (w *MarkdownWriter) writeFooter(md *markdown.Markdown) {
	md.HorizontalRule()
	md.PlainText("")
	md.PlainTextf("*Report generated by [sitecheck](https://github.com/sitecheck/sitecheck)*")
}

// truncateString truncates a string to maxLen characters with ellipsis.
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return s[:maxLen]
	}
	return s[:maxLen-3] + "..."
}

package model

import (
	"fmt"
	"time"
)

// PassRateNotApplicable is reported instead of a percentage when no checks
// were executed. This is the documented alternative to dividing by zero.
const PassRateNotApplicable = "not applicable"

// Group is an ordered, named collection of checks covering one concern
// (design, accessibility, deployment, ...).
type Group struct {
	// Name is the machine-readable group identifier (e.g., "accessibility").
	// This is the key used to skip groups via the manifest.
	Name string `json:"name"`

	// Title is the human-readable group heading used in rendered reports.
	Title string `json:"title"`

	// Checks are the group's validation outcomes in emission order.
	Checks []Check `json:"checks"`
}

// Summary aggregates check counts across all groups of a report.
type Summary struct {
	// Total is the number of checks across all groups.
	Total int `json:"total"`

	// Passed is the number of checks with StatusPass.
	Passed int `json:"passed"`

	// Failed is the number of checks with StatusFail.
	Failed int `json:"failed"`

	// Warnings is the number of checks with StatusWarning.
	Warnings int `json:"warnings"`

	// Infos is the number of checks with StatusInfo.
	Infos int `json:"infos"`

	// PassRate is Passed/Total formatted to one decimal percent
	// (e.g., "96.4%"), or PassRateNotApplicable when Total is zero.
	PassRate string `json:"pass_rate"`

	// OverallStatus is StatusPass iff every check passed, StatusWarning
	// otherwise.
	OverallStatus Status `json:"overall_status"`

	// OverallStatusText is the human-readable overall status.
	OverallStatusText string `json:"overall_status_text"`
}

// Report is the aggregated result of one readiness audit.
// All entities are constructed fresh per invocation, used once to render
// a report, then discarded. There is no cross-invocation state.
type Report struct {
	// ProjectName is the audited project's display name.
	ProjectName string `json:"project_name"`

	// ProjectVersion is the audited project's version string.
	ProjectVersion string `json:"project_version"`

	// GeneratedAt is the timestamp the audit ran. It is injected by the
	// caller rather than read inside the model so that identical inputs
	// produce byte-identical reports.
	GeneratedAt time.Time `json:"generated_at"`

	// Groups holds the check groups in execution order.
	Groups []Group `json:"groups"`

	// SkippedGroups lists group names excluded via the manifest.
	SkippedGroups []string `json:"skipped_groups,omitempty"`

	// Summary holds the aggregated counts. Populated by Summarize.
	Summary *Summary `json:"summary,omitempty"`

	// Err records a fault that interrupted the audit, if any.
	Err error `json:"-"` // Excluded from JSON

	// ErrorMessage is the string form of Err for serialization.
	ErrorMessage string `json:"error,omitempty"` //nolint:tagliatelle // error is conventional
}

// NewReport creates an empty report for the given project.
func NewReport(projectName, projectVersion string, generatedAt time.Time) *Report {
	return &Report{
		ProjectName:    projectName,
		ProjectVersion: projectVersion,
		GeneratedAt:    generatedAt,
		Groups:         make([]Group, 0),
	}
}

// AddGroup appends a named group of checks to the report.
func (r *Report) AddGroup(name, title string, checks []Check) {
	r.Groups = append(r.Groups, Group{
		Name:   name,
		Title:  title,
		Checks: checks,
	})
}

// Group returns the group with the given name, or nil if it is absent.
func (r *Report) Group(name string) *Group {
	for i := range r.Groups {
		if r.Groups[i].Name == name {
			return &r.Groups[i]
		}
	}
	return nil
}

// TotalChecks returns the number of checks across all groups.
func (r *Report) TotalChecks() int {
	total := 0
	for _, g := range r.Groups {
		total += len(g.Checks)
	}
	return total
}

// ChecksByStatus returns every check with the given status, preserving
// group and emission order.
func (r *Report) ChecksByStatus(status Status) []Check {
	var result []Check
	for _, g := range r.Groups {
		for _, c := range g.Checks {
			if c.Status == status {
				result = append(result, c)
			}
		}
	}
	return result
}

// Summarize counts checks across all groups, computes the pass rate, and
// stores the result on the report. A report with zero checks reports
// PassRateNotApplicable instead of dividing by zero. OverallStatus is
// StatusPass iff Passed equals Total (vacuously true for an empty report),
// StatusWarning otherwise.
func (r *Report) Summarize() *Summary {
	s := &Summary{}

	for _, g := range r.Groups {
		for _, c := range g.Checks {
			s.Total++
			switch c.Status {
			case StatusPass:
				s.Passed++
			case StatusFail:
				s.Failed++
			case StatusWarning:
				s.Warnings++
			case StatusInfo:
				s.Infos++
			}
		}
	}

	if s.Total == 0 {
		s.PassRate = PassRateNotApplicable
	} else {
		s.PassRate = fmt.Sprintf("%.1f%%", float64(s.Passed)/float64(s.Total)*100)
	}

	if s.Passed == s.Total {
		s.OverallStatus = StatusPass
	} else {
		s.OverallStatus = StatusWarning
	}
	s.OverallStatusText = s.OverallStatus.String()

	r.Summary = s
	return s
}

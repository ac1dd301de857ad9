package model

import (
	"testing"
	"time"
)

// testTime is a fixed timestamp used across report tests so that output
// comparisons are deterministic.
var testTime = time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)

// TestNewReport tests report construction.
func TestNewReport(t *testing.T) {
	t.Parallel()

	r := NewReport("Sunrise Roasters", "1.2.0", testTime)

	if r.ProjectName != "Sunrise Roasters" {
		t.Errorf("expected project name 'Sunrise Roasters', got %q", r.ProjectName)
	}
	if r.ProjectVersion != "1.2.0" {
		t.Errorf("expected version '1.2.0', got %q", r.ProjectVersion)
	}
	if !r.GeneratedAt.Equal(testTime) {
		t.Errorf("expected generated at %v, got %v", testTime, r.GeneratedAt)
	}
	if len(r.Groups) != 0 {
		t.Errorf("expected empty groups, got %d", len(r.Groups))
	}
}

// TestReportAddGroup tests group accumulation and lookup.
func TestReportAddGroup(t *testing.T) {
	t.Parallel()

	r := NewReport("Test", "0.1.0", testTime)
	r.AddGroup("design", "Design", []Check{
		NewCheck("primary_color", StatusPass, "ok"),
	})
	r.AddGroup("accessibility", "Accessibility", []Check{
		NewCheck("alt_text", StatusPass, "ok"),
		NewCheck("lang_attribute", StatusPass, "ok"),
	})

	if len(r.Groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(r.Groups))
	}
	if r.Groups[0].Name != "design" || r.Groups[1].Name != "accessibility" {
		t.Error("group order not preserved")
	}
	if r.TotalChecks() != 3 {
		t.Errorf("expected 3 total checks, got %d", r.TotalChecks())
	}

	t.Run("lookup by name", func(t *testing.T) {
		t.Parallel()

		g := r.Group("accessibility")
		if g == nil {
			t.Fatal("expected accessibility group")
		}
		if len(g.Checks) != 2 {
			t.Errorf("expected 2 checks, got %d", len(g.Checks))
		}
		if r.Group("missing") != nil {
			t.Error("expected nil for unknown group")
		}
	})
}

// TestReportSummarize tests summary aggregation across groups.
func TestReportSummarize(t *testing.T) {
	t.Parallel()

	t.Run("all passing yields overall pass", func(t *testing.T) {
		t.Parallel()

		r := NewReport("Test", "0.1.0", testTime)
		r.AddGroup("architecture", "Architecture", []Check{
			NewCheck("a", StatusPass, "ok"),
			NewCheck("b", StatusPass, "ok"),
		})
		r.AddGroup("quality", "Code Quality", []Check{
			NewCheck("c", StatusPass, "ok"),
		})

		s := r.Summarize()
		if s.Total != 3 {
			t.Errorf("expected total 3, got %d", s.Total)
		}
		if s.Passed != 3 {
			t.Errorf("expected passed 3, got %d", s.Passed)
		}
		if s.PassRate != "100.0%" {
			t.Errorf("expected pass rate '100.0%%', got %q", s.PassRate)
		}
		if s.OverallStatus != StatusPass {
			t.Errorf("expected overall StatusPass, got %v", s.OverallStatus)
		}
		if s.OverallStatusText != "PASS" {
			t.Errorf("expected overall status text 'PASS', got %q", s.OverallStatusText)
		}
	})

	t.Run("any shortfall yields warning", func(t *testing.T) {
		t.Parallel()

		testCases := []struct {
			name     string
			statuses []Status
			passRate string
		}{
			{"one fail", []Status{StatusPass, StatusFail}, "50.0%"},
			{"one warning", []Status{StatusPass, StatusPass, StatusWarning}, "66.7%"},
			{"one info", []Status{StatusPass, StatusInfo}, "50.0%"},
			{"all fail", []Status{StatusFail, StatusFail}, "0.0%"},
		}

		for _, tc := range testCases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				r := NewReport("Test", "0.1.0", testTime)
				checks := make([]Check, 0, len(tc.statuses))
				for i, status := range tc.statuses {
					checks = append(checks, NewCheck(string(rune('a'+i)), status, "msg"))
				}
				r.AddGroup("group", "Group", checks)

				s := r.Summarize()
				if s.OverallStatus != StatusWarning {
					t.Errorf("expected overall StatusWarning, got %v", s.OverallStatus)
				}
				if s.PassRate != tc.passRate {
					t.Errorf("expected pass rate %q, got %q", tc.passRate, s.PassRate)
				}
			})
		}
	})

	t.Run("zero checks never divides", func(t *testing.T) {
		t.Parallel()

		r := NewReport("Test", "0.1.0", testTime)
		s := r.Summarize()

		if s.Total != 0 {
			t.Errorf("expected total 0, got %d", s.Total)
		}
		if s.PassRate != PassRateNotApplicable {
			t.Errorf("expected %q, got %q", PassRateNotApplicable, s.PassRate)
		}
		// Passed == Total holds vacuously, so the overall status is pass.
		if s.OverallStatus != StatusPass {
			t.Errorf("expected overall StatusPass for empty report, got %v", s.OverallStatus)
		}
	})

	t.Run("counts by status", func(t *testing.T) {
		t.Parallel()

		r := NewReport("Test", "0.1.0", testTime)
		r.AddGroup("group", "Group", []Check{
			NewCheck("a", StatusPass, "msg"),
			NewCheck("b", StatusFail, "msg"),
			NewCheck("c", StatusWarning, "msg"),
			NewCheck("d", StatusInfo, "msg"),
			NewCheck("e", StatusPass, "msg"),
		})

		s := r.Summarize()
		if s.Passed != 2 || s.Failed != 1 || s.Warnings != 1 || s.Infos != 1 {
			t.Errorf("unexpected counts: passed=%d failed=%d warnings=%d infos=%d",
				s.Passed, s.Failed, s.Warnings, s.Infos)
		}
		if r.Summary != s {
			t.Error("expected summary to be stored on the report")
		}
	})
}

// TestReportChecksByStatus tests status filtering across groups.
func TestReportChecksByStatus(t *testing.T) {
	t.Parallel()

	r := NewReport("Test", "0.1.0", testTime)
	r.AddGroup("first", "First", []Check{
		NewCheck("a", StatusPass, "msg"),
		NewCheck("b", StatusFail, "msg"),
	})
	r.AddGroup("second", "Second", []Check{
		NewCheck("c", StatusFail, "msg"),
	})

	fails := r.ChecksByStatus(StatusFail)
	if len(fails) != 2 {
		t.Fatalf("expected 2 failing checks, got %d", len(fails))
	}
	if fails[0].Name != "b" || fails[1].Name != "c" {
		t.Errorf("expected group order preserved, got %q, %q", fails[0].Name, fails[1].Name)
	}

	if got := r.ChecksByStatus(StatusWarning); len(got) != 0 {
		t.Errorf("expected no warnings, got %d", len(got))
	}
}

package checker

import (
	"context"
	"testing"

	"github.com/sitecheck/sitecheck/internal/model"
)

// TestDesignChecker tests palette validation group assembly.
func TestDesignChecker(t *testing.T) {
	t.Parallel()

	t.Run("valid palette yields five passing checks", func(t *testing.T) {
		t.Parallel()

		c := NewDesignChecker(model.DefaultColorScheme())
		report := model.NewReport("Test", "0.1.0", testTime)
		if err := c.Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		g := report.Group(GroupDesign)
		if g == nil {
			t.Fatal("expected design group")
		}
		if g.Title != "Design & Color Scheme" {
			t.Errorf("unexpected group title %q", g.Title)
		}
		if len(g.Checks) != 5 {
			t.Fatalf("expected 5 checks, got %d", len(g.Checks))
		}
		for _, chk := range g.Checks {
			if chk.Status != model.StatusPass {
				t.Errorf("check %s: expected pass, got %v", chk.Name, chk.Status)
			}
		}
	})

	t.Run("malformed color becomes a fail check with a recommendation", func(t *testing.T) {
		t.Parallel()

		scheme := model.DefaultColorScheme()
		scheme.Primary = "#12345"

		c := NewDesignChecker(scheme)
		report := model.NewReport("Test", "0.1.0", testTime)
		if err := c.Do(context.Background(), report); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		fails := report.ChecksByStatus(model.StatusFail)
		if len(fails) != 1 {
			t.Fatalf("expected 1 failing check, got %d", len(fails))
		}
		if fails[0].Name != "primary_color" {
			t.Errorf("expected primary_color to fail, got %q", fails[0].Name)
		}
		if len(fails[0].Recommendations) == 0 {
			t.Error("expected a recommendation on the failing check")
		}
	})
}

// TestStaticCheckers tests the literal requirement tables.
func TestStaticCheckers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		checker    Checker
		group      string
		title      string
		checkCount int
	}{
		{
			name:       "architecture",
			checker:    NewArchitectureChecker(),
			group:      GroupArchitecture,
			title:      "Architecture",
			checkCount: 4,
		},
		{
			name:       "accessibility",
			checker:    NewAccessibilityChecker(),
			group:      GroupAccessibility,
			title:      "Accessibility",
			checkCount: 5,
		},
		{
			name:       "responsiveness",
			checker:    NewResponsivenessChecker(),
			group:      GroupResponsiveness,
			title:      "Responsiveness",
			checkCount: 3,
		},
		{
			name:       "quality",
			checker:    NewQualityChecker(),
			group:      GroupQuality,
			title:      "Code Quality",
			checkCount: 3,
		},
		{
			name:       "deployment",
			checker:    NewDeploymentChecker(),
			group:      GroupDeployment,
			title:      "Deployment Readiness",
			checkCount: 3,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := tt.checker.Name(); got != tt.group {
				t.Errorf("Name() = %q, want %q", got, tt.group)
			}

			report := model.NewReport("Test", "0.1.0", testTime)
			if err := tt.checker.Do(context.Background(), report); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			g := report.Group(tt.group)
			if g == nil {
				t.Fatalf("expected group %q", tt.group)
			}
			if g.Title != tt.title {
				t.Errorf("group title = %q, want %q", g.Title, tt.title)
			}
			if len(g.Checks) != tt.checkCount {
				t.Fatalf("expected %d checks, got %d", tt.checkCount, len(g.Checks))
			}
			for _, chk := range g.Checks {
				if chk.Status != model.StatusPass {
					t.Errorf("check %s: expected pass, got %v", chk.Name, chk.Status)
				}
				if chk.Message == "" {
					t.Errorf("check %s: expected a message", chk.Name)
				}
			}
		})
	}
}

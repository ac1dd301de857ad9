package checker

import (
	"context"
	"testing"
	"time"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/model"
)

// TestBatchRunnerRun tests concurrent multi-manifest auditing.
func TestBatchRunnerRun(t *testing.T) {
	t.Parallel()

	factory := func(m *config.Manifest) *Runner {
		return DefaultRunner(m)
	}

	t.Run("preserves manifest order", func(t *testing.T) {
		t.Parallel()

		manifests := make([]*config.Manifest, 5)
		for i := range manifests {
			m := config.DefaultManifest()
			m.Project.Name = string(rune('A' + i))
			manifests[i] = m
		}

		b := NewBatchRunner(factory,
			WithConcurrency(3),
			WithNow(func() time.Time { return testTime }),
		)
		reports, err := b.Run(context.Background(), manifests)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(reports) != len(manifests) {
			t.Fatalf("expected %d reports, got %d", len(manifests), len(reports))
		}
		for i, r := range reports {
			if r == nil {
				t.Fatalf("report %d is nil", i)
			}
			if r.ProjectName != manifests[i].Project.Name {
				t.Errorf("report %d: project %q, want %q", i, r.ProjectName, manifests[i].Project.Name)
			}
			if !r.GeneratedAt.Equal(testTime) {
				t.Errorf("report %d: timestamp %v, want %v", i, r.GeneratedAt, testTime)
			}
		}
	})

	t.Run("summarizes every report", func(t *testing.T) {
		t.Parallel()

		good := config.DefaultManifest()
		bad := config.DefaultManifest()
		bad.Colors.Text = "dark"

		b := NewBatchRunner(factory, WithNow(func() time.Time { return testTime }))
		reports, err := b.Run(context.Background(), []*config.Manifest{good, bad})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if reports[0].Summary.OverallStatus != model.StatusPass {
			t.Errorf("good manifest: expected pass, got %v", reports[0].Summary.OverallStatus)
		}
		if reports[1].Summary.OverallStatus != model.StatusWarning {
			t.Errorf("bad manifest: expected warning, got %v", reports[1].Summary.OverallStatus)
		}
		if reports[1].Summary.Failed != 1 {
			t.Errorf("bad manifest: expected 1 failed check, got %d", reports[1].Summary.Failed)
		}
	})

	t.Run("empty batch yields no reports", func(t *testing.T) {
		t.Parallel()

		b := NewBatchRunner(factory)
		reports, err := b.Run(context.Background(), nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(reports) != 0 {
			t.Errorf("expected no reports, got %d", len(reports))
		}
	})

	t.Run("cancellation surfaces from Run", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		manifests := []*config.Manifest{config.DefaultManifest()}
		b := NewBatchRunner(factory)
		if _, err := b.Run(ctx, manifests); err == nil {
			t.Error("expected a cancellation error")
		}
	})
}

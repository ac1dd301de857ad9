package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sitecheck/sitecheck/internal/config"
	"github.com/sitecheck/sitecheck/internal/report"
)

// TestNewReportCmd tests the report command creation.
func TestNewReportCmd(t *testing.T) {
	t.Parallel()

	cmd := NewReportCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "report [manifest...]" {
			t.Errorf("expected use 'report [manifest...]', got %q", cmd.Use)
		}
	})

	t.Run("has format flags", func(t *testing.T) {
		t.Parallel()
		for flagName, shorthand := range map[string]string{
			"json":     "j",
			"markdown": "m",
			"output":   "o",
			"batch":    "b",
		} {
			flag := cmd.Flags().Lookup(flagName)
			if flag == nil {
				t.Fatalf("expected %s flag", flagName)
			}
			if flag.Shorthand != shorthand {
				t.Errorf("%s: expected shorthand %q, got %q", flagName, shorthand, flag.Shorthand)
			}
		}
	})

	t.Run("has no-save flag", func(t *testing.T) {
		t.Parallel()
		if cmd.Flags().Lookup("no-save") == nil {
			t.Error("expected no-save flag")
		}
	})

	t.Run("batch flag defaults to config default", func(t *testing.T) {
		t.Parallel()
		flag := cmd.Flags().Lookup("batch")
		if flag == nil {
			t.Fatal("expected batch flag")
		}
		if flag.DefValue != "4" {
			t.Errorf("expected default '4', got %q", flag.DefValue)
		}
	})
}

// writeTestManifest writes a minimal manifest file and returns its path.
func writeTestManifest(t *testing.T, name string) string {
	t.Helper()

	manifest := `project:
  name: "` + name + `"
  version: "3.1.4"
colors:
  primary: "#2C3E50"
  secondary: "#E74C3C"
  text: "#333333"
  background: "#FFFFFF"
  accent: "#3498DB"
`
	path := filepath.Join(t.TempDir(), ".sitecheck")
	if err := os.WriteFile(path, []byte(manifest), 0600); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}

// TestRunReportCmd tests end-to-end report command execution.
func TestRunReportCmd(t *testing.T) {
	t.Run("writes text report to file", func(t *testing.T) {
		manifestPath := writeTestManifest(t, "Example Site")
		outputPath := filepath.Join(t.TempDir(), "out", "report.txt")

		cmd := NewReportCmd()
		cmd.SetArgs([]string{manifestPath, "--no-save", "-o", outputPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}

		out := string(content)
		if !strings.Contains(out, "SITECHECK READINESS REPORT") {
			t.Error("expected report banner")
		}
		if !strings.Contains(out, "Example Site") {
			t.Error("expected project name in report")
		}
		if !strings.Contains(out, "3.1.4") {
			t.Error("expected project version in report")
		}
		if !strings.Contains(out, "Pass rate:      100.0%") {
			t.Error("expected a full pass rate for the default requirement data")
		}
	})

	t.Run("writes json report to file", func(t *testing.T) {
		manifestPath := writeTestManifest(t, "JSON Site")
		outputPath := filepath.Join(t.TempDir(), "report.json")

		cmd := NewReportCmd()
		cmd.SetArgs([]string{manifestPath, "--no-save", "--json", "-o", outputPath})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		content, err := os.ReadFile(outputPath)
		if err != nil {
			t.Fatalf("failed to read report: %v", err)
		}

		var wrapped report.JSONReport
		if err := json.Unmarshal(content, &wrapped); err != nil {
			t.Fatalf("report is not valid JSON: %v", err)
		}
		if wrapped.Report == nil || wrapped.Report.ProjectName != "JSON Site" {
			t.Error("expected wrapped report with project name")
		}
		if wrapped.Report.Summary == nil || wrapped.Report.Summary.Passed != wrapped.Report.Summary.Total {
			t.Error("expected all checks to pass for a valid manifest")
		}
	})

	t.Run("report file has owner-only permissions", func(t *testing.T) {
		manifestPath := writeTestManifest(t, "Perm Site")
		outputPath := filepath.Join(t.TempDir(), "report.txt")

		cmd := NewReportCmd()
		cmd.SetArgs([]string{manifestPath, "--no-save", "-o", outputPath})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		info, err := os.Stat(outputPath)
		if err != nil {
			t.Fatalf("failed to stat report: %v", err)
		}
		if perm := info.Mode().Perm(); perm != 0600 {
			t.Errorf("expected permissions 0600, got %o", perm)
		}
	})

	t.Run("multi-manifest run writes one file per project", func(t *testing.T) {
		first := writeTestManifest(t, "Alpha Site")
		second := writeTestManifest(t, "Beta Site")
		outputPath := filepath.Join(t.TempDir(), "report.txt")

		cmd := NewReportCmd()
		cmd.SetArgs([]string{first, second, "--no-save", "--batch", "2", "-o", outputPath})
		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if _, err := os.Stat(outputPath); !os.IsNotExist(err) {
			t.Errorf("expected no report at the bare output path, stat err = %v", err)
		}

		for project, path := range map[string]string{
			"Alpha Site": filepath.Join(filepath.Dir(outputPath), "report-Alpha-Site.txt"),
			"Beta Site":  filepath.Join(filepath.Dir(outputPath), "report-Beta-Site.txt"),
		} {
			content, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("failed to read report for %s: %v", project, err)
			}
			if !strings.Contains(string(content), project) {
				t.Errorf("report %s missing project name %q", path, project)
			}
		}
	})

	t.Run("rejects conflicting report formats", func(t *testing.T) {
		manifestPath := writeTestManifest(t, "Conflict Site")

		cmd := NewReportCmd()
		cmd.SetArgs([]string{manifestPath, "--no-save", "--json", "--markdown"})

		err := cmd.Execute()
		if err == nil {
			t.Fatal("expected an error for conflicting formats")
		}
		if !strings.Contains(err.Error(), "configuration error") {
			t.Errorf("expected configuration error, got %v", err)
		}
	})

	t.Run("fails for a missing explicit manifest", func(t *testing.T) {
		cmd := NewReportCmd()
		cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.yaml"), "--no-save"})

		if err := cmd.Execute(); err == nil {
			t.Error("expected an error for a missing manifest")
		}
	})
}

// TestReportFilePath tests the per-project output path resolution.
func TestReportFilePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		base    string
		project string
		total   int
		want    string
	}{
		{
			name:    "stdout stays empty",
			base:    "",
			project: "Acme Landing",
			total:   3,
			want:    "",
		},
		{
			name:    "single manifest keeps the given path",
			base:    "out/report.txt",
			project: "Acme Landing",
			total:   1,
			want:    "out/report.txt",
		},
		{
			name:    "multiple manifests suffix the project name",
			base:    "out/report.txt",
			project: "Acme Landing",
			total:   2,
			want:    "out/report-Acme-Landing.txt",
		},
		{
			name:    "path without extension",
			base:    "report",
			project: "Beta",
			total:   2,
			want:    "report-Beta",
		},
		{
			name:    "unsafe characters are mapped away",
			base:    "report.md",
			project: "a/b:c site",
			total:   2,
			want:    "report-a-b-c-site.md",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := reportFilePath(tt.base, tt.project, tt.total)
			if got != tt.want {
				t.Errorf("reportFilePath(%q, %q, %d) = %q, want %q", tt.base, tt.project, tt.total, got, tt.want)
			}
		})
	}
}

// TestBuildConfig tests flag-to-config mapping.
func TestBuildConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		t.Parallel()

		cmd := NewReportCmd()
		if err := cmd.ParseFlags([]string{}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.BatchSize != config.DefaultBatchSize {
			t.Errorf("batch size = %d, want %d", cfg.BatchSize, config.DefaultBatchSize)
		}
		if !cfg.SaveToDB {
			t.Error("expected SaveToDB to default to true")
		}
		if cfg.JSONReport || cfg.MarkdownReport {
			t.Error("expected plain text output by default")
		}
	})

	t.Run("no-save disables history", func(t *testing.T) {
		t.Parallel()

		cmd := NewReportCmd()
		if err := cmd.ParseFlags([]string{"--no-save"}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.SaveToDB {
			t.Error("expected SaveToDB to be false")
		}
	})

	t.Run("positional args become manifest paths", func(t *testing.T) {
		t.Parallel()

		cmd := NewReportCmd()
		if err := cmd.ParseFlags([]string{}); err != nil {
			t.Fatalf("failed to parse flags: %v", err)
		}

		cfg, err := buildConfig(cmd, []string{"a.yaml", "b.yaml"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(cfg.ManifestPaths) != 2 {
			t.Errorf("manifest paths = %v, want 2 entries", cfg.ManifestPaths)
		}
	})
}

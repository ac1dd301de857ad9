package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// TestLoadManifest tests manifest loading from YAML files.
func TestLoadManifest(t *testing.T) {
	t.Parallel()

	t.Run("loads a full manifest", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".sitecheck")
		content := `project:
  name: Sunrise Roasters
  version: 1.2.0
  url: https://sunrise-roasters.example
colors:
  primary: "#2C3E50"
  secondary: "#E74C3C"
  text: "#333333"
  background: "#FFFFFF"
  accent: "#3498DB"
skip:
  - deployment
`
		if err := os.WriteFile(path, []byte(content), 0600); err != nil {
			t.Fatal(err)
		}

		m, err := LoadManifest(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if m.Project.Name != "Sunrise Roasters" {
			t.Errorf("expected 'Sunrise Roasters', got %q", m.Project.Name)
		}
		if m.Project.Version != "1.2.0" {
			t.Errorf("expected '1.2.0', got %q", m.Project.Version)
		}
		if m.Colors.Primary != "#2C3E50" {
			t.Errorf("expected '#2C3E50', got %q", m.Colors.Primary)
		}
		if !m.Skips("deployment") {
			t.Error("expected deployment to be skipped")
		}
	})

	t.Run("normalizes a sparse manifest", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".sitecheck")
		if err := os.WriteFile(path, []byte("project:\n  name: Sparse\n"), 0600); err != nil {
			t.Fatal(err)
		}

		m, err := LoadManifest(path)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Project.Name != "Sparse" {
			t.Errorf("expected 'Sparse', got %q", m.Project.Name)
		}
		if m.Project.Version != DefaultProjectVersion {
			t.Errorf("expected default version, got %q", m.Project.Version)
		}
		if m.Colors.Primary == "" {
			t.Error("expected default palette to be filled in")
		}
	})

	t.Run("missing file returns ErrManifestNotFound", func(t *testing.T) {
		t.Parallel()

		_, err := LoadManifest(filepath.Join(t.TempDir(), "nope.yaml"))
		if !errors.Is(err, ErrManifestNotFound) {
			t.Errorf("expected ErrManifestNotFound, got %v", err)
		}
	})

	t.Run("invalid YAML returns an error", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), ".sitecheck")
		if err := os.WriteFile(path, []byte("project: [not: valid\n"), 0600); err != nil {
			t.Fatal(err)
		}

		if _, err := LoadManifest(path); err == nil {
			t.Error("expected an error for invalid YAML")
		}
	})
}

// TestFindManifest tests manifest discovery.
func TestFindManifest(t *testing.T) {
	t.Parallel()

	t.Run("explicit existing path wins", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "custom.yaml")
		if err := os.WriteFile(path, []byte("{}"), 0600); err != nil {
			t.Fatal(err)
		}

		if got := FindManifest(path); got != path {
			t.Errorf("expected %q, got %q", path, got)
		}
	})

	t.Run("explicit missing path returns empty", func(t *testing.T) {
		t.Parallel()

		if got := FindManifest(filepath.Join(t.TempDir(), "missing.yaml")); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})
}

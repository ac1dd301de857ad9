package main

import (
	"bytes"
	"strings"
	"testing"
)

// TestGetVersion tests version string resolution.
func TestGetVersion(t *testing.T) {
	t.Run("prefers ldflags value", func(t *testing.T) {
		original := version
		defer func() { version = original }()

		version = "v1.2.3"
		if got := getVersion(); got != "v1.2.3" {
			t.Errorf("expected 'v1.2.3', got %q", got)
		}
	})

	t.Run("never returns empty", func(t *testing.T) {
		original := version
		defer func() { version = original }()

		version = ""
		if got := getVersion(); got == "" {
			t.Error("expected a non-empty version string")
		}
	})
}

// TestNewVersionCmd tests the version command.
func TestNewVersionCmd(t *testing.T) {
	t.Parallel()

	cmd := NewVersionCmd()

	t.Run("has correct use", func(t *testing.T) {
		t.Parallel()
		if cmd.Use != "version" {
			t.Errorf("expected use 'version', got %q", cmd.Use)
		}
	})

	t.Run("prints version information", func(t *testing.T) {
		var buf bytes.Buffer
		cmd := NewVersionCmd()
		cmd.SetOut(&buf)
		cmd.SetArgs([]string{})

		if err := cmd.Execute(); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		out := buf.String()
		if !strings.Contains(out, "sitecheck version") {
			t.Errorf("expected version line, got %q", out)
		}
		if !strings.Contains(out, "commit:") {
			t.Errorf("expected commit line, got %q", out)
		}
		if !strings.Contains(out, "built:") {
			t.Errorf("expected built line, got %q", out)
		}
	})
}

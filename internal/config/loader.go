package config

import (
	"errors"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultManifestFile is the default site manifest file name.
const DefaultManifestFile = ".sitecheck"

// ErrManifestNotFound is returned when the manifest file does not exist.
var ErrManifestNotFound = errors.New("manifest file not found")

// LoadManifest loads a site manifest from a YAML file.
// If the file does not exist, it returns ErrManifestNotFound.
// Callers should handle this error appropriately based on whether
// the manifest path was explicitly specified by the user.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided manifest path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrManifestNotFound
		}
		return nil, err
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	m.Normalize()
	return &m, nil
}

// FindManifest searches for the site manifest in the following order:
// 1. If manifestPath is specified, use it directly
// 2. Look for .sitecheck in the current directory
// 3. Look for .sitecheck in the user's home directory
//
// Returns the path to the manifest if found, or empty string if not found.
func FindManifest(manifestPath string) string {
	// If explicit path is provided, use it
	if manifestPath != "" {
		if _, err := os.Stat(manifestPath); err == nil {
			return manifestPath
		}
		return ""
	}

	// Check current directory
	cwd, err := os.Getwd()
	if err == nil {
		cwdManifest := filepath.Join(cwd, DefaultManifestFile)
		if _, err := os.Stat(cwdManifest); err == nil {
			return cwdManifest
		}
	}

	// Check home directory
	home, err := os.UserHomeDir()
	if err == nil {
		homeManifest := filepath.Join(home, DefaultManifestFile)
		if _, err := os.Stat(homeManifest); err == nil {
			return homeManifest
		}
	}

	return ""
}

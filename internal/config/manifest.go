package config

import (
	"github.com/sitecheck/sitecheck/internal/model"
)

// DefaultProjectName is used when the manifest does not name the project.
const DefaultProjectName = "Static Marketing Site"

// DefaultProjectVersion is used when the manifest carries no version.
const DefaultProjectVersion = "1.0.0"

// Project identifies the website being audited.
type Project struct {
	// Name is the project's display name. It appears verbatim in every
	// rendered report.
	Name string `yaml:"name"`

	// Version is the project's version string, also rendered verbatim.
	Version string `yaml:"version"`

	// URL is the production URL, recorded for reference only.
	URL string `yaml:"url,omitempty"`
}

// Manifest describes a website project (.sitecheck file).
// It declares the project identity, the color palette to validate, and
// any check groups to skip.
type Manifest struct {
	// Project identifies the site.
	Project Project `yaml:"project"`

	// Colors is the palette validated by the design group.
	Colors model.ColorScheme `yaml:"colors"`

	// Skip lists check group names to exclude from the audit
	// (e.g., "deployment" for a site that is not yet hosted).
	Skip []string `yaml:"skip,omitempty"`
}

// DefaultManifest returns the manifest used when no .sitecheck file exists.
// It describes the starter site with the shipped palette.
func DefaultManifest() *Manifest {
	return &Manifest{
		Project: Project{
			Name:    DefaultProjectName,
			Version: DefaultProjectVersion,
		},
		Colors: model.DefaultColorScheme(),
	}
}

// Normalize fills empty manifest fields from the defaults so downstream
// code never has to handle partially-specified manifests. A palette is
// only defaulted when every color is empty; a partially-filled palette is
// left alone so validation can flag the missing entries.
func (m *Manifest) Normalize() {
	if m.Project.Name == "" {
		m.Project.Name = DefaultProjectName
	}
	if m.Project.Version == "" {
		m.Project.Version = DefaultProjectVersion
	}
	if (m.Colors == model.ColorScheme{}) {
		m.Colors = model.DefaultColorScheme()
	}
}

// Skips reports whether the named check group is excluded by the manifest.
func (m *Manifest) Skips(group string) bool {
	for _, s := range m.Skip {
		if s == group {
			return true
		}
	}
	return false
}

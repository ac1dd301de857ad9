package model

import (
	"fmt"
	"regexp"
)

// hexColorPattern matches a leading '#' followed by exactly six hex digits.
// Shorthand (#FFF) and alpha (#RRGGBBAA) notations are intentionally
// rejected: the stylesheet convention for this project is full six-digit
// codes only.
var hexColorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// IsHexColor reports whether s is a six-digit hex color with a leading '#'.
func IsHexColor(s string) bool {
	return hexColorPattern.MatchString(s)
}

// ColorScheme is the named color palette of the website.
// Each field must be a six-digit hex color string (e.g., "#2C3E50").
type ColorScheme struct {
	// Primary is the dominant brand color used for headers and navigation.
	Primary string `json:"primary" yaml:"primary"`

	// Secondary is the supporting color used for calls to action.
	Secondary string `json:"secondary" yaml:"secondary"`

	// Text is the body text color.
	Text string `json:"text" yaml:"text"`

	// Background is the page background color.
	Background string `json:"background" yaml:"background"`

	// Accent is the highlight color for links and interactive affordances.
	Accent string `json:"accent" yaml:"accent"`
}

// DefaultColorScheme returns the palette shipped with the starter site.
func DefaultColorScheme() ColorScheme {
	return ColorScheme{
		Primary:    "#2C3E50",
		Secondary:  "#E74C3C",
		Text:       "#333333",
		Background: "#FFFFFF",
		Accent:     "#3498DB",
	}
}

// namedColor pairs a palette slot with its configured value.
// The fixed ordering keeps report output deterministic.
type namedColor struct {
	name  string
	value string
}

// namedColors returns the palette entries in canonical order.
func (cs ColorScheme) namedColors() []namedColor {
	return []namedColor{
		{"primary_color", cs.Primary},
		{"secondary_color", cs.Secondary},
		{"text_color", cs.Text},
		{"background_color", cs.Background},
		{"accent_color", cs.Accent},
	}
}

// Validate checks every color in the scheme against the hex-color pattern
// and returns one Check per color, in canonical order. A color that matches
// produces a passing Check; anything else produces a failing Check with a
// concrete recommendation. Validate never returns an error: a malformed
// color is a finding, not a fault.
func (cs ColorScheme) Validate() []Check {
	colors := cs.namedColors()
	checks := make([]Check, 0, len(colors))

	for _, c := range colors {
		if IsHexColor(c.value) {
			checks = append(checks,
				NewCheck(c.name, StatusPass,
					fmt.Sprintf("%s is a valid six-digit hex color", c.name)).
					WithDetails(c.value))
			continue
		}

		checks = append(checks,
			NewCheck(c.name, StatusFail,
				fmt.Sprintf("%s is not a valid six-digit hex color", c.name)).
				WithDetails(c.value).
				WithRecommendations(
					fmt.Sprintf("Set %s to a '#' followed by exactly six hex digits (e.g., %q)", c.name, "#2C3E50"),
				))
	}

	return checks
}

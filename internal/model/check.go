package model

// Check is a single named validation outcome.
// A Check is immutable once constructed: the helper methods return copies
// rather than mutating the receiver, so a Check stored in a Report never
// changes after the fact.
type Check struct {
	// Name is the unique identifier of the check within its group
	// (e.g., "primary_color", "viewport_meta").
	Name string `json:"name"`

	// Status is the check outcome.
	Status Status `json:"status"`

	// StatusText is the human-readable status, kept alongside the numeric
	// value so serialized reports stay readable without the enum table.
	StatusText string `json:"status_text"`

	// Message is a short description of what was verified.
	Message string `json:"message"`

	// Details carries optional supporting information, such as the exact
	// value that was inspected.
	Details string `json:"details,omitempty"`

	// Recommendations lists follow-up actions in the order they should be
	// applied. Usually empty for passing checks.
	Recommendations []string `json:"recommendations,omitempty"`
}

// NewCheck creates a Check with the given name, status, and message.
func NewCheck(name string, status Status, message string) Check {
	return Check{
		Name:       name,
		Status:     status,
		StatusText: status.String(),
		Message:    message,
	}
}

// WithDetails returns a copy of the check with the details field set.
func (c Check) WithDetails(details string) Check {
	c.Details = details
	return c
}

// WithRecommendations returns a copy of the check with the given
// recommendations appended in order.
func (c Check) WithRecommendations(recommendations ...string) Check {
	recs := make([]string, 0, len(c.Recommendations)+len(recommendations))
	recs = append(recs, c.Recommendations...)
	recs = append(recs, recommendations...)
	c.Recommendations = recs
	return c
}

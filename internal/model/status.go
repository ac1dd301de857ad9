package model

// Status represents the outcome of a single readiness check.
//
// Design decision: We use iota-based constants rather than string constants
// for efficiency in comparisons and counting. The String() method provides
// human-readable output when needed.
type Status int

const (
	// StatusPass indicates the requirement is satisfied.
	StatusPass Status = iota

	// StatusFail indicates the requirement is violated and must be fixed
	// before launch. Example: a color value that is not a 6-digit hex code.
	StatusFail

	// StatusWarning indicates a condition that should be reviewed but does
	// not block launch on its own.
	StatusWarning

	// StatusInfo indicates purely informational output with no requirement
	// attached.
	StatusInfo
)

// String returns a human-readable representation of the status.
func (s Status) String() string {
	switch s {
	case StatusPass:
		return "PASS"
	case StatusFail:
		return "FAIL"
	case StatusWarning:
		return "WARNING"
	case StatusInfo:
		return "INFO"
	default:
		return "UNKNOWN"
	}
}

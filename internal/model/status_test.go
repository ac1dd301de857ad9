package model

import "testing"

// TestStatusString tests the String method of Status.
func TestStatusString(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		status   Status
		expected string
	}{
		{StatusPass, "PASS"},
		{StatusFail, "FAIL"},
		{StatusWarning, "WARNING"},
		{StatusInfo, "INFO"},
		{Status(999), "UNKNOWN"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.expected, func(t *testing.T) {
			t.Parallel()
			if tc.status.String() != tc.expected {
				t.Errorf("got %q, expected %q", tc.status.String(), tc.expected)
			}
		})
	}
}

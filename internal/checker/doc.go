// Package checker runs the readiness audit for a site manifest.
//
// Each concern (design, architecture, accessibility, responsiveness, code
// quality, deployment) is implemented as a Checker that appends a named
// group of checks to the report. The Runner executes checkers in a fixed
// order; the BatchRunner audits several manifests concurrently with an
// errgroup concurrency limit.
//
// Design decision: Checkers never return an error for a failed
// requirement. A violated requirement is data (a fail Check with a
// recommendation); errors are reserved for genuine faults such as
// cancellation.
package checker

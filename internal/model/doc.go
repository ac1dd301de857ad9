// Package model defines the core data structures used throughout sitecheck.
//
// This package contains the following main types:
//   - Status: The outcome enum for a single check (pass, fail, warning, info)
//   - Check: A single named validation outcome with recommendations
//   - ColorScheme: The website palette with hex-color validation
//   - Report: Groups of checks plus the aggregated summary
//
// Design decision: We separate models into their own package to avoid
// circular dependencies. Multiple packages (checker, report, history) need
// these types, so centralizing them prevents import cycles.
//
// The models are designed to be serializable to JSON for report output and
// database storage.
package model

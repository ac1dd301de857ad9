// Package history persists readiness reports across runs.
//
// Reports are stored as JSON rows in a single SQLite database, one row
// per audit run. The store supports listing projects, browsing run
// metadata without loading full reports, and retrieving past reports
// for comparison.
package history

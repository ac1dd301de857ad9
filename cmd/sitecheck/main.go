// Package main provides the entry point for the sitecheck CLI.
//
// Sitecheck audits static marketing websites for publish readiness.
// It validates the configured color palette, records the site's
// structural and accessibility requirements, and renders a pass-rate
// report.
//
// Usage:
//
//	sitecheck report
//	sitecheck report site1/.sitecheck site2/.sitecheck
//
// See --help for all available options.
package main

// main is the entry point for sitecheck.
func main() {
	Execute()
}

// Package report renders readiness reports in multiple output formats.
//
// The package provides a Writer interface with three implementations:
// TextWriter for terminal display, JSONWriter for tool integration, and
// MarkdownWriter for documentation. MultiWriter fans a report out to
// several destinations at once.
//
// All writers are pure functions of the report contents: rendering the
// same report twice produces byte-identical output.
package report

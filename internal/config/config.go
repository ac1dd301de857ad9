package config

import (
	"path/filepath"

	"github.com/adrg/xdg"
)

// Default configuration values.
const (
	// AppName is the application name used for XDG directory paths.
	AppName = "sitecheck"

	// DefaultBatchSize of 4 concurrent audits balances throughput with
	// resource usage when several manifests are checked in one invocation.
	// Audits are cheap, so a small limit is plenty.
	DefaultBatchSize = 4

	// DefaultHistoryLimit is the number of stored runs shown by the
	// history command when no explicit limit is given.
	DefaultHistoryLimit = 20
)

// Config holds all configuration options for sitecheck.
// This struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested structs
// for simplicity. The number of options is manageable, and nesting would
// add complexity without significant benefit.
type Config struct {
	// ManifestPaths are the site manifest files to audit. When empty, the
	// tool searches for a .sitecheck file and falls back to the built-in
	// defaults if none exists.
	ManifestPaths []string

	// Verbose enables detailed log output using slog.LevelDebug.
	// When false, only warnings and errors are logged.
	Verbose bool

	// BatchSize is the number of concurrent audits when several manifests
	// are given. One manifest is always audited sequentially.
	BatchSize int

	// JSONReport enables JSON report output instead of the human-readable
	// format. Mutually exclusive with MarkdownReport.
	JSONReport bool

	// MarkdownReport enables Markdown report output instead of the
	// human-readable format. Mutually exclusive with JSONReport.
	MarkdownReport bool

	// ReportFile is the output file path for the report.
	// When set, the report is written to this file instead of stdout.
	// Directories are created automatically if they don't exist.
	ReportFile string

	// SaveToDB indicates whether to save audit results to the history
	// database for later comparison.
	SaveToDB bool

	// DBDir is the directory path for the SQLite history database.
	// Defaults to the XDG data directory.
	DBDir string

	// HistoryLimit caps how many stored runs the history command lists.
	HistoryLimit int
}

// NewConfig creates a new Config with default values.
// Users can override specific values after creation.
func NewConfig() *Config {
	return &Config{
		BatchSize:    DefaultBatchSize,
		HistoryLimit: DefaultHistoryLimit,
		SaveToDB:     true,
		DBDir:        XDGDataDir(),
	}
}

// XDGDataDir returns the XDG data directory for sitecheck.
// On Linux: ~/.local/share/sitecheck
// On macOS: ~/Library/Application Support/sitecheck
// On Windows: %LOCALAPPDATA%\sitecheck
func XDGDataDir() string {
	return filepath.Join(xdg.DataHome, AppName)
}

// XDGConfigDir returns the XDG config directory for sitecheck.
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// XDGCacheDir returns the XDG cache directory for sitecheck.
func XDGCacheDir() string {
	return filepath.Join(xdg.CacheHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// Design decision: We validate at the config level rather than at each
// point of use to fail fast and provide clear error messages upfront.
// This is called once after CLI parsing, before any audit begins.
func (c *Config) Validate() error {
	// BatchSize must be positive; zero would mean no audits run
	if c.BatchSize <= 0 {
		return ErrInvalidBatchSize
	}

	// JSONReport and MarkdownReport are mutually exclusive
	if c.JSONReport && c.MarkdownReport {
		return ErrConflictingReportFormats
	}

	// HistoryLimit must be positive; the history command always shows
	// at least one run
	if c.HistoryLimit <= 0 {
		return ErrInvalidHistoryLimit
	}

	return nil
}

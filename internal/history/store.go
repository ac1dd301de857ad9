package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/sitecheck/sitecheck/internal/model"
)

// Store provides SQLite-based storage for readiness report history.
// It manages connection pooling and provides methods for saving and
// querying past runs.
//
// Design decision: We use a single database file for all projects rather
// than one file per project. This simplifies cross-project queries and
// backup/restore operations.
type Store struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures Store behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	// This is recommended for most use cases.
	EnableWAL bool
}

// DefaultOptions returns the default store options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a Store at the specified directory.
// If CreateIfNotExists is true, the directory and database file are created.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*Store, error) {
	dbPath := filepath.Join(dbDir, "sitecheck.db")

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("history database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// modernc.org/sqlite uses URI-style mode flags: rw requires the file
	// to exist, rwc allows creation.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer, so keep the pool at one connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &Store{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// createTables creates the database schema if it doesn't exist.
func (s *Store) createTables() error {
	schema := `
	-- Report runs store complete readiness reports as JSON
	CREATE TABLE IF NOT EXISTS report_runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		project TEXT NOT NULL,
		project_version TEXT NOT NULL,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP,
		report_json TEXT NOT NULL,
		status_summary TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_runs_project ON report_runs(project);
	CREATE INDEX IF NOT EXISTS idx_runs_timestamp ON report_runs(timestamp);
	`

	_, err := s.db.ExecContext(context.Background(), schema)
	return err
}

// SaveReport saves a complete readiness report as JSON.
// The report is summarized first so the stored status summary reflects
// the check groups as saved.
func (s *Store) SaveReport(ctx context.Context, report *model.Report) error {
	if report.Summary == nil {
		report.Summarize()
	}

	reportJSON, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to serialize report: %w", err)
	}

	statusSummary := map[string]int{
		"total":    report.Summary.Total,
		"passed":   report.Summary.Passed,
		"failed":   report.Summary.Failed,
		"warnings": report.Summary.Warnings,
		"infos":    report.Summary.Infos,
	}
	summaryJSON, _ := json.Marshal(statusSummary) //nolint:errcheck,errchkjson // statusSummary is a simple map; Marshal won't fail

	query := `
	INSERT INTO report_runs (project, project_version, report_json, status_summary)
	VALUES (?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		report.ProjectName,
		report.ProjectVersion,
		string(reportJSON),
		string(summaryJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save report: %w", err)
	}

	return nil
}

// LatestReport retrieves the most recent report for a project.
// Returns nil without error when no report exists.
func (s *Store) LatestReport(ctx context.Context, project string) (*model.Report, error) {
	query := `
	SELECT report_json FROM report_runs
	WHERE project = ?
	ORDER BY timestamp DESC, id DESC
	LIMIT 1
	`

	var reportJSON string
	err := s.db.QueryRowContext(ctx, query, project).Scan(&reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// LatestReports retrieves the most recent reports for a project, newest
// first, up to the given limit. A limit of zero or less returns all runs.
func (s *Store) LatestReports(ctx context.Context, project string, limit int) ([]*model.Report, error) {
	query := `
	SELECT report_json FROM report_runs
	WHERE project = ?
	ORDER BY timestamp DESC, id DESC
	`
	args := []any{project}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get report history: %w", err)
	}
	defer rows.Close()

	var reports []*model.Report
	for rows.Next() {
		var reportJSON string
		if err := rows.Scan(&reportJSON); err != nil {
			return nil, fmt.Errorf("failed to scan report: %w", err)
		}

		var report model.Report
		if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
			continue // Skip malformed reports
		}
		reports = append(reports, &report)
	}

	return reports, rows.Err()
}

// ListProjects returns the names of all projects with saved runs.
func (s *Store) ListProjects(ctx context.Context) ([]string, error) {
	query := `
	SELECT DISTINCT project FROM report_runs
	ORDER BY project
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []string
	for rows.Next() {
		var project string
		if err := rows.Scan(&project); err != nil {
			return nil, fmt.Errorf("failed to scan project: %w", err)
		}
		projects = append(projects, project)
	}

	return projects, rows.Err()
}

// RunMetadata contains summary information about a stored run.
// This is used for displaying run history without loading full reports.
type RunMetadata struct {
	// ID is the unique identifier of the run in the database.
	ID int64

	// Project is the audited project's name.
	Project string

	// ProjectVersion is the audited project's version string.
	ProjectVersion string

	// Timestamp is when the run was saved.
	Timestamp time.Time

	// StatusSummary contains check counts keyed by status.
	StatusSummary map[string]int
}

// History retrieves run metadata for a project, newest first, up to the
// given limit. This is more efficient than LatestReports when only
// metadata is needed. A limit of zero or less returns all runs.
func (s *Store) History(ctx context.Context, project string, limit int) ([]RunMetadata, error) {
	query := `
	SELECT id, project, project_version, timestamp, status_summary
	FROM report_runs
	WHERE project = ?
	ORDER BY timestamp DESC, id DESC
	`
	args := []any{project}

	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get run history: %w", err)
	}
	defer rows.Close()

	var results []RunMetadata
	for rows.Next() {
		var meta RunMetadata
		var timestamp string
		var summaryJSON sql.NullString

		if err := rows.Scan(&meta.ID, &meta.Project, &meta.ProjectVersion, &timestamp, &summaryJSON); err != nil {
			return nil, fmt.Errorf("failed to scan metadata: %w", err)
		}

		meta.Timestamp = parseTimestamp(timestamp)

		if summaryJSON.Valid && summaryJSON.String != "" {
			if err := json.Unmarshal([]byte(summaryJSON.String), &meta.StatusSummary); err != nil {
				meta.StatusSummary = make(map[string]int)
			}
		} else {
			meta.StatusSummary = make(map[string]int)
		}

		results = append(results, meta)
	}

	return results, rows.Err()
}

// GetReportByID retrieves a report by its database ID.
// Returns nil without error when the ID is unknown.
func (s *Store) GetReportByID(ctx context.Context, id int64) (*model.Report, error) {
	query := `
	SELECT report_json FROM report_runs
	WHERE id = ?
	`

	var reportJSON string
	err := s.db.QueryRowContext(ctx, query, id).Scan(&reportJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	var report model.Report
	if err := json.Unmarshal([]byte(reportJSON), &report); err != nil {
		return nil, fmt.Errorf("failed to parse report: %w", err)
	}

	return &report, nil
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	"2006-01-02 15:04:05",     // SQLite default datetime format
	"2006-01-02T15:04:05Z",    // ISO 8601 with Z suffix
	"2006-01-02T15:04:05",     // ISO 8601 without timezone
	time.RFC3339,              // Full RFC3339 format
	time.RFC3339Nano,          // RFC3339 with nanoseconds
	"2006-01-02 15:04:05.999", // SQLite with milliseconds
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// SQLite may return timestamps in different formats depending on configuration.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}

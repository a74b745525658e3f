package adapter

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	m "reckon.dev/pkg/reckon/internal/model"

	_ "modernc.org/sqlite" // pure Go sqlite driver
)

const historySchema = `
CREATE TABLE IF NOT EXISTS runs (
	run_id     TEXT PRIMARY KEY,
	started_at INTEGER NOT NULL,
	kinds      TEXT NOT NULL,
	jobs       INTEGER NOT NULL,
	terms      INTEGER NOT NULL,
	failures   INTEGER NOT NULL,
	elapsed_ns INTEGER NOT NULL,
	report     TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_runs_started_at ON runs(started_at);
`

// HistoryStore keeps one summary row per run in a local sqlite database.
type HistoryStore interface {
	AddSummary(ctx context.Context, summary m.RunSummary) error
	ListSummaries(ctx context.Context, limit int) ([]m.RunSummary, error)
	ClearHistory(ctx context.Context) error
	Close() error
}

type historyStore struct {
	db *sql.DB
}

// NewHistoryStore opens (and if needed creates) the history database at path.
func NewHistoryStore(path m.Path) (HistoryStore, error) {
	if path == "" {
		return nil, fmt.Errorf("history database path not set")
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		slog.Error("Failed to create history directory", "path", path, "error", err)
		return nil, fmt.Errorf("create history directory: %w", err)
	}

	db, err := sql.Open("sqlite", string(path))
	if err != nil {
		slog.Error("Failed to open history database", "path", path, "error", err)
		return nil, fmt.Errorf("open history database: %w", err)
	}

	// The driver serializes access through a single connection.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		slog.Debug("Failed to set sqlite busy_timeout", "error", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		slog.Debug("Failed to set sqlite journal_mode", "error", err)
	}

	if _, err := db.Exec(historySchema); err != nil {
		_ = db.Close()
		slog.Error("Failed to initialize history schema", "path", path, "error", err)

		return nil, fmt.Errorf("initialize history schema: %w", err)
	}

	return &historyStore{db: db}, nil
}

func (s *historyStore) AddSummary(ctx context.Context, summary m.RunSummary) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, started_at, kinds, jobs, terms, failures, elapsed_ns, report)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.RunID,
		summary.StartedAt.UnixNano(),
		summary.Kinds,
		summary.Jobs,
		summary.Terms,
		summary.Failures,
		int64(summary.Elapsed),
		string(summary.Report),
	)
	if err != nil {
		slog.Error("Failed to insert run summary", "run", summary.RunID, "error", err)
		return fmt.Errorf("insert run summary: %w", err)
	}

	return nil
}

func (s *historyStore) ListSummaries(ctx context.Context, limit int) ([]m.RunSummary, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, started_at, kinds, jobs, terms, failures, elapsed_ns, report
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		slog.Error("Failed to query run history", "error", err)
		return nil, fmt.Errorf("query run history: %w", err)
	}

	defer func() { _ = rows.Close() }()

	var summaries []m.RunSummary

	for rows.Next() {
		var (
			summary   m.RunSummary
			startedAt int64
			elapsed   int64
			report    string
		)

		if err := rows.Scan(&summary.RunID, &startedAt, &summary.Kinds, &summary.Jobs,
			&summary.Terms, &summary.Failures, &elapsed, &report); err != nil {
			return nil, fmt.Errorf("scan run summary: %w", err)
		}

		summary.StartedAt = time.Unix(0, startedAt)
		summary.Elapsed = time.Duration(elapsed)
		summary.Report = m.Path(report)

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run history: %w", err)
	}

	return summaries, nil
}

func (s *historyStore) ClearHistory(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM runs"); err != nil {
		slog.Error("Failed to clear run history", "error", err)
		return fmt.Errorf("clear run history: %w", err)
	}

	return nil
}

func (s *historyStore) Close() error {
	return s.db.Close()
}

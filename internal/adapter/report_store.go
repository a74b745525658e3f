// Package adapter contains persistence and infrastructure adapters for the reckon CLI.
package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	m "reckon.dev/pkg/reckon/internal/model"
)

const reportExt = ".yaml"

// ReportStore persists full run reports as YAML files, one file per run.
type ReportStore interface {
	// SaveReport writes the report under dir and returns the file path.
	SaveReport(ctx context.Context, dir m.Path, report m.RunReport) (m.Path, error)

	// LoadReport reads a report back by run ID. An empty runID loads the most
	// recent report in dir.
	LoadReport(ctx context.Context, dir m.Path, runID string) (m.RunReport, error)

	// ListReports returns the run IDs stored under dir, newest first.
	ListReports(ctx context.Context, dir m.Path) ([]string, error)
}

type reportStore struct{}

// NewReportStore creates a ReportStore backed by the local filesystem.
func NewReportStore() ReportStore {
	return &reportStore{}
}

func (s *reportStore) SaveReport(ctx context.Context, dir m.Path, report m.RunReport) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if dir == "" {
		return "", fmt.Errorf("reports directory not set")
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		slog.Error("Failed to create reports directory", "dir", dir, "error", err)
		return "", fmt.Errorf("create reports directory: %w", err)
	}

	content, err := yaml.Marshal(report)
	if err != nil {
		slog.Error("Failed to encode report", "run", report.RunID, "error", err)
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), report.RunID+reportExt)

	// Write to a temp file and rename it into place; readers never see a
	// partial report.
	tmp, err := os.CreateTemp(string(dir), report.RunID+"-*.tmp")
	if err != nil {
		slog.Error("Failed to create report temp file", "dir", dir, "error", err)
		return "", fmt.Errorf("create report temp file: %w", err)
	}

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		slog.Error("Failed to write report", "path", tmp.Name(), "error", err)

		return "", fmt.Errorf("write report: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		slog.Error("Failed to close report temp file", "path", tmp.Name(), "error", err)

		return "", fmt.Errorf("close report temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		slog.Error("Failed to move report into place", "path", path, "error", err)

		return "", fmt.Errorf("move report into place: %w", err)
	}

	slog.Debug("Saved run report", "path", path, "results", len(report.Results))

	return m.Path(path), nil
}

func (s *reportStore) LoadReport(ctx context.Context, dir m.Path, runID string) (m.RunReport, error) {
	if err := ctx.Err(); err != nil {
		return m.RunReport{}, err
	}

	if runID == "" {
		ids, err := s.ListReports(ctx, dir)
		if err != nil {
			return m.RunReport{}, err
		}

		if len(ids) == 0 {
			return m.RunReport{}, fmt.Errorf("no reports found in %s", dir)
		}

		runID = ids[0]
	}

	path := filepath.Join(string(dir), runID+reportExt)

	// #nosec G304 - path is assembled from the configured reports dir
	content, err := os.ReadFile(path)
	if err != nil {
		slog.Error("Failed to read report", "path", path, "error", err)
		return m.RunReport{}, fmt.Errorf("read report: %w", err)
	}

	var report m.RunReport
	if err := yaml.Unmarshal(content, &report); err != nil {
		slog.Error("Failed to decode report", "path", path, "error", err)
		return m.RunReport{}, fmt.Errorf("decode report: %w", err)
	}

	return report, nil
}

func (s *reportStore) ListReports(ctx context.Context, dir m.Path) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(string(dir))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}

		slog.Error("Failed to read reports directory", "dir", dir, "error", err)

		return nil, fmt.Errorf("read reports directory: %w", err)
	}

	type stamped struct {
		id      string
		modTime int64
	}

	reports := make([]stamped, 0, len(entries))

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), reportExt) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}

		reports = append(reports, stamped{
			id:      strings.TrimSuffix(entry.Name(), reportExt),
			modTime: info.ModTime().UnixNano(),
		})
	}

	sort.Slice(reports, func(i, j int) bool {
		return reports[i].modTime > reports[j].modTime
	})

	ids := make([]string, len(reports))
	for i, report := range reports {
		ids[i] = report.id
	}

	return ids, nil
}

package adapter

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	m "reckon.dev/pkg/reckon/internal/model"
)

// jobsFile is the on-disk shape of a jobs file.
type jobsFile struct {
	Jobs []m.Job `yaml:"jobs" validate:"required,min=1,dive"`
}

// JobsLoader reads job batches from YAML files.
type JobsLoader interface {
	LoadJobs(ctx context.Context, path m.Path) ([]m.Job, error)
}

type jobsLoader struct {
	validate *validator.Validate
}

// NewJobsLoader creates a JobsLoader with struct validation enabled.
func NewJobsLoader() JobsLoader {
	return &jobsLoader{validate: validator.New()}
}

func (l *jobsLoader) LoadJobs(ctx context.Context, path m.Path) ([]m.Job, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// #nosec G304 - path is the user-provided jobs file
	content, err := os.ReadFile(string(path))
	if err != nil {
		slog.Error("Failed to read jobs file", "path", path, "error", err)
		return nil, fmt.Errorf("read jobs file: %w", err)
	}

	var file jobsFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		slog.Error("Failed to parse jobs file", "path", path, "error", err)
		return nil, fmt.Errorf("parse jobs file: %w", err)
	}

	if err := l.validate.Struct(file); err != nil {
		slog.Error("Jobs file failed validation", "path", path, "error", err)
		return nil, fmt.Errorf("validate jobs file: %w", err)
	}

	slog.Debug("Loaded jobs file", "path", path, "jobs", len(file.Jobs))

	return file.Jobs, nil
}

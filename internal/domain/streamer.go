package domain

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"
	m "reckon.dev/pkg/reckon/internal/model"
)

// ResultStreamer defines the interface for streaming term results from jobs.
type ResultStreamer interface {
	Stream(ctx context.Context, jobs []m.Job, workers int) (<-chan m.TermResult, <-chan error)
}

type resultStreamer struct {
	Evaluator
}

// NewResultStreamer creates a new ResultStreamer instance with the provided evaluator.
func NewResultStreamer(evaluator Evaluator) ResultStreamer {
	return &resultStreamer{Evaluator: evaluator}
}

// Stream evaluates jobs on a bounded worker pool and streams every term result.
// Both channels close when all jobs finished; the error channel carries at
// most the first failure.
func (s *resultStreamer) Stream(ctx context.Context, jobs []m.Job, workers int) (<-chan m.TermResult, <-chan error) {
	workers = normalizeWorkers(workers)

	slog.Debug("Starting job streaming", "jobs", len(jobs), "workers", workers)

	resultChannel := make(chan m.TermResult, workers)
	errorChannel := make(chan error, 1)

	var group errgroup.Group
	group.SetLimit(workers)

	go func() {
		for _, job := range jobs {
			if ctx.Err() != nil {
				slog.Debug("Job streaming cancelled")
				break
			}

			currentJob := job

			group.Go(func() error {
				results, err := s.Evaluate(ctx, currentJob)

				for _, result := range results {
					select {
					case <-ctx.Done():
						return ctx.Err()
					case resultChannel <- result:
					}
				}

				if err != nil {
					return fmt.Errorf("evaluate job %s: %w", currentJob.ID, err)
				}

				return nil
			})
		}

		err := group.Wait()

		close(resultChannel)

		if err != nil {
			errorChannel <- err
		}

		close(errorChannel)
	}()

	return resultChannel, errorChannel
}

// normalizeWorkers ensures the worker count is at least 1.
func normalizeWorkers(workers int) int {
	if workers <= 0 {
		return 1
	}

	return workers
}

package domain

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"reckon.dev/pkg/reckon/internal/adapter"
	"reckon.dev/pkg/reckon/internal/controller"
	m "reckon.dev/pkg/reckon/internal/model"
	pkg "reckon.dev/pkg/reckon/pkg"
)

// EvaluateArgs contains the arguments for evaluating a batch of jobs.
type EvaluateArgs struct {
	Jobs     []m.Job
	JobsFile m.Path
	Workers  int
	Reports  m.Path
	Persist  bool
	Diff     bool
}

// ViewArgs contains the arguments for viewing a stored run report.
type ViewArgs struct {
	Reports m.Path
	RunID   string
}

// HistoryArgs contains the arguments for listing or clearing run history.
type HistoryArgs struct {
	Limit int
	Clear bool
}

// Workflow defines the interface for reckon's top level operations.
type Workflow interface {
	Evaluate(args EvaluateArgs) error
	View(args ViewArgs) error
	History(args HistoryArgs) error
}

type workflow struct {
	adapter.ReportStore
	adapter.HistoryStore
	adapter.JobsLoader
	controller.UI
	ResultStreamer
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	historyStore adapter.HistoryStore,
	jobsLoader adapter.JobsLoader,
	ui controller.UI,
	streamer ResultStreamer,
) Workflow {
	return &workflow{
		ReportStore:    reportStore,
		HistoryStore:   historyStore,
		JobsLoader:     jobsLoader,
		UI:             ui,
		ResultStreamer: streamer,
	}
}

// Evaluate runs every job through the worker pool, records the run in
// history, optionally persists the full report, and displays the results.
func (w *workflow) Evaluate(args EvaluateArgs) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	jobs, err := w.resolveJobs(ctx, args)
	if err != nil {
		slog.Error("Failed to resolve jobs", "error", err)
		return fmt.Errorf("resolve jobs: %w", err)
	}

	totalTerms := 0
	for _, job := range jobs {
		totalTerms += job.Terms()
	}

	if err := w.Start(ctx, controller.WithRunMode(totalTerms)); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	w.DisplayRunInfo(ctx, normalizeWorkers(args.Workers), len(jobs), totalTerms)

	startedAt := time.Now()

	results, err := pkg.NewSpill[m.TermResult]("")
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to create result spill", "error", err)

		return fmt.Errorf("create result spill: %w", err)
	}
	defer w.cleanupSpill(results)

	if err := w.collectResults(ctx, jobs, args.Workers, results); err != nil {
		w.Close(ctx)
		return err
	}

	report, err := w.buildReport(results, jobs, args.Workers, startedAt)
	if err != nil {
		w.Close(ctx)
		slog.Error("Failed to build run report", "error", err)

		return fmt.Errorf("build report: %w", err)
	}

	reportPath, err := w.persistReport(ctx, args, report)
	if err != nil {
		w.Close(ctx)
		return err
	}

	if err := w.AddSummary(ctx, summarize(report, reportPath)); err != nil {
		w.Close(ctx)
		slog.Error("Failed to record run history", "error", err)

		return fmt.Errorf("record history: %w", err)
	}

	if args.Diff {
		if err := w.displayDiffs(ctx, jobs, report); err != nil {
			w.Close(ctx)
			slog.Error("Failed to display diff", "error", err)

			return fmt.Errorf("display diff: %w", err)
		}
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display report", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	// Wait for UI to be closed by user (press 'q')
	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// View loads a stored run report and displays it.
func (w *workflow) View(args ViewArgs) error {
	ctx := context.Background()

	report, err := w.LoadReport(ctx, args.Reports, args.RunID)
	if err != nil {
		slog.Error("Failed to load report", "reports", args.Reports, "run", args.RunID, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplayReport(ctx, report); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display report", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

// History lists recent run summaries, or wipes them when args.Clear is set.
func (w *workflow) History(args HistoryArgs) error {
	ctx := context.Background()

	if args.Clear {
		if err := w.ClearHistory(ctx); err != nil {
			slog.Error("Failed to clear history", "error", err)
			return fmt.Errorf("clear history: %w", err)
		}

		return nil
	}

	summaries, err := w.ListSummaries(ctx, args.Limit)
	if err != nil {
		slog.Error("Failed to list history", "error", err)
		return fmt.Errorf("list history: %w", err)
	}

	if err := w.Start(ctx, controller.WithViewMode()); err != nil {
		slog.Error("Failed to start workflow UI", "error", err)
		return err
	}

	if err := w.DisplaySummaries(ctx, summaries); err != nil {
		w.Close(ctx)
		slog.Error("Failed to display history", "error", err)

		return fmt.Errorf("display: %w", err)
	}

	w.Wait(ctx)
	w.Close(ctx)

	return nil
}

func (w *workflow) resolveJobs(ctx context.Context, args EvaluateArgs) ([]m.Job, error) {
	jobs := args.Jobs

	if args.JobsFile != "" {
		loaded, err := w.LoadJobs(ctx, args.JobsFile)
		if err != nil {
			return nil, err
		}

		jobs = append(jobs, loaded...)
	}

	if len(jobs) == 0 {
		return nil, fmt.Errorf("no jobs to evaluate")
	}

	for i := range jobs {
		if jobs[i].ID == "" {
			jobs[i].ID = uuid.NewString()
		}
	}

	return jobs, nil
}

// collectResults drains the result stream into the spill while feeding the
// UI, and surfaces the first stream error.
func (w *workflow) collectResults(ctx context.Context, jobs []m.Job, workers int, results pkg.Spill[m.TermResult]) error {
	resultChannel, errorChannel := w.Stream(ctx, jobs, workers)

	group, groupCtx := errgroup.WithContext(ctx)

	// Goroutine to collect results
	group.Go(func() error {
		for {
			select {
			case <-groupCtx.Done():
				return groupCtx.Err()
			case result, ok := <-resultChannel:
				if !ok {
					return nil
				}

				if err := results.Append(result); err != nil {
					return fmt.Errorf("spill result: %w", err)
				}

				w.DisplayTermResult(groupCtx, result)
			}
		}
	})

	// Goroutine to monitor errors
	group.Go(func() error {
		select {
		case <-groupCtx.Done():
			return groupCtx.Err()
		case err, ok := <-errorChannel:
			if !ok {
				return nil
			}

			return err
		}
	})

	if err := group.Wait(); err != nil {
		slog.Error("Failed to evaluate jobs", "error", err)
		return fmt.Errorf("evaluate jobs: %w", err)
	}

	return nil
}

func (w *workflow) buildReport(results pkg.Spill[m.TermResult], jobs []m.Job, workers int, startedAt time.Time) (m.RunReport, error) {
	report := m.RunReport{
		RunID:      uuid.NewString(),
		StartedAt:  startedAt,
		FinishedAt: time.Now(),
		Workers:    normalizeWorkers(workers),
		Jobs:       len(jobs),
	}

	report.Results = make([]m.TermResult, 0, int(results.Len()))

	err := results.Range(func(_ uint64, result m.TermResult) error {
		report.Results = append(report.Results, result)
		return nil
	})
	if err != nil {
		return m.RunReport{}, fmt.Errorf("read results: %w", err)
	}

	// Order results by job, then by term, for deterministic reports
	jobOrder := make(map[string]int, len(jobs))
	for i, job := range jobs {
		jobOrder[job.ID] = i
	}

	sort.SliceStable(report.Results, func(i, j int) bool {
		a, b := report.Results[i], report.Results[j]
		if jobOrder[a.JobID] != jobOrder[b.JobID] {
			return jobOrder[a.JobID] < jobOrder[b.JobID]
		}

		return a.N < b.N
	})

	tally, err := tallyFromResults(results)
	if err != nil {
		return m.RunReport{}, fmt.Errorf("tally results: %w", err)
	}

	report.Tally = tally

	return report, nil
}

func (w *workflow) persistReport(ctx context.Context, args EvaluateArgs, report m.RunReport) (m.Path, error) {
	if !args.Persist {
		return "", nil
	}

	reportPath, err := w.SaveReport(ctx, args.Reports, report)
	if err != nil {
		slog.Error("Failed to save report", "reports", args.Reports, "error", err)
		return "", fmt.Errorf("save report: %w", err)
	}

	return reportPath, nil
}

// displayDiffs renders an input-versus-output diff for every sort job.
func (w *workflow) displayDiffs(ctx context.Context, jobs []m.Job, report m.RunReport) error {
	sorted := make(map[string]m.TermResult, len(report.Results))
	for _, result := range report.Results {
		if result.Kind == m.KindSort {
			sorted[result.JobID] = result
		}
	}

	for _, job := range jobs {
		result, ok := sorted[job.ID]
		if !ok {
			continue
		}

		if err := w.DisplayDiff(ctx, sortInput(job), result.Sequence); err != nil {
			return err
		}
	}

	return nil
}

// cleanupSpill removes the spill file, logging errors if cleanup fails.
func (w *workflow) cleanupSpill(results pkg.Spill[m.TermResult]) {
	if err := results.Remove(); err != nil {
		slog.Error("Failed to cleanup result spill", "path", results.Path(), "error", err)
	}
}

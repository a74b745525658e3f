package domain_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	adaptermocks "reckon.dev/pkg/reckon/internal/adapter/mocks"
	controllermocks "reckon.dev/pkg/reckon/internal/controller/mocks"
	"reckon.dev/pkg/reckon/internal/domain"
	domainmocks "reckon.dev/pkg/reckon/internal/domain/mocks"
	m "reckon.dev/pkg/reckon/internal/model"
)

func newWorkflowMocks() (*adaptermocks.MockReportStore, *adaptermocks.MockHistoryStore, *adaptermocks.MockJobsLoader, *controllermocks.MockUI, *domainmocks.MockResultStreamer) {
	return new(adaptermocks.MockReportStore),
		new(adaptermocks.MockHistoryStore),
		new(adaptermocks.MockJobsLoader),
		new(controllermocks.MockUI),
		new(domainmocks.MockResultStreamer)
}

// streamOf wires the streamer mock to emit the given results and then finish
// cleanly, the way the real worker pool closes both channels.
func streamOf(streamer *domainmocks.MockResultStreamer, workers int, results ...m.TermResult) {
	resultChannel := make(chan m.TermResult, len(results))
	errorChannel := make(chan error, 1)
	close(errorChannel)

	streamer.EXPECT().Stream(mock.Anything, mock.Anything, workers).
		Run(func(ctx context.Context, jobs []m.Job, workers int) {
			go func() {
				defer close(resultChannel)
				for _, result := range results {
					select {
					case <-ctx.Done():
						return
					case resultChannel <- result:
					}
				}
			}()
		}).
		Return((<-chan m.TermResult)(resultChannel), (<-chan error)(errorChannel)).Once()
}

func TestWorkflow_Evaluate_Success(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	jobs := []m.Job{
		{ID: "job-fib", Kind: m.KindFibonacci, Variant: m.VariantIterative, From: 1, To: 3},
		{ID: "job-sort", Kind: m.KindSort, Values: []float64{3, 1, 2}},
	}

	// Feed results out of order to exercise the deterministic report ordering.
	results := []m.TermResult{
		{JobID: "job-sort", Kind: m.KindSort, N: 3, Value: "[1 2 3]", Sequence: []string{"1", "2", "3"}},
		{JobID: "job-fib", Kind: m.KindFibonacci, Variant: m.VariantIterative, N: 2, Value: "1"},
		{JobID: "job-fib", Kind: m.KindFibonacci, Variant: m.VariantIterative, N: 1, Value: "1"},
		{JobID: "job-fib", Kind: m.KindFibonacci, Variant: m.VariantIterative, N: 3, Value: "2"},
	}

	reportPath := m.Path("reports/report.yaml")

	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayRunInfo(mock.Anything, 2, 2, 4).Return().Once()
	mockUI.EXPECT().DisplayTermResult(mock.Anything, mock.Anything).Return().Times(4)

	streamOf(mockStreamer, 2, results...)

	mockReportStore.EXPECT().SaveReport(mock.Anything, m.Path("reports"), mock.MatchedBy(func(report m.RunReport) bool {
		return len(report.Results) == 4 && report.Jobs == 2 && report.Workers == 2
	})).Return(reportPath, nil).Once()

	mockHistoryStore.EXPECT().AddSummary(mock.Anything, mock.MatchedBy(func(summary m.RunSummary) bool {
		return summary.Kinds == "fibonacci,sort" &&
			summary.Jobs == 2 &&
			summary.Terms == 4 &&
			summary.Failures == 0 &&
			summary.Report == reportPath
	})).Return(nil).Once()

	// Results must come back ordered by job, then by term, whatever order the
	// workers produced them in.
	mockUI.EXPECT().DisplayReport(mock.Anything, mock.MatchedBy(func(report m.RunReport) bool {
		if len(report.Results) != 4 {
			return false
		}
		ordered := report.Results[0].N == 1 &&
			report.Results[1].N == 2 &&
			report.Results[2].N == 3 &&
			report.Results[3].JobID == "job-sort"
		return ordered && report.Tally[m.KindFibonacci].Terms == 3 && report.Tally[m.KindSort].Terms == 1
	})).Return(nil).Once()

	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.Evaluate(domain.EvaluateArgs{
		Jobs:    jobs,
		Workers: 2,
		Reports: "reports",
		Persist: true,
	})

	// Assert
	assert.NoError(t, err)
	mockStreamer.AssertExpectations(t)
	mockReportStore.AssertExpectations(t)
	mockHistoryStore.AssertExpectations(t)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_Evaluate_LoadsJobsFromFile(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	loaded := []m.Job{
		{Kind: m.KindFactorial, From: 0, To: 1},
	}

	mockJobsLoader.EXPECT().LoadJobs(mock.Anything, m.Path("jobs.yaml")).Return(loaded, nil).Once()

	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayRunInfo(mock.Anything, 1, 1, 2).Return().Once()
	mockUI.EXPECT().DisplayTermResult(mock.Anything, mock.Anything).Return().Times(2)

	// Jobs loaded without an ID must get one before they reach the workers.
	resultChannel := make(chan m.TermResult, 2)
	resultChannel <- m.TermResult{JobID: "assigned", Kind: m.KindFactorial, N: 0, Value: "1"}
	resultChannel <- m.TermResult{JobID: "assigned", Kind: m.KindFactorial, N: 1, Value: "1"}
	close(resultChannel)
	errorChannel := make(chan error, 1)
	close(errorChannel)

	mockStreamer.EXPECT().Stream(mock.Anything, mock.MatchedBy(func(jobs []m.Job) bool {
		return len(jobs) == 1 && jobs[0].ID != "" && jobs[0].Kind == m.KindFactorial
	}), 1).Return((<-chan m.TermResult)(resultChannel), (<-chan error)(errorChannel)).Once()

	// Without Persist the summary links no report file.
	mockHistoryStore.EXPECT().AddSummary(mock.Anything, mock.MatchedBy(func(summary m.RunSummary) bool {
		return summary.Report == m.Path("") && summary.Terms == 2
	})).Return(nil).Once()

	mockUI.EXPECT().DisplayReport(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.Evaluate(domain.EvaluateArgs{
		JobsFile: "jobs.yaml",
		Workers:  1,
	})

	// Assert
	assert.NoError(t, err)
	mockJobsLoader.AssertExpectations(t)
	mockStreamer.AssertExpectations(t)
	mockHistoryStore.AssertExpectations(t)
	mockUI.AssertExpectations(t)
	mockReportStore.AssertNotCalled(t, "SaveReport", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkflow_Evaluate_NoJobs(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.Evaluate(domain.EvaluateArgs{})

	// Assert
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "no jobs to evaluate")
	mockUI.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestWorkflow_Evaluate_LoadJobsError(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	loadErr := errors.New("jobs file is unreadable")
	mockJobsLoader.EXPECT().LoadJobs(mock.Anything, m.Path("jobs.yaml")).Return(nil, loadErr).Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.Evaluate(domain.EvaluateArgs{JobsFile: "jobs.yaml"})

	// Assert
	assert.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "resolve jobs")
	mockJobsLoader.AssertExpectations(t)
	mockUI.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestWorkflow_Evaluate_StartError(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	startErr := errors.New("start failed")
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(startErr).Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.Evaluate(domain.EvaluateArgs{
		Jobs: []m.Job{{ID: "job-fib", Kind: m.KindFibonacci, From: 0, To: 1}},
	})

	// Assert
	assert.ErrorIs(t, err, startErr)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_Evaluate_StreamError(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	evalErr := errors.New("evaluate job job-fib: boom")

	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayRunInfo(mock.Anything, 1, 1, 2).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	resultChannel := make(chan m.TermResult)
	close(resultChannel)
	errorChannel := make(chan error, 1)
	errorChannel <- evalErr
	close(errorChannel)

	mockStreamer.EXPECT().Stream(mock.Anything, mock.Anything, 1).
		Return((<-chan m.TermResult)(resultChannel), (<-chan error)(errorChannel)).Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.Evaluate(domain.EvaluateArgs{
		Jobs:    []m.Job{{ID: "job-fib", Kind: m.KindFibonacci, From: 0, To: 1}},
		Workers: 1,
	})

	// Assert
	assert.ErrorIs(t, err, evalErr)
	assert.Contains(t, err.Error(), "evaluate jobs")
	mockStreamer.AssertExpectations(t)
	mockUI.AssertExpectations(t)
	mockHistoryStore.AssertNotCalled(t, "AddSummary", mock.Anything, mock.Anything)
	mockUI.AssertNotCalled(t, "DisplayReport", mock.Anything, mock.Anything)
}

func TestWorkflow_Evaluate_SaveReportError(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	saveErr := errors.New("reports directory is read only")

	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayRunInfo(mock.Anything, 1, 1, 1).Return().Once()
	mockUI.EXPECT().DisplayTermResult(mock.Anything, mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	streamOf(mockStreamer, 1, m.TermResult{JobID: "job-fact", Kind: m.KindFactorial, N: 5, Value: "120"})

	mockReportStore.EXPECT().SaveReport(mock.Anything, m.Path("reports"), mock.Anything).
		Return(m.Path(""), saveErr).Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.Evaluate(domain.EvaluateArgs{
		Jobs:    []m.Job{{ID: "job-fact", Kind: m.KindFactorial, From: 5, To: 5}},
		Workers: 1,
		Reports: "reports",
		Persist: true,
	})

	// Assert
	assert.ErrorIs(t, err, saveErr)
	assert.Contains(t, err.Error(), "save report")
	mockReportStore.AssertExpectations(t)
	mockUI.AssertExpectations(t)
	mockHistoryStore.AssertNotCalled(t, "AddSummary", mock.Anything, mock.Anything)
}

func TestWorkflow_Evaluate_DiffShowsSortJobs(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	jobs := []m.Job{
		{ID: "job-fib", Kind: m.KindFibonacci, From: 1, To: 1},
		{ID: "job-sort", Kind: m.KindSort, Values: []float64{3, 1, 2}},
	}

	results := []m.TermResult{
		{JobID: "job-fib", Kind: m.KindFibonacci, N: 1, Value: "1"},
		{JobID: "job-sort", Kind: m.KindSort, N: 3, Value: "[1 2 3]", Sequence: []string{"1", "2", "3"}},
	}

	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayRunInfo(mock.Anything, 1, 2, 2).Return().Once()
	mockUI.EXPECT().DisplayTermResult(mock.Anything, mock.Anything).Return().Times(2)

	streamOf(mockStreamer, 1, results...)

	mockHistoryStore.EXPECT().AddSummary(mock.Anything, mock.Anything).Return(nil).Once()

	// Only the sort job gets a diff, rendered input against output.
	mockUI.EXPECT().DisplayDiff(mock.Anything, []string{"3", "1", "2"}, []string{"1", "2", "3"}).Return(nil).Once()

	mockUI.EXPECT().DisplayReport(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.Evaluate(domain.EvaluateArgs{
		Jobs:    jobs,
		Workers: 1,
		Diff:    true,
	})

	// Assert
	assert.NoError(t, err)
	mockStreamer.AssertExpectations(t)
	mockHistoryStore.AssertExpectations(t)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_Evaluate_DisplayReportError(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	displayErr := errors.New("display failed")

	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayRunInfo(mock.Anything, 1, 1, 1).Return().Once()
	mockUI.EXPECT().DisplayTermResult(mock.Anything, mock.Anything).Return().Once()
	mockUI.EXPECT().DisplayReport(mock.Anything, mock.Anything).Return(displayErr).Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	streamOf(mockStreamer, 1, m.TermResult{JobID: "job-fib", Kind: m.KindFibonacci, N: 1, Value: "1"})

	mockHistoryStore.EXPECT().AddSummary(mock.Anything, mock.Anything).Return(nil).Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.Evaluate(domain.EvaluateArgs{
		Jobs:    []m.Job{{ID: "job-fib", Kind: m.KindFibonacci, From: 1, To: 1}},
		Workers: 1,
	})

	// Assert
	assert.ErrorIs(t, err, displayErr)
	assert.Contains(t, err.Error(), "display")
	mockUI.AssertExpectations(t)
	mockUI.AssertNotCalled(t, "Wait", mock.Anything)
}

func TestWorkflow_View_Success(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	report := m.RunReport{
		RunID:     "run-1",
		StartedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		Jobs:      1,
		Results: []m.TermResult{
			{JobID: "job-fib", Kind: m.KindFibonacci, N: 10, Value: "55"},
		},
	}

	mockReportStore.EXPECT().LoadReport(mock.Anything, m.Path("reports"), "run-1").Return(report, nil).Once()
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplayReport(mock.Anything, report).Return(nil).Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.View(domain.ViewArgs{Reports: "reports", RunID: "run-1"})

	// Assert
	assert.NoError(t, err)
	mockReportStore.AssertExpectations(t)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_View_LoadError(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	loadErr := errors.New("no report for run")
	mockReportStore.EXPECT().LoadReport(mock.Anything, m.Path("reports"), "missing").Return(m.RunReport{}, loadErr).Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.View(domain.ViewArgs{Reports: "reports", RunID: "missing"})

	// Assert
	assert.ErrorIs(t, err, loadErr)
	assert.Contains(t, err.Error(), "load report")
	mockReportStore.AssertExpectations(t)
	mockUI.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestWorkflow_History_List(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	summaries := []m.RunSummary{
		{RunID: "run-2", Kinds: "sort", Jobs: 1, Terms: 1},
		{RunID: "run-1", Kinds: "fibonacci,factorial", Jobs: 2, Terms: 12, Failures: 1},
	}

	mockHistoryStore.EXPECT().ListSummaries(mock.Anything, 5).Return(summaries, nil).Once()
	mockUI.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	mockUI.EXPECT().DisplaySummaries(mock.Anything, summaries).Return(nil).Once()
	mockUI.EXPECT().Wait(mock.Anything).Return().Once()
	mockUI.EXPECT().Close(mock.Anything).Return().Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.History(domain.HistoryArgs{Limit: 5})

	// Assert
	assert.NoError(t, err)
	mockHistoryStore.AssertExpectations(t)
	mockUI.AssertExpectations(t)
}

func TestWorkflow_History_Clear(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	mockHistoryStore.EXPECT().ClearHistory(mock.Anything).Return(nil).Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.History(domain.HistoryArgs{Clear: true})

	// Assert
	assert.NoError(t, err)
	mockHistoryStore.AssertExpectations(t)
	mockHistoryStore.AssertNotCalled(t, "ListSummaries", mock.Anything, mock.Anything)
	mockUI.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

func TestWorkflow_History_ListError(t *testing.T) {
	// Arrange
	mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer := newWorkflowMocks()

	listErr := errors.New("history database is locked")
	mockHistoryStore.EXPECT().ListSummaries(mock.Anything, 20).Return(nil, listErr).Once()

	wf := domain.NewWorkflow(mockReportStore, mockHistoryStore, mockJobsLoader, mockUI, mockStreamer)

	// Act
	err := wf.History(domain.HistoryArgs{Limit: 20})

	// Assert
	assert.ErrorIs(t, err, listErr)
	assert.Contains(t, err.Error(), "list history")
	mockHistoryStore.AssertExpectations(t)
	mockUI.AssertNotCalled(t, "Start", mock.Anything, mock.Anything)
}

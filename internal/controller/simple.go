package controller

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/pmezard/go-difflib/difflib"
	"github.com/spf13/cobra"

	m "reckon.dev/pkg/reckon/internal/model"
)

// maxValueWidth caps the rendered value column; full values live in the
// report file.
const maxValueWidth = 40

// SimpleUI implements UI using cobra Command's output stream.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return nil
}

// Close finalizes the UI.
func (s *SimpleUI) Close(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// Wait blocks until the UI is closed (no-op for SimpleUI).
func (s *SimpleUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
	// SimpleUI doesn't block - it just prints and continues
}

// DisplayRunInfo shows the run shape before evaluation starts.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, workers int, jobs int, terms int) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Evaluating %d job(s), %d term(s) with %d worker(s)\n", jobs, terms, workers)
}

// DisplayTermResult reports failed terms as they happen. Successful terms
// appear in the final report table instead.
func (s *SimpleUI) DisplayTermResult(ctx context.Context, result m.TermResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if result.Status != m.TermError {
		return
	}

	s.printf("term error: %s n=%d: %s\n", result.Kind, result.N, result.Err)
}

// DisplayReport prints the full results table followed by per-kind tallies.
func (s *SimpleUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", renderResultsTable(report.Results))

	for _, kind := range m.Kinds() {
		tally, ok := report.Tally[kind]
		if !ok {
			continue
		}

		s.printf("%s: %d term(s), %d error(s)\n", kind, tally.Terms, tally.Errors)
	}

	s.printf("Run %s finished in %s, %d failure(s)\n", report.RunID, report.Elapsed().Round(time.Millisecond), report.Failures())

	return nil
}

func renderResultsTable(results []m.TermResult) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Kind", "Variant", "N", "Value", "Status", "Elapsed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_RIGHT,
	})

	for _, result := range results {
		value := result.Value
		if result.Status == m.TermError {
			value = result.Err
		}

		table.Append([]string{
			string(result.Kind),
			string(result.Variant),
			strconv.Itoa(result.N),
			truncateValue(value),
			result.Status.String(),
			result.Elapsed.Round(time.Microsecond).String(),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Terms %d", len(results)),
		"", "", "", "", "",
	})

	table.Render()

	return tableBuffer.String()
}

// DisplaySummaries prints the run history table.
func (s *SimpleUI) DisplaySummaries(ctx context.Context, summaries []m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(summaries) == 0 {
		s.printf("No runs recorded yet\n")
		return nil
	}

	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Run", "Started", "Kinds", "Jobs", "Terms", "Failures", "Elapsed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	for _, summary := range summaries {
		table.Append([]string{
			shortRunID(summary.RunID),
			summary.StartedAt.Format("2006-01-02 15:04:05"),
			summary.Kinds,
			strconv.Itoa(summary.Jobs),
			strconv.Itoa(summary.Terms),
			strconv.Itoa(summary.Failures),
			summary.Elapsed.Round(time.Millisecond).String(),
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Runs %d", len(summaries)),
		"", "", "", "", "", "",
	})

	table.Render()

	s.printf("\n%s", tableBuffer.String())

	return nil
}

// DisplayDiff prints a unified diff between the input and sorted order.
func (s *SimpleUI) DisplayDiff(ctx context.Context, before []string, after []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diff, err := renderUnifiedDiff(before, after)
	if err != nil {
		return err
	}

	if diff == "" {
		s.printf("already sorted\n")
		return nil
	}

	s.printf("%s\n", diff)

	return nil
}

// renderUnifiedDiff diffs the element sequences one element per line.
func renderUnifiedDiff(before []string, after []string) (string, error) {
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(strings.Join(before, "\n")),
		B:        difflib.SplitLines(strings.Join(after, "\n")),
		FromFile: "input",
		ToFile:   "sorted",
		Context:  3,
	})
	if err != nil {
		return "", fmt.Errorf("render diff: %w", err)
	}

	return diff, nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

// truncateValue keeps the head and tail of values too wide for a table cell.
func truncateValue(value string) string {
	if len(value) <= maxValueWidth {
		return value
	}

	const keep = 18

	return value[:keep] + "..." + value[len(value)-keep:]
}

// shortRunID abbreviates a run UUID for table display.
func shortRunID(runID string) string {
	if len(runID) <= 8 {
		return runID
	}

	return runID[:8]
}

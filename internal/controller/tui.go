package controller

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "reckon.dev/pkg/reckon/internal/model"
)

var (
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
)

// progressBarWidth caps the live progress bar width.
const progressBarWidth = 60

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	cmd     *cobra.Command
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI writing to the command's output stream.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{cmd: cmd}
}

// Start launches the live progress program in run mode. View mode renders on
// demand and launches nothing here.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	config := StartConfig{}
	for _, option := range options {
		option(&config)
	}

	if config.mode != ModeRun {
		return nil
	}

	t.done = make(chan struct{})
	t.program = tea.NewProgram(newRunModel(config.totalTerms), tea.WithOutput(t.cmd.OutOrStdout()))

	go func() {
		defer close(t.done)

		_, _ = t.program.Run()
	}()

	return nil
}

// Close stops the live program if it is still running.
func (t *TUI) Close(ctx context.Context) {
	if t.program == nil {
		return
	}

	t.program.Quit()

	select {
	case <-t.done:
	case <-ctx.Done():
	}

	t.program = nil
}

// Wait blocks until the UI is closed. The TUI pagers block inside the
// Display methods, so there is nothing left to wait for here.
func (t *TUI) Wait(ctx context.Context) {
	if err := ctx.Err(); err != nil {
		return
	}
}

// DisplayRunInfo feeds the run shape into the live progress view.
func (t *TUI) DisplayRunInfo(ctx context.Context, workers int, jobs int, terms int) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program == nil {
		return
	}

	t.program.Send(runInfoMsg{workers: workers, jobs: jobs, terms: terms})
}

// DisplayTermResult feeds one finished term into the live progress view.
func (t *TUI) DisplayTermResult(ctx context.Context, result m.TermResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	if t.program == nil {
		return
	}

	t.program.Send(termMsg{result: result})
}

// DisplayReport stops the live view and renders the results table, paginated
// when it does not fit the terminal.
func (t *TUI) DisplayReport(ctx context.Context, report m.RunReport) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	t.finishRunProgram()

	content := strings.TrimRight(renderResultsTable(report.Results), "\n")

	summary := make([]string, 0, len(report.Tally)+1)

	for _, kind := range m.Kinds() {
		tally, ok := report.Tally[kind]
		if !ok {
			continue
		}

		summary = append(summary, fmt.Sprintf("%s: %d term(s), %d error(s)", kind, tally.Terms, tally.Errors))
	}

	failures := fmt.Sprintf("%d failure(s)", report.Failures())
	if report.Failures() > 0 {
		failures = errorStyle.Render(failures)
	} else {
		failures = okStyle.Render(failures)
	}

	summary = append(summary, fmt.Sprintf("Run %s finished in %s, %s",
		shortRunID(report.RunID), report.Elapsed().Round(time.Millisecond), failures))

	model := newPagerModel("Run results", strings.Split(content, "\n"), summary)

	return t.renderPager(model)
}

// DisplaySummaries renders the run history, paginated when needed.
func (t *TUI) DisplaySummaries(ctx context.Context, summaries []m.RunSummary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if len(summaries) == 0 {
		_, err := fmt.Fprintln(t.cmd.OutOrStdout(), "No runs recorded yet")
		return err
	}

	lines := make([]string, 0, len(summaries))
	for _, summary := range summaries {
		lines = append(lines, fmt.Sprintf("%s  %s  %s  %d job(s)  %d term(s)  %d failure(s)  %s",
			shortRunID(summary.RunID),
			summary.StartedAt.Format("2006-01-02 15:04:05"),
			summary.Kinds,
			summary.Jobs,
			summary.Terms,
			summary.Failures,
			summary.Elapsed.Round(time.Millisecond)))
	}

	model := newPagerModel("Run history", lines, []string{fmt.Sprintf("%d run(s)", len(summaries))})

	return t.renderPager(model)
}

// DisplayDiff renders the input-versus-sorted diff with added and removed
// lines colored.
func (t *TUI) DisplayDiff(ctx context.Context, before []string, after []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	diff, err := renderUnifiedDiff(before, after)
	if err != nil {
		return err
	}

	if diff == "" {
		_, err := fmt.Fprintln(t.cmd.OutOrStdout(), "already sorted")
		return err
	}

	lines := strings.Split(strings.TrimRight(diff, "\n"), "\n")
	for i, line := range lines {
		switch {
		case strings.HasPrefix(line, "+"):
			lines[i] = okStyle.Render(line)
		case strings.HasPrefix(line, "-"):
			lines[i] = errorStyle.Render(line)
		}
	}

	model := newPagerModel("Sort diff", lines, nil)

	return t.renderPager(model)
}

// finishRunProgram tells the live view the run ended and waits for it to
// shut down so the pager owns the terminal.
func (t *TUI) finishRunProgram() {
	if t.program == nil {
		return
	}

	t.program.Send(runFinishedMsg{})
	<-t.done
	t.program = nil
}

// renderPager shows the model statically when it fits the terminal and
// switches to an interactive alternate-screen pager when it does not.
func (t *TUI) renderPager(model pagerModel) error {
	// Get initial terminal size
	if f, ok := t.cmd.OutOrStdout().(*os.File); ok {
		width, height, err := term.GetSize(int(f.Fd()))
		if err == nil {
			model.height = height
			model.width = width
		}
	}

	// If the content is small, just print and exit
	if !model.needsPagination() {
		_, err := fmt.Fprint(t.cmd.OutOrStdout(), model.View())
		return err
	}

	program := tea.NewProgram(model, tea.WithOutput(t.cmd.OutOrStdout()), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

type termMsg struct {
	result m.TermResult
}

type runInfoMsg struct {
	workers int
	jobs    int
	terms   int
}

type runFinishedMsg struct{}

// runModel is the Bubble Tea model for the live evaluation view.
type runModel struct {
	spinner  spinner.Model
	progress progress.Model
	info     runInfoMsg
	total    int
	done     int
	failures int
	lastTerm string
	width    int
	quitting bool
}

func newRunModel(total int) runModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = spinnerStyle

	pr := progress.New(progress.WithDefaultGradient())

	return runModel{
		spinner:  sp,
		progress: pr,
		total:    total,
	}
}

func (rm runModel) Init() tea.Cmd {
	return rm.spinner.Tick
}

func (rm runModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		rm.width = msg.Width

		rm.progress.Width = msg.Width - 8
		if rm.progress.Width > progressBarWidth {
			rm.progress.Width = progressBarWidth
		}

		return rm, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC || msg.String() == "q" {
			rm.quitting = true
			return rm, tea.Quit
		}

		return rm, nil

	case runInfoMsg:
		rm.info = msg
		return rm, nil

	case termMsg:
		rm.done++

		if msg.result.Status == m.TermError {
			rm.failures++
		}

		rm.lastTerm = renderTermLine(msg.result)

		return rm, nil

	case runFinishedMsg:
		rm.quitting = true
		return rm, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		rm.spinner, cmd = rm.spinner.Update(msg)

		return rm, cmd
	}

	return rm, nil
}

func (rm runModel) View() string {
	if rm.quitting {
		return ""
	}

	var b strings.Builder

	if rm.info.jobs > 0 {
		fmt.Fprintf(&b, "\n  %s\n", faintStyle.Render(fmt.Sprintf(
			"%d job(s), %d term(s), %d worker(s)", rm.info.jobs, rm.info.terms, rm.info.workers)))
	}

	fmt.Fprintf(&b, "\n  %s computing %d/%d terms", rm.spinner.View(), rm.done, rm.total)

	if rm.failures > 0 {
		fmt.Fprintf(&b, " (%s)", errorStyle.Render(fmt.Sprintf("%d failed", rm.failures)))
	}

	percent := 0.0
	if rm.total > 0 {
		percent = float64(rm.done) / float64(rm.total)
	}

	b.WriteString("\n\n  " + rm.progress.ViewAs(percent) + "\n")

	if rm.lastTerm != "" {
		b.WriteString("  " + faintStyle.Render(rm.lastTerm) + "\n")
	}

	return b.String()
}

func renderTermLine(result m.TermResult) string {
	if result.Status == m.TermError {
		return fmt.Sprintf("%s n=%d: %s", result.Kind, result.N, result.Err)
	}

	return fmt.Sprintf("%s n=%d -> %s", result.Kind, result.N, truncateValue(result.Value))
}

// pagerModel is the Bubble Tea model for scrolling through rendered lines.
type pagerModel struct {
	title    string
	lines    []string
	summary  []string
	height   int
	width    int
	offset   int // Current scroll offset
	quitting bool
}

func newPagerModel(title string, lines []string, summary []string) pagerModel {
	return pagerModel{
		title:   title,
		lines:   lines,
		summary: summary,
	}
}

func (pm pagerModel) Init() tea.Cmd {
	return nil
}

func (pm pagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		pm.height = msg.Height
		pm.width = msg.Width

		return pm, nil

	case tea.KeyMsg:
		return pm.handleKeyPress(msg)
	}

	return pm, nil
}

func (pm pagerModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	//nolint:exhaustive // We only handle specific navigation keys
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		pm.quitting = true
		return pm, tea.Quit
	default:
		// Handle other key types in the string switch below
	}

	switch msg.String() {
	case "q":
		pm.quitting = true
		return pm, tea.Quit

	case "down", "j":
		pm.offset++

		maxOffset := pm.maxOffset()
		if pm.offset > maxOffset {
			pm.offset = maxOffset
		}

		return pm, nil

	case "up", "k":
		pm.offset--
		if pm.offset < 0 {
			pm.offset = 0
		}

		return pm, nil

	case "g", "home":
		pm.offset = 0

		return pm, nil

	case "G", "end":
		pm.offset = pm.maxOffset()

		return pm, nil

	case "d", "pgdown":
		pm.offset += pm.itemsPerPage()

		maxOffset := pm.maxOffset()
		if pm.offset > maxOffset {
			pm.offset = maxOffset
		}

		return pm, nil

	case "u", "pgup":
		pm.offset -= pm.itemsPerPage()
		if pm.offset < 0 {
			pm.offset = 0
		}

		return pm, nil
	}

	return pm, nil
}

// itemsPerPage calculates how many content lines fit on screen.
func (pm pagerModel) itemsPerPage() int {
	if pm.height == 0 {
		return 10 // Default
	}
	// Reserve space for:
	// - Title: 2 lines
	// - Summary: its lines + 1 blank
	// - Footer: 3 lines (blank + position + help)
	reserved := 6 + len(pm.summary)

	available := pm.height - reserved
	if available < 1 {
		return 1
	}

	return available
}

// maxOffset returns the maximum scroll offset.
func (pm pagerModel) maxOffset() int {
	maxOff := len(pm.lines) - pm.itemsPerPage()
	if maxOff < 0 {
		return 0
	}

	return maxOff
}

// needsPagination returns true if the content is too large to fit on screen.
func (pm pagerModel) needsPagination() bool {
	if len(pm.lines) == 0 || pm.height == 0 {
		return false
	}

	return len(pm.lines) > pm.itemsPerPage()
}

func (pm pagerModel) View() string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render(pm.title) + "\n\n")

	needsPagination := pm.needsPagination()

	start := pm.offset
	end := start + pm.itemsPerPage()

	if !needsPagination {
		start = 0
		end = len(pm.lines)
	}

	if start >= len(pm.lines) {
		start = len(pm.lines) - 1
		if start < 0 {
			start = 0
		}
	}

	if end > len(pm.lines) {
		end = len(pm.lines)
	}

	for _, line := range pm.lines[start:end] {
		b.WriteString(line + "\n")
	}

	if len(pm.summary) > 0 {
		b.WriteString("\n")

		for _, line := range pm.summary {
			b.WriteString("  " + line + "\n")
		}
	}

	if needsPagination {
		b.WriteString("\n")
		fmt.Fprintf(&b, "  Lines %d-%d of %d\n", start+1, end, len(pm.lines))
		b.WriteString("  ↑/k: up | ↓/j: down | g: top | G: bottom | q: quit\n")
	}

	return b.String()
}

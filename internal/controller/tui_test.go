package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "reckon.dev/pkg/reckon/internal/model"
)

func newBufferedTUI() (*TUI, *bytes.Buffer) {
	var buf bytes.Buffer

	cmd := &cobra.Command{}
	cmd.SetOut(&buf)

	return NewTUI(cmd), &buf
}

func TestRunModel_View_Basic(t *testing.T) {
	model := newRunModel(10)
	model.done = 3
	model.failures = 2
	model.info = runInfoMsg{workers: 4, jobs: 2, terms: 10}
	model.lastTerm = "fibonacci n=10 -> 55"

	view := model.View()

	wantStrings := []string{
		"2 job(s), 10 term(s), 4 worker(s)",
		"computing 3/10 terms",
		"2 failed",
		"fibonacci n=10 -> 55",
	}

	for _, want := range wantStrings {
		if !strings.Contains(view, want) {
			t.Errorf("View() should contain %q, got:\n%s", want, view)
		}
	}
}

func TestRunModel_View_Quitting(t *testing.T) {
	model := newRunModel(5)
	model.quitting = true

	if view := model.View(); view != "" {
		t.Errorf("View() should be empty after quitting, got: %s", view)
	}
}

func TestRunModel_Update_TermMsg(t *testing.T) {
	model := newRunModel(5)

	updated, _ := model.Update(termMsg{result: m.TermResult{Kind: m.KindSort, Status: m.TermError, Err: "boom"}})

	rm, ok := updated.(runModel)
	if !ok {
		t.Fatalf("Update() returned %T, want runModel", updated)
	}

	if rm.done != 1 {
		t.Errorf("done = %d, want 1", rm.done)
	}

	if rm.failures != 1 {
		t.Errorf("failures = %d, want 1", rm.failures)
	}

	if !strings.Contains(rm.lastTerm, "boom") {
		t.Errorf("lastTerm should carry the error, got: %s", rm.lastTerm)
	}
}

func TestRunModel_Update_RunFinished(t *testing.T) {
	model := newRunModel(5)

	updated, cmd := model.Update(runFinishedMsg{})

	rm, ok := updated.(runModel)
	if !ok {
		t.Fatalf("Update() returned %T, want runModel", updated)
	}

	if !rm.quitting {
		t.Error("runFinishedMsg should mark the model as quitting")
	}

	if cmd == nil {
		t.Fatal("runFinishedMsg should quit the program")
	}

	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("runFinishedMsg should produce tea.Quit")
	}
}

func TestPagerModel_NoPagination_ShowsAllContent(t *testing.T) {
	lines := []string{"alpha", "beta", "gamma"}

	model := newPagerModel("Run results", lines, []string{"3 line(s)"})
	model.height = 50
	model.width = 80

	if model.needsPagination() {
		t.Error("Should not need pagination with 3 lines and height 50")
	}

	view := model.View()

	for _, line := range lines {
		if !strings.Contains(view, line) {
			t.Errorf("View() should contain %q", line)
		}
	}

	if strings.Contains(view, "Lines 1-") {
		t.Error("Should not show line indicator when pagination not needed")
	}
}

func TestPagerModel_Pagination_VisibleContent(t *testing.T) {
	lines := make([]string, 100)
	for i := range lines {
		lines[i] = fmt.Sprintf("row %03d", i)
	}

	model := newPagerModel("Run results", lines, nil)
	model.height = 20
	model.width = 80

	if !model.needsPagination() {
		t.Error("Expected needsPagination to be true with 100 lines and height 20")
	}

	view := model.View()

	visible := 0
	for _, line := range strings.Split(view, "\n") {
		if strings.HasPrefix(line, "row ") {
			visible++
		}
	}

	itemsPerPage := model.itemsPerPage()
	t.Logf("Items per page: %d, rows visible: %d", itemsPerPage, visible)

	if visible >= 100 {
		t.Errorf("Should not show all 100 rows in view, showed %d", visible)
	}

	if visible != itemsPerPage {
		t.Errorf("Should show %d rows, showed %d", itemsPerPage, visible)
	}

	if !strings.Contains(view, "row 000") {
		t.Error("First page should contain first row")
	}

	if strings.Contains(view, "row 099") {
		t.Error("First page should NOT contain last row")
	}

	if !strings.Contains(view, "Lines 1-") {
		t.Error("Should show line indicator when paginated")
	}

	for _, help := range []string{"↑", "↓", "q"} {
		if !strings.Contains(view, help) {
			t.Errorf("Should show navigation help %q", help)
		}
	}
}

func TestPagerModel_HandleKeyPress_Navigation(t *testing.T) {
	lines := make([]string, 40)
	for i := range lines {
		lines[i] = fmt.Sprintf("row %d", i)
	}

	model := newPagerModel("Run results", lines, nil)
	model.height = 16
	model.width = 80

	press := func(pm pagerModel, key tea.KeyMsg) pagerModel {
		updated, _ := pm.Update(key)

		next, ok := updated.(pagerModel)
		if !ok {
			t.Fatalf("Update() returned %T, want pagerModel", updated)
		}

		return next
	}

	down := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}}
	up := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}}
	bottom := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'G'}}
	top := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}}

	model = press(model, down)
	if model.offset != 1 {
		t.Errorf("offset after j = %d, want 1", model.offset)
	}

	model = press(model, up)
	if model.offset != 0 {
		t.Errorf("offset after k = %d, want 0", model.offset)
	}

	model = press(model, up)
	if model.offset != 0 {
		t.Errorf("offset should not go below 0, got %d", model.offset)
	}

	model = press(model, bottom)
	if model.offset != model.maxOffset() {
		t.Errorf("offset after G = %d, want %d", model.offset, model.maxOffset())
	}

	model = press(model, down)
	if model.offset != model.maxOffset() {
		t.Errorf("offset should not pass maxOffset, got %d", model.offset)
	}

	model = press(model, top)
	if model.offset != 0 {
		t.Errorf("offset after g = %d, want 0", model.offset)
	}

	updated, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})

	quit, ok := updated.(pagerModel)
	if !ok {
		t.Fatalf("Update() returned %T, want pagerModel", updated)
	}

	if !quit.quitting {
		t.Error("q should mark the pager as quitting")
	}

	if cmd == nil {
		t.Fatal("q should quit the program")
	}
}

func TestTUI_DisplayReport_PrintsStaticTable(t *testing.T) {
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	report := m.RunReport{
		RunID:      "0b5fb2e1-9d58-4d3a-8e53-1f6c3e2ad901",
		StartedAt:  started,
		FinishedAt: started.Add(10 * time.Millisecond),
		Jobs:       1,
		Results: []m.TermResult{
			{Kind: m.KindFibonacci, Variant: m.VariantIterative, N: 10, Value: "55", Status: m.TermOK},
		},
		Tally: map[m.Kind]m.KindTally{
			m.KindFibonacci: {Terms: 1, Errors: 0},
		},
	}

	tui, buf := newBufferedTUI()

	// Without a terminal the pager has no height and prints everything.
	if err := tui.DisplayReport(context.Background(), report); err != nil {
		t.Fatalf("DisplayReport() error = %v", err)
	}

	got := buf.String()

	wantContains := []string{
		"Run results",
		"fibonacci",
		"55",
		"fibonacci: 1 term(s), 0 error(s)",
		"Run 0b5fb2e1 finished in 10ms",
	}

	for _, want := range wantContains {
		if !strings.Contains(got, want) {
			t.Errorf("DisplayReport() output missing %q, got: %s", want, got)
		}
	}
}

func TestTUI_DisplaySummaries_Empty(t *testing.T) {
	tui, buf := newBufferedTUI()

	if err := tui.DisplaySummaries(context.Background(), nil); err != nil {
		t.Fatalf("DisplaySummaries() error = %v", err)
	}

	if !strings.Contains(buf.String(), "No runs recorded yet") {
		t.Errorf("Expected empty message, got: %s", buf.String())
	}
}

func TestTUI_DisplayDiff_AlreadySorted(t *testing.T) {
	tui, buf := newBufferedTUI()

	err := tui.DisplayDiff(context.Background(), []string{"1", "2"}, []string{"1", "2"})
	if err != nil {
		t.Fatalf("DisplayDiff() error = %v", err)
	}

	if !strings.Contains(buf.String(), "already sorted") {
		t.Errorf("Expected sorted message, got: %s", buf.String())
	}
}

func TestTUI_DisplayDiff_ShowsChanges(t *testing.T) {
	tui, buf := newBufferedTUI()

	err := tui.DisplayDiff(context.Background(), []string{"3", "1", "2"}, []string{"1", "2", "3"})
	if err != nil {
		t.Fatalf("DisplayDiff() error = %v", err)
	}

	got := buf.String()

	for _, want := range []string{"Sort diff", "input", "sorted", "-3"} {
		if !strings.Contains(got, want) {
			t.Errorf("DisplayDiff() output missing %q, got: %s", want, got)
		}
	}
}

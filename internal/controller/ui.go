// Package controller provides output adapters for displaying computation results.
package controller

import (
	"context"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	m "reckon.dev/pkg/reckon/internal/model"
)

// StartMode defines the mode of operation for the UI.
type StartMode int

// Available StartMode values.
const (
	ModeRun StartMode = iota
	ModeView
)

// StartOption is a functional option for Start method.
type StartOption func(*StartConfig)

// StartConfig holds configuration for starting the UI.
type StartConfig struct {
	mode       StartMode
	totalTerms int
}

// WithRunMode sets the UI to live run mode with a known term total.
func WithRunMode(totalTerms int) StartOption {
	return func(c *StartConfig) {
		c.mode = ModeRun
		c.totalTerms = totalTerms
	}
}

// WithViewMode sets the UI to static display mode.
func WithViewMode() StartOption {
	return func(c *StartConfig) {
		c.mode = ModeView
	}
}

// UI defines the interface for displaying run progress and results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	Start(ctx context.Context, options ...StartOption) error
	Close(ctx context.Context)
	Wait(ctx context.Context) // Wait for UI to finish (user closes it)
	DisplayRunInfo(ctx context.Context, workers int, jobs int, terms int)
	DisplayTermResult(ctx context.Context, result m.TermResult)
	DisplayReport(ctx context.Context, report m.RunReport) error
	DisplaySummaries(ctx context.Context, summaries []m.RunSummary) error
	DisplayDiff(ctx context.Context, before []string, after []string) error
}

// NewUI selects the UI implementation: the interactive TUI on a terminal,
// plain text everywhere else.
func NewUI(cmd *cobra.Command, interactive bool) UI {
	if interactive {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

package controller

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

const calcPrompt = "calc> "

// CalcEngine is the accumulator a REPL session drives.
type CalcEngine interface {
	Apply(op string, value float64) error
	Result() float64
	Err() error
}

// CalcREPL reads calculator operations interactively and applies them to an
// engine, printing the accumulator after each step.
type CalcREPL struct {
	cmd     *cobra.Command
	engine  CalcEngine
	history []string
}

// NewCalcREPL creates a REPL around the given engine.
func NewCalcREPL(cmd *cobra.Command, engine CalcEngine) *CalcREPL {
	return &CalcREPL{cmd: cmd, engine: engine}
}

// Run loops until the user quits or sends EOF.
func (r *CalcREPL) Run(ctx context.Context) error {
	r.printf("Interactive calculator. Operations: add, sub, mul, div, reset. Type 'quit' to exit.\n")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := r.readLine()
		if err != nil {
			if err == io.EOF {
				r.printf("\n")
				return nil
			}

			return fmt.Errorf("read input: %w", err)
		}

		if line == "" {
			continue
		}

		if line == "quit" || line == "exit" || line == "q" {
			return nil
		}

		r.eval(line)
	}
}

func (r *CalcREPL) eval(line string) {
	fields := strings.Fields(line)
	op := fields[0]

	switch op {
	case "result", "=":
		r.printResult()
		return

	case "help":
		r.printf("add <n>, sub <n>, mul <n>, div <n>, reset, result, quit\n")
		return

	case "reset":
		_ = r.engine.Apply("reset", 0)
		r.printResult()

		return
	}

	if len(fields) != 2 {
		r.printf("usage: %s <number>\n", op)
		return
	}

	value, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		r.printf("not a number: %s\n", fields[1])
		return
	}

	if err := r.engine.Apply(op, value); err != nil {
		r.printf("%s\n", errorStyle.Render(err.Error()))
		return
	}

	r.printResult()
}

func (r *CalcREPL) printResult() {
	if err := r.engine.Err(); err != nil {
		r.printf("= %s (%s)\n", formatResult(r.engine.Result()), errorStyle.Render(err.Error()))
		return
	}

	r.printf("= %s\n", formatResult(r.engine.Result()))
}

// readLine runs a one-shot text input program. Returns io.EOF when the user
// presses Ctrl+D on an empty line.
func (r *CalcREPL) readLine() (string, error) {
	ti := textinput.New()
	ti.Prompt = calcPrompt
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 60

	model := calcInputModel{
		textInput:    ti,
		history:      r.history,
		historyIndex: -1,
	}

	program := tea.NewProgram(model, tea.WithOutput(r.cmd.OutOrStdout()))

	finalModel, err := program.Run()
	if err != nil {
		return "", err
	}

	result, ok := finalModel.(calcInputModel)
	if !ok {
		return "", fmt.Errorf("unexpected model type: %T", finalModel)
	}

	if result.cancelled && result.textInput.Value() == "" {
		return "", io.EOF
	}

	line := strings.TrimSpace(result.textInput.Value())
	if line != "" {
		r.history = append(r.history, line)
	}

	// Echo the submitted line since the input program clears its view.
	r.printf("%s%s\n", calcPrompt, line)

	return line, nil
}

func (r *CalcREPL) printf(format string, args ...any) {
	fmt.Fprintf(r.cmd.OutOrStdout(), format, args...)
}

func formatResult(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// calcInputModel is the Bubble Tea model for one line of input with
// shell-style history navigation.
type calcInputModel struct {
	textInput    textinput.Model
	history      []string
	historyIndex int
	currentInput string
	cancelled    bool
	done         bool
}

func (im calcInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (im calcInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		//nolint:exhaustive // Remaining key types fall through to the input field
		switch msg.Type {
		case tea.KeyEnter:
			im.done = true
			return im, tea.Quit

		case tea.KeyCtrlC:
			im.textInput.SetValue("")
			im.done = true

			return im, tea.Quit

		case tea.KeyCtrlD:
			im.cancelled = true
			im.textInput.SetValue("")
			im.done = true

			return im, tea.Quit

		case tea.KeyUp:
			if len(im.history) == 0 {
				return im, nil
			}

			if im.historyIndex == -1 {
				im.currentInput = im.textInput.Value()
				im.historyIndex = len(im.history) - 1
			} else if im.historyIndex > 0 {
				im.historyIndex--
			}

			im.textInput.SetValue(im.history[im.historyIndex])
			im.textInput.CursorEnd()

			return im, nil

		case tea.KeyDown:
			if im.historyIndex == -1 {
				return im, nil
			}

			if im.historyIndex < len(im.history)-1 {
				im.historyIndex++
				im.textInput.SetValue(im.history[im.historyIndex])
			} else {
				im.historyIndex = -1
				im.textInput.SetValue(im.currentInput)
			}

			im.textInput.CursorEnd()

			return im, nil
		}
	}

	var cmd tea.Cmd
	im.textInput, cmd = im.textInput.Update(msg)

	return im, cmd
}

func (im calcInputModel) View() string {
	if im.done {
		return ""
	}

	return im.textInput.View()
}

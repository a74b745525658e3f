// Package cmd provides the root command and CLI setup for reckon.
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"reckon.dev/pkg/reckon/internal/adapter"
	"reckon.dev/pkg/reckon/internal/controller"
	"reckon.dev/pkg/reckon/internal/domain"
	m "reckon.dev/pkg/reckon/internal/model"
)

var reportStore adapter.ReportStore
var jobsLoader adapter.JobsLoader
var fileWatcher adapter.FileWatcher
var ui controller.UI
var workflow domain.Workflow

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// plainFlag forces plain text output even on a terminal.
var plainFlag bool

// verboseFlag raises the log level to debug.
var verboseFlag bool

// logFileFlag overrides the log file path.
var logFileFlag string

func init() {
	// Initialize shared dependencies. The workflow itself is assembled on
	// first use so the history database only opens for commands that need it.
	reportStore = adapter.NewReportStore()
	jobsLoader = adapter.NewJobsLoader()
	fileWatcher = adapter.NewFileWatcher()
}

const termRangeHelp = `Terms accept a single index or an inclusive range:
  - 10        the 10th term
  - 0..10     terms 0 through 10`

const rootLongDescription = `Reckon computes reference values for a small set of textbook routines:
Fibonacci terms, factorials, a chainable accumulator calculator, and a
non-mutating quicksort.

Single computations run directly from the command line; batches described
in a jobs file run through a worker pool and are recorded as reports and
run history.

` + termRangeHelp

const fibLongDescription = `Compute Fibonacci terms.

` + termRangeHelp

const factLongDescription = `Compute factorials.

` + termRangeHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reckon",
		Short: "Reference values for textbook routines",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVar(&plainFlag, plainFlagName, viper.GetBool(plainFlagName), "plain text output (disable the interactive terminal UI)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(plainFlagName), plainFlagName)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)

	cmd.PersistentFlags().StringVar(&logFileFlag, logFileFlagName, viper.GetString(logFilenameKey), "log file path")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(logFileFlagName), logFilenameKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// resolveWorkflow assembles the workflow on first use. Commands that never
// touch reports or history skip opening the history database entirely.
func resolveWorkflow() (domain.Workflow, error) {
	if workflow != nil {
		return workflow, nil
	}

	historyStore, err := adapter.NewHistoryStore(m.Path(viper.GetString(historyPathConfigKey)))
	if err != nil {
		slog.Error("Opening history store failed", "error", err)
		return nil, fmt.Errorf("open history store: %w", err)
	}

	if ui == nil {
		ui = controller.NewUI(rootCmd, interactiveOutput())
	}

	streamer := domain.NewResultStreamer(domain.NewEvaluator(configuredLimits()))
	workflow = domain.NewWorkflow(reportStore, historyStore, jobsLoader, ui, streamer)

	return workflow, nil
}

// interactiveOutput reports whether the terminal UI should drive output.
func interactiveOutput() bool {
	return controller.IsTTY(os.Stdout) && !viper.GetBool(plainFlagName)
}

// configuredLimits reads the evaluation guards from config.
func configuredLimits() domain.Limits {
	return domain.Limits{
		MaxN:      viper.GetInt(runMaxNConfigKey),
		NaiveMaxN: viper.GetInt(runNaiveMaxNConfigKey),
	}
}

// parseTermRange parses a term argument: a single index ("10") or an
// inclusive range ("0..10").
func parseTermRange(arg string) (int, int, error) {
	first, second, isRange := strings.Cut(arg, "..")
	if !isRange {
		n, err := strconv.Atoi(first)
		if err != nil || n < 0 {
			return 0, 0, fmt.Errorf("invalid term %q", arg)
		}

		return n, n, nil
	}

	from, err := strconv.Atoi(first)
	if err != nil || from < 0 {
		return 0, 0, fmt.Errorf("invalid term range %q", arg)
	}

	to, err := strconv.Atoi(second)
	if err != nil || to < from {
		return 0, 0, fmt.Errorf("invalid term range %q", arg)
	}

	return from, to, nil
}

// parseVariant validates an algorithm name against the variants a command
// supports. An empty value selects the iterative shape.
func parseVariant(value string, allowed ...m.Variant) (m.Variant, error) {
	variant := m.Variant(strings.ToLower(strings.TrimSpace(value)))
	if variant == "" {
		return m.VariantIterative, nil
	}

	for _, candidate := range allowed {
		if variant == candidate {
			return variant, nil
		}
	}

	return "", fmt.Errorf("unsupported algorithm %q", value)
}

// evaluateTerms runs a single sequence job in-process and prints one line per
// term, or a table when asTable is set.
func evaluateTerms(cmd *cobra.Command, job m.Job, asTable bool) error {
	evaluator := domain.NewEvaluator(configuredLimits())

	results, err := evaluator.Evaluate(cmd.Context(), job)
	if err != nil {
		return err
	}

	if asTable {
		renderTermsTable(cmd, results)
		return nil
	}

	for _, result := range results {
		if result.Status != m.TermOK {
			cmd.Printf("%s(%d): %s\n", job.Kind, result.N, result.Err)
			continue
		}

		cmd.Printf("%s(%d) = %s\n", job.Kind, result.N, result.Value)
	}

	return nil
}

func renderTermsTable(cmd *cobra.Command, results []m.TermResult) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"N", "Value", "Status", "Elapsed"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
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
			strconv.Itoa(result.N),
			value,
			result.Status.String(),
			result.Elapsed.Round(time.Microsecond).String(),
		})
	}

	table.Render()
}

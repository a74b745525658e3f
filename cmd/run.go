package cmd

import (
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reckon.dev/pkg/reckon/internal/domain"
	m "reckon.dev/pkg/reckon/internal/model"
)

const runLongDescription = `Evaluate every job in a jobs file through the worker pool, write the run
report to the reports directory and record the run in history.

The jobs file comes from the argument, or from the paths.jobs config key
when no argument is given. With --watch, the file is re-evaluated every
time it changes, until interrupted.`

var runParallelFlag int
var runWatchFlag bool
var runDiffFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [jobs-file]",
		Short: "Evaluate a jobs file",
		Long:  runLongDescription,
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jobsFile := viper.GetString(jobsPathConfigKey)
			if len(args) == 1 {
				jobsFile = args[0]
			}

			if jobsFile == "" {
				return errors.New("no jobs file given (pass one or set paths.jobs)")
			}

			evalArgs := domain.EvaluateArgs{
				JobsFile: m.Path(jobsFile),
				Workers:  viper.GetInt(runParallelConfigKey),
				Reports:  m.Path(viper.GetString(outputFlagName)),
				Persist:  true,
				Diff:     runDiffFlag,
			}

			wf, err := resolveWorkflow()
			if err != nil {
				return err
			}

			if !runWatchFlag {
				return wf.Evaluate(evalArgs)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			// A failed run keeps the watch alive; the next change retries.
			if err := wf.Evaluate(evalArgs); err != nil {
				slog.Error("Run failed", "error", err)
				cmd.PrintErrln(err)
			}

			return fileWatcher.Watch(ctx, m.Path(jobsFile), func() {
				if err := wf.Evaluate(evalArgs); err != nil {
					slog.Error("Run failed", "error", err)
					cmd.PrintErrln(err)
				}
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of parallel workers")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)
	cmd.Flags().BoolVar(&runWatchFlag, runWatchFlagName, false, "re-evaluate whenever the jobs file changes")
	cmd.Flags().BoolVar(&runDiffFlag, diffFlagName, false, "show input/output diffs for sort jobs")
}

package cmd

import (
	"github.com/spf13/cobra"

	"reckon.dev/pkg/reckon/internal/domain"
)

var historyLimitFlag int
var historyClearFlag bool

// historyCmd represents the history command.
var historyCmd = newHistoryCmd()

func newHistoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "List past runs",
		Long:  "List the most recent runs recorded in the history database, or clear it with --clear.",
		Args:  cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			wf, err := resolveWorkflow()
			if err != nil {
				return err
			}

			return wf.History(domain.HistoryArgs{
				Limit: historyLimitFlag,
				Clear: historyClearFlag,
			})
		},
	}

	configureHistoryFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(historyCmd)
}

func configureHistoryFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&historyLimitFlag, historyLimitFlagName, 0, "maximum number of runs to list (0 uses the default)")
	cmd.Flags().BoolVar(&historyClearFlag, historyClearFlagName, false, "delete all recorded runs")
}

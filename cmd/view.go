package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"reckon.dev/pkg/reckon/internal/domain"
	m "reckon.dev/pkg/reckon/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view [run-id]",
		Short: "View a stored run report",
		Long:  "Display a run report from the reports directory. Without a run ID the most recent report is shown.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			runID := ""
			if len(args) == 1 {
				runID = args[0]
			}

			wf, err := resolveWorkflow()
			if err != nil {
				return err
			}

			return wf.View(domain.ViewArgs{
				Reports: m.Path(viper.GetString(outputFlagName)),
				RunID:   runID,
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(viewCmd)
}

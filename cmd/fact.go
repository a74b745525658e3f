package cmd

import (
	"github.com/spf13/cobra"

	m "reckon.dev/pkg/reckon/internal/model"
)

var factAlgoFlag string
var factTableFlag bool

// factCmd represents the fact command.
var factCmd = newFactCmd()

func newFactCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fact [n | from..to]",
		Short: "Compute factorials",
		Long:  factLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseTermRange(args[0])
			if err != nil {
				return err
			}

			variant, err := parseVariant(factAlgoFlag, m.VariantNaive, m.VariantIterative)
			if err != nil {
				return err
			}

			return evaluateTerms(cmd, m.Job{
				Kind:    m.KindFactorial,
				Variant: variant,
				From:    from,
				To:      to,
			}, factTableFlag)
		},
	}

	configureFactFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(factCmd)
}

func configureFactFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&factAlgoFlag, algoFlagName, string(m.VariantIterative), "algorithm: naive or iterative")
	cmd.Flags().BoolVar(&factTableFlag, tableFlagName, false, "render terms as a table")
}

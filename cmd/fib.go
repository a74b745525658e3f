package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	m "reckon.dev/pkg/reckon/internal/model"
)

var fibAlgoFlag string
var fibTableFlag bool
var fibMaxNaiveFlag int

// fibCmd represents the fib command.
var fibCmd = newFibCmd()

func newFibCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fib [n | from..to]",
		Short: "Compute Fibonacci terms",
		Long:  fibLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := parseTermRange(args[0])
			if err != nil {
				return err
			}

			variant, err := parseVariant(fibAlgoFlag, m.VariantNaive, m.VariantIterative, m.VariantMemoized)
			if err != nil {
				return err
			}

			return evaluateTerms(cmd, m.Job{
				Kind:    m.KindFibonacci,
				Variant: variant,
				From:    from,
				To:      to,
			}, fibTableFlag)
		},
	}

	configureFibFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(fibCmd)
}

func configureFibFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&fibAlgoFlag, algoFlagName, string(m.VariantIterative), "algorithm: naive, iterative or memoized")
	cmd.Flags().BoolVar(&fibTableFlag, tableFlagName, false, "render terms as a table")
	cmd.Flags().IntVar(&fibMaxNaiveFlag, maxNaiveFlagName, viper.GetInt(runNaiveMaxNConfigKey), "highest term the naive algorithm may compute")
	bindFlagToConfig(cmd.Flags().Lookup(maxNaiveFlagName), runNaiveMaxNConfigKey)
}

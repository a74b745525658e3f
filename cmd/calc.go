package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"reckon.dev/pkg/reckon/internal/controller"
	"reckon.dev/pkg/reckon/internal/domain/algo"
	m "reckon.dev/pkg/reckon/internal/model"
)

const calcLongDescription = `Apply a chain of operations to an accumulator that starts at zero.

Operations are given as pairs: add 3 mul 4. Supported operations are
add, sub, mul, div and reset (reset takes no value). Without arguments
on a terminal, calc starts an interactive session.`

// calcCmd represents the calc command.
var calcCmd = newCalcCmd()

func newCalcCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calc [op value]...",
		Short: "Chain accumulator operations",
		Long:  calcLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				if controller.IsTTY(os.Stdin) {
					return controller.NewCalcREPL(cmd, algo.NewCalculator()).Run(cmd.Context())
				}

				return cmd.Help()
			}

			ops, err := parseCalcOps(args)
			if err != nil {
				return err
			}

			calc := algo.NewCalculator()
			for _, op := range ops {
				if err := calc.Apply(op.Name, op.Value); err != nil {
					return err
				}
			}

			renderCalcSteps(cmd, calc.History())

			if err := calc.Err(); err != nil {
				return err
			}

			cmd.Printf("= %s\n", formatCalcValue(calc.Result()))

			return nil
		},
	}
}

func init() {
	rootCmd.AddCommand(calcCmd)
}

// parseCalcOps turns command line tokens into operations. Every operation
// except reset consumes the following token as its value.
func parseCalcOps(args []string) ([]m.CalcOp, error) {
	ops := make([]m.CalcOp, 0, len(args))

	for i := 0; i < len(args); i++ {
		name := strings.ToLower(args[i])
		if name == "reset" {
			ops = append(ops, m.CalcOp{Name: name})
			continue
		}

		if i+1 >= len(args) {
			return nil, fmt.Errorf("operation %q needs a value", args[i])
		}

		value, err := strconv.ParseFloat(args[i+1], 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q for %s", args[i+1], name)
		}

		ops = append(ops, m.CalcOp{Name: name, Value: value})
		i++
	}

	return ops, nil
}

func renderCalcSteps(cmd *cobra.Command, steps []algo.Step) {
	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.SetHeader([]string{"Step", "Op", "Value", "Result"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_RIGHT,
	})

	for i, step := range steps {
		value := formatCalcValue(step.Value)
		if step.Op == "reset" {
			value = ""
		}

		table.Append([]string{
			strconv.Itoa(i + 1),
			step.Op,
			value,
			formatCalcValue(step.Result),
		})
	}

	table.Render()
}

func formatCalcValue(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

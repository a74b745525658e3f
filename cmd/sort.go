package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"reckon.dev/pkg/reckon/internal/controller"
	"reckon.dev/pkg/reckon/internal/domain"
	m "reckon.dev/pkg/reckon/internal/model"
)

var sortStringsFlag bool
var sortDescFlag bool
var sortDiffFlag bool

// sortCmd represents the sort command.
var sortCmd = newSortCmd()

func newSortCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sort [values...]",
		Short: "Sort values without mutating the input",
		Long:  "Sort numbers (or strings with --strings) and print the ordered sequence.\nValues come from the arguments, or from stdin when none are given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			tokens, err := readSortTokens(cmd, args)
			if err != nil {
				return err
			}

			job := m.Job{Kind: m.KindSort, Desc: sortDescFlag}
			if sortStringsFlag {
				job.Strings = tokens
			} else {
				values := make([]float64, 0, len(tokens))
				for _, token := range tokens {
					value, err := strconv.ParseFloat(token, 64)
					if err != nil {
						return fmt.Errorf("invalid number %q (use --%s to sort lexicographically)", token, stringsFlagName)
					}

					values = append(values, value)
				}

				job.Values = values
			}

			evaluator := domain.NewEvaluator(configuredLimits())

			results, err := evaluator.Evaluate(cmd.Context(), job)
			if err != nil {
				return err
			}

			result := results[0]
			if result.Status == m.TermError {
				return errors.New(result.Err)
			}

			if sortDiffFlag {
				return controller.NewSimpleUI(cmd).DisplayDiff(cmd.Context(), sortInputTokens(job), result.Sequence)
			}

			cmd.Println(strings.Join(result.Sequence, " "))

			return nil
		},
	}

	configureSortFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(sortCmd)
}

func configureSortFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&sortStringsFlag, stringsFlagName, false, "sort lexicographically instead of numerically")
	cmd.Flags().BoolVar(&sortDescFlag, descFlagName, false, "sort in descending order")
	cmd.Flags().BoolVar(&sortDiffFlag, diffFlagName, false, "show a diff between the input and the sorted order")
}

// readSortTokens returns the values to sort: the arguments when present,
// otherwise whitespace-separated tokens read from stdin.
func readSortTokens(cmd *cobra.Command, args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	scanner.Split(bufio.ScanWords)

	var tokens []string
	for scanner.Scan() {
		tokens = append(tokens, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read input values: %w", err)
	}

	return tokens, nil
}

// sortInputTokens renders the job input the way results render, so diffs
// line up element by element.
func sortInputTokens(job m.Job) []string {
	if len(job.Strings) > 0 {
		return job.Strings
	}

	tokens := make([]string, 0, len(job.Values))
	for _, value := range job.Values {
		tokens = append(tokens, strconv.FormatFloat(value, 'g', -1, 64))
	}

	return tokens
}

// Package domain contains the core evaluation workflow for reference
// computations.
package domain

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"reckon.dev/pkg/reckon/internal/domain/algo"
	m "reckon.dev/pkg/reckon/internal/model"
)

// Limits guards evaluation against requests that cannot finish in reasonable
// time or stack depth.
type Limits struct {
	// MaxN caps the highest term any sequence job may request.
	MaxN int
	// NaiveMaxN caps terms for the exponential naive Fibonacci shape.
	NaiveMaxN int
}

// DefaultLimits mirror the configuration defaults.
var DefaultLimits = Limits{MaxN: 100000, NaiveMaxN: 40}

// Evaluator computes all terms of a single job.
type Evaluator interface {
	Evaluate(ctx context.Context, job m.Job) ([]m.TermResult, error)
}

type evaluator struct {
	limits Limits
}

// NewEvaluator creates an Evaluator with the provided limits; zero limits
// fall back to the defaults.
func NewEvaluator(limits Limits) Evaluator {
	if limits.MaxN <= 0 {
		limits.MaxN = DefaultLimits.MaxN
	}

	if limits.NaiveMaxN <= 0 {
		limits.NaiveMaxN = DefaultLimits.NaiveMaxN
	}

	return &evaluator{limits: limits}
}

// sequenceFuncs maps kind and variant to the underlying routine.
var sequenceFuncs = map[m.Kind]map[m.Variant]func(int) (*big.Int, error){
	m.KindFibonacci: {
		m.VariantNaive:     algo.FibonacciNaive,
		m.VariantIterative: algo.FibonacciIterative,
		m.VariantMemoized:  algo.FibonacciMemoized,
	},
	m.KindFactorial: {
		m.VariantNaive:     algo.FactorialRecursive,
		m.VariantIterative: algo.FactorialIterative,
	},
}

func (e *evaluator) Evaluate(ctx context.Context, job m.Job) ([]m.TermResult, error) {
	if err := e.validate(job); err != nil {
		return nil, err
	}

	switch job.Kind {
	case m.KindFibonacci, m.KindFactorial:
		return e.evaluateSequence(ctx, job)
	case m.KindCalc:
		return []m.TermResult{evaluateCalc(job)}, nil
	case m.KindSort:
		return []m.TermResult{evaluateSort(job)}, nil
	}

	return nil, fmt.Errorf("unsupported kind: %s", job.Kind)
}

func (e *evaluator) validate(job m.Job) error {
	switch job.Kind {
	case m.KindFibonacci, m.KindFactorial:
		variant := normalizeVariant(job)
		if _, ok := sequenceFuncs[job.Kind][variant]; !ok {
			return fmt.Errorf("variant %s not supported for %s", variant, job.Kind)
		}

		if job.From < 0 {
			return fmt.Errorf("term %d: %w", job.From, algo.ErrNegativeInput)
		}

		if job.To < job.From {
			return fmt.Errorf("empty term range %d..%d", job.From, job.To)
		}

		if job.To > e.limits.MaxN {
			return fmt.Errorf("term %d exceeds the configured limit %d", job.To, e.limits.MaxN)
		}

		if variant == m.VariantNaive && job.Kind == m.KindFibonacci && job.To > e.limits.NaiveMaxN {
			return fmt.Errorf("naive fibonacci above n=%d is refused; use --algo iterative or raise run.naive_max_n", e.limits.NaiveMaxN)
		}
	case m.KindCalc:
		if len(job.Ops) == 0 {
			return fmt.Errorf("calc job has no operations")
		}
	case m.KindSort:
		if len(job.Values) > 0 && len(job.Strings) > 0 {
			return fmt.Errorf("sort job mixes numeric and string values")
		}
	default:
		return fmt.Errorf("unsupported kind: %s", job.Kind)
	}

	return nil
}

func (e *evaluator) evaluateSequence(ctx context.Context, job m.Job) ([]m.TermResult, error) {
	variant := normalizeVariant(job)
	compute := sequenceFuncs[job.Kind][variant]
	results := make([]m.TermResult, 0, job.Terms())

	for n := job.From; n <= job.To; n++ {
		if err := ctx.Err(); err != nil {
			slog.Debug("evaluation cancelled", "job", job.ID, "n", n)
			return results, err
		}

		start := time.Now()

		value, err := compute(n)
		result := m.TermResult{
			JobID:   job.ID,
			Kind:    job.Kind,
			Variant: variant,
			N:       n,
			Elapsed: time.Since(start),
		}

		if err != nil {
			result.Status = m.TermError
			result.Err = err.Error()
		} else {
			result.Value = value.String()
		}

		results = append(results, result)
	}

	return results, nil
}

func evaluateCalc(job m.Job) m.TermResult {
	start := time.Now()
	calc := algo.NewCalculator()

	result := m.TermResult{
		JobID: job.ID,
		Kind:  m.KindCalc,
		N:     len(job.Ops),
	}

	for _, op := range job.Ops {
		if err := calc.Apply(op.Name, op.Value); err != nil {
			result.Status = m.TermError
			result.Err = err.Error()
			result.Elapsed = time.Since(start)

			return result
		}
	}

	result.Value = formatFloat(calc.Result())
	result.Elapsed = time.Since(start)

	if err := calc.Err(); err != nil {
		result.Status = m.TermError
		result.Err = err.Error()
	}

	return result
}

func evaluateSort(job m.Job) m.TermResult {
	start := time.Now()

	result := m.TermResult{
		JobID: job.ID,
		Kind:  m.KindSort,
	}

	if len(job.Strings) > 0 {
		result.Sequence = sortSlice(job.Strings, job.Desc, strings.Compare)
	} else {
		sorted := sortSlice(job.Values, job.Desc, compareFloats)

		rendered := make([]string, len(sorted))
		for i, v := range sorted {
			rendered[i] = formatFloat(v)
		}

		result.Sequence = rendered
	}

	result.N = len(result.Sequence)
	result.Value = "[" + strings.Join(result.Sequence, " ") + "]"

	result.Elapsed = time.Since(start)

	return result
}

func sortSlice[T any](s []T, desc bool, compare func(a, b T) int) []T {
	if desc {
		return algo.SortFunc(s, func(a, b T) int { return compare(b, a) })
	}

	return algo.SortFunc(s, compare)
}

// sortInput renders the unsorted elements of a sort job the way the sorted
// sequence is rendered, so the two sides of a diff line up.
func sortInput(job m.Job) []string {
	if len(job.Strings) > 0 {
		return append([]string(nil), job.Strings...)
	}

	rendered := make([]string, len(job.Values))
	for i, v := range job.Values {
		rendered[i] = formatFloat(v)
	}

	return rendered
}

func compareFloats(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	}

	return 0
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func normalizeVariant(job m.Job) m.Variant {
	if job.Variant == "" {
		return m.VariantIterative
	}

	return job.Variant
}

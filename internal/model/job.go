// Package model defines the data structures for reference computations.
package model

import "time"

// Path represents a file system path.
type Path string

// Kind identifies one of the reference routines.
type Kind string

const (
	// KindFibonacci computes terms of the Fibonacci sequence.
	KindFibonacci Kind = "fibonacci"
	// KindFactorial computes factorials.
	KindFactorial Kind = "factorial"
	// KindCalc applies a chain of accumulator operations.
	KindCalc Kind = "calc"
	// KindSort sorts a sequence of values.
	KindSort Kind = "sort"
)

// Kinds lists every supported kind in display order.
func Kinds() []Kind {
	return []Kind{KindFibonacci, KindFactorial, KindCalc, KindSort}
}

// Variant selects the algorithm shape for sequence kinds.
type Variant string

const (
	// VariantNaive is the textbook recursive shape, exponential for Fibonacci.
	VariantNaive Variant = "naive"
	// VariantIterative is the linear loop shape.
	VariantIterative Variant = "iterative"
	// VariantMemoized keeps the recursion but caches computed terms.
	VariantMemoized Variant = "memoized"
)

// CalcOp is a single calculator chain operation as it appears in a jobs file.
type CalcOp struct {
	Name  string  `yaml:"op" validate:"required,oneof=add sub mul div reset"`
	Value float64 `yaml:"value"`
}

// Job describes one requested computation.
//
// Sequence kinds (fibonacci, factorial) evaluate terms From..To inclusive.
// Sort orders Values (or Strings); calc applies Ops in order to a fresh
// accumulator.
type Job struct {
	ID      string    `yaml:"id,omitempty"`
	Kind    Kind      `yaml:"kind" validate:"required,oneof=fibonacci factorial calc sort"`
	Variant Variant   `yaml:"variant,omitempty" validate:"omitempty,oneof=naive iterative memoized"`
	From    int       `yaml:"from,omitempty" validate:"gte=0"`
	To      int       `yaml:"to,omitempty" validate:"gte=0,gtefield=From"`
	Values  []float64 `yaml:"values,omitempty"`
	Strings []string  `yaml:"strings,omitempty"`
	Desc    bool      `yaml:"desc,omitempty"`
	Ops     []CalcOp  `yaml:"ops,omitempty" validate:"dive"`
}

// Terms reports how many results the job will emit.
func (j Job) Terms() int {
	switch j.Kind {
	case KindFibonacci, KindFactorial:
		return j.To - j.From + 1
	default:
		return 1
	}
}

// TermStatus represents the outcome of computing a single term.
type TermStatus int

const (
	// TermOK indicates the term was computed.
	TermOK TermStatus = iota
	// TermError indicates the computation failed.
	TermError
	// TermSkipped indicates the term was not attempted (cancellation).
	TermSkipped
)

// String returns the lowercase status label.
func (s TermStatus) String() string {
	switch s {
	case TermOK:
		return "ok"
	case TermError:
		return "error"
	case TermSkipped:
		return "skipped"
	}

	return "unknown"
}

// TermResult is one computed term of a job.
//
// Value carries the rendered result: a decimal integer for sequence kinds,
// the final accumulator for calc, the ordered sequence for sort. Exact values
// can exceed every machine integer, so the wire form is always a string.
type TermResult struct {
	JobID    string        `yaml:"job_id"`
	Kind     Kind          `yaml:"kind"`
	Variant  Variant       `yaml:"variant,omitempty"`
	N        int           `yaml:"n"`
	Value    string        `yaml:"value"`
	Sequence []string      `yaml:"sequence,omitempty"`
	Status   TermStatus    `yaml:"status"`
	Err      string        `yaml:"error,omitempty"`
	Elapsed  time.Duration `yaml:"elapsed"`
}

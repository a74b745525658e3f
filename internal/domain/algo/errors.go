// Package algo provides the reference implementations of the classic
// textbook routines reckon computes: Fibonacci, factorial, the chainable
// accumulator calculator, and quicksort.
//
// Every function is pure call/return with explicit errors; nothing here
// touches the filesystem, logs, or blocks.
package algo

import "errors"

// Exported sentinel errors.
var (
	// ErrNegativeInput is returned when a sequence term below zero is requested.
	ErrNegativeInput = errors.New("negative input not allowed")
	// ErrDivideByZero is recorded when a calculator chain divides by zero.
	ErrDivideByZero = errors.New("division by zero")
	// ErrUnknownOp is returned for a calculator operation name that does not exist.
	ErrUnknownOp = errors.New("unknown calculator operation")
)

package algo

import "fmt"

// Calculator is an in-memory accumulator with chainable mutators.
//
// The accumulator starts at zero; every mutator returns the same receiver so
// chains read left to right:
//
//	algo.NewCalculator().Add(3).Multiply(4).Result() // 12
//
// A Calculator is not safe for concurrent use.
type Calculator struct {
	result float64
	steps  []Step
	err    error
}

// Step records one applied operation and the accumulator value after it.
type Step struct {
	Op     string
	Value  float64
	Result float64
}

// NewCalculator returns a calculator with the accumulator at zero.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Add adds value to the accumulator.
func (c *Calculator) Add(value float64) *Calculator {
	c.result += value
	c.record("add", value)

	return c
}

// Subtract subtracts value from the accumulator.
func (c *Calculator) Subtract(value float64) *Calculator {
	c.result -= value
	c.record("sub", value)

	return c
}

// Multiply multiplies the accumulator by value.
func (c *Calculator) Multiply(value float64) *Calculator {
	c.result *= value
	c.record("mul", value)

	return c
}

// Divide divides the accumulator by value. Dividing by zero leaves the
// accumulator untouched and records ErrDivideByZero; the chain stays usable.
func (c *Calculator) Divide(value float64) *Calculator {
	if value == 0 {
		if c.err == nil {
			c.err = ErrDivideByZero
		}

		c.record("div", value)

		return c
	}

	c.result /= value
	c.record("div", value)

	return c
}

// Reset returns the accumulator to zero and clears the error state. The
// recorded history is kept.
func (c *Calculator) Reset() *Calculator {
	c.result = 0
	c.err = nil
	c.record("reset", 0)

	return c
}

// Result reads the accumulator.
func (c *Calculator) Result() float64 {
	return c.result
}

// Err reports the first operation error since construction or the last Reset.
func (c *Calculator) Err() error {
	return c.err
}

// History returns the applied operations in order. The returned slice is a
// copy; mutating it does not affect the calculator.
func (c *Calculator) History() []Step {
	steps := make([]Step, len(c.steps))
	copy(steps, c.steps)

	return steps
}

// Apply runs a single operation by name, for callers driving the calculator
// from parsed input rather than method chains.
func (c *Calculator) Apply(op string, value float64) error {
	switch op {
	case "add":
		c.Add(value)
	case "sub":
		c.Subtract(value)
	case "mul":
		c.Multiply(value)
	case "div":
		c.Divide(value)
	case "reset":
		c.Reset()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownOp, op)
	}

	return nil
}

func (c *Calculator) record(op string, value float64) {
	c.steps = append(c.steps, Step{Op: op, Value: value, Result: c.result})
}

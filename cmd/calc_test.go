package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"reckon.dev/pkg/reckon/internal/domain/algo"
)

func TestCalcCmd_AddMultiplyChain(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCalcCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"calc", "add", "3", "mul", "4"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "add")
	assert.Contains(t, output.String(), "mul")
	assert.Contains(t, output.String(), "= 12")
}

func TestCalcCmd_Division(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCalcCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"calc", "add", "10", "div", "4"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "= 2.5")
}

func TestCalcCmd_DivisionByZero(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCalcCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"calc", "add", "3", "div", "0"})
	err := cmd.Execute()

	// The failing step still shows up before the error surfaces.
	require.ErrorIs(t, err, algo.ErrDivideByZero)
	assert.Contains(t, output.String(), "div")
}

func TestCalcCmd_ResetClearsAccumulator(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCalcCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"calc", "add", "5", "reset", "add", "2"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "= 2")
}

func TestCalcCmd_MissingValue(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCalcCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"calc", "add"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "needs a value")
}

func TestCalcCmd_InvalidValue(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCalcCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"calc", "add", "x"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), `invalid value "x"`)
}

func TestCalcCmd_UnknownOperation(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCalcCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"calc", "pow", "2"})
	err := cmd.Execute()

	require.ErrorIs(t, err, algo.ErrUnknownOp)
}

func TestCalcCmd_NoArgsWithoutTerminalShowsHelp(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newCalcCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	// Test processes have no TTY on stdin, so the interactive session
	// never starts here.
	cmd.SetArgs([]string{"calc"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "Usage:")
}

func TestParseCalcOps(t *testing.T) {
	ops, err := parseCalcOps([]string{"add", "3", "MUL", "4", "reset", "sub", "1.5"})

	require.NoError(t, err)
	require.Len(t, ops, 4)
	assert.Equal(t, "add", ops[0].Name)
	assert.Equal(t, 3.0, ops[0].Value)
	assert.Equal(t, "mul", ops[1].Name)
	assert.Equal(t, 4.0, ops[1].Value)
	assert.Equal(t, "reset", ops[2].Name)
	assert.Equal(t, "sub", ops[3].Name)
	assert.Equal(t, 1.5, ops[3].Value)
}

func TestNewCalcCmd(t *testing.T) {
	cmd := newCalcCmd()

	assert.Equal(t, "calc [op value]...", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, calcLongDescription, cmd.Long)
}

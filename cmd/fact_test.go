package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactCmd_SingleTerm(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newFactCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"fact", "5"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "factorial(5) = 120")
}

func TestFactCmd_ZeroIsOne(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newFactCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"fact", "0"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "factorial(0) = 1")
}

func TestFactCmd_Range(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newFactCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"fact", "0..4"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "factorial(0) = 1")
	assert.Contains(t, output.String(), "factorial(3) = 6")
	assert.Contains(t, output.String(), "factorial(4) = 24")
}

func TestFactCmd_NaiveAlgoLargeTerm(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newFactCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"fact", "20", "--algo", "naive"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "factorial(20) = 2432902008176640000")
}

func TestFactCmd_MemoizedIsNotSupported(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newFactCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"fact", "5", "--algo", "memoized"})
	err := cmd.Execute()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported algorithm")
}

func TestFactCmd_Table(t *testing.T) {
	cmd := newRootCmd()
	cmd.AddCommand(newFactCmd())
	output := &bytes.Buffer{}
	cmd.SetOut(output)
	cmd.SetErr(&bytes.Buffer{})

	cmd.SetArgs([]string{"fact", "3..5", "--table"})
	err := cmd.Execute()

	require.NoError(t, err)
	assert.Contains(t, output.String(), "VALUE")
	assert.Contains(t, output.String(), "120")
}

func TestNewFactCmd(t *testing.T) {
	cmd := newFactCmd()

	assert.Equal(t, "fact [n | from..to]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, factLongDescription, cmd.Long)

	algoFlag := cmd.Flags().Lookup(algoFlagName)
	assert.NotNil(t, algoFlag)
	tableFlag := cmd.Flags().Lookup(tableFlagName)
	assert.NotNil(t, tableFlag)
}

package brainfoam

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/cloudcmds/brainfoam/program"
	"github.com/cloudcmds/brainfoam/vm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunOutput(t *testing.T) {
	var out bytes.Buffer
	m, err := Run(context.Background(), "++.", WithOutput(&out))
	require.NoError(t, err)
	assert.Equal(t, vm.Halted, m.State())
	assert.Equal(t, []byte{2}, out.Bytes())
}

func TestRunWithInput(t *testing.T) {
	var out bytes.Buffer
	m, err := Run(context.Background(), ",.",
		WithInput(strings.NewReader("A")),
		WithOutput(&out))
	require.NoError(t, err)
	assert.Equal(t, vm.Halted, m.State())
	assert.Equal(t, "A", out.String())
}

func TestRunWithInputBytes(t *testing.T) {
	var out bytes.Buffer
	_, err := Run(context.Background(), ",+.",
		WithInputBytes([]byte{64}),
		WithOutput(&out))
	require.NoError(t, err)
	assert.Equal(t, []byte{65}, out.Bytes())
}

func TestRunParseError(t *testing.T) {
	_, err := Run(context.Background(), "[")
	var bracketErr *program.UnmatchedBracketError
	require.ErrorAs(t, err, &bracketErr)
}

func TestRunConfigError(t *testing.T) {
	_, err := Run(context.Background(), "+", WithTapeLength(0))
	var configErr *vm.ConfigError
	require.ErrorAs(t, err, &configErr)
}

func TestNewForStepping(t *testing.T) {
	m, err := New("+++", WithTapeLength(8))
	require.NoError(t, err)
	assert.Equal(t, vm.Ready, m.State())

	state, err := m.Step()
	require.NoError(t, err)
	assert.Equal(t, vm.Running, state)
	assert.Equal(t, uint8(1), m.CurrentCell().Uint8())
}

func TestRunObserver(t *testing.T) {
	steps := 0
	_, err := Run(context.Background(), "+-",
		WithObserver(vm.ObserverFunc(func(vm.StepEvent) bool {
			steps++
			return true
		})))
	require.NoError(t, err)
	assert.Equal(t, 2, steps)
}

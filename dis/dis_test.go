package dis

import (
	"bytes"
	"testing"

	"github.com/cloudcmds/brainfoam/op"
	"github.com/cloudcmds/brainfoam/program"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDisassemble(t *testing.T) {
	p, err := program.Parse("+[-]")
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Disassemble(p, &buf))
	out := buf.String()

	assert.Contains(t, out, "; 4 instructions")
	assert.Contains(t, out, "INCREMENT_VALUE")
	assert.Contains(t, out, "LOOP_START")
	assert.Contains(t, out, "-> 3")
	assert.Contains(t, out, "-> 1")
}

func TestDisassembleEmptyProgram(t *testing.T) {
	p, err := program.Parse("")
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, Disassemble(p, &buf))
	assert.Contains(t, buf.String(), "; 0 instructions")
}

func TestCounts(t *testing.T) {
	p, err := program.Parse("++>[-]")
	require.NoError(t, err)
	counts := Counts(p)
	assert.Equal(t, 2, counts[op.IncrementValue])
	assert.Equal(t, 1, counts[op.IncrementPointer])
	assert.Equal(t, 1, counts[op.DecrementValue])
	assert.Equal(t, 1, counts[op.LoopStart])
	assert.Equal(t, 1, counts[op.LoopEnd])
	assert.Equal(t, 0, counts[op.Input])
}

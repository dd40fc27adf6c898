package op

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetInfo(t *testing.T) {
	info := GetInfo(LoopStart)
	assert.Equal(t, LoopStart, info.Instruction)
	assert.Equal(t, "LOOP_START", info.Name)
	assert.Equal(t, '[', info.Symbol)
}

func TestDecodeAllInstructions(t *testing.T) {
	tests := []struct {
		symbol rune
		inst   Instruction
		name   string
	}{
		{'>', IncrementPointer, "INCREMENT_POINTER"},
		{'<', DecrementPointer, "DECREMENT_POINTER"},
		{'+', IncrementValue, "INCREMENT_VALUE"},
		{'-', DecrementValue, "DECREMENT_VALUE"},
		{'.', Output, "OUTPUT"},
		{',', Input, "INPUT"},
		{'[', LoopStart, "LOOP_START"},
		{']', LoopEnd, "LOOP_END"},
	}
	for _, tt := range tests {
		inst, err := Decode(tt.symbol)
		require.NoError(t, err)
		assert.Equal(t, tt.inst, inst)
		assert.Equal(t, tt.name, inst.Name())
		assert.True(t, IsSymbol(tt.symbol))
	}
}

func TestDecodeSymbolRoundTrip(t *testing.T) {
	for _, inst := range []Instruction{
		IncrementPointer, DecrementPointer,
		IncrementValue, DecrementValue,
		Output, Input,
		LoopStart, LoopEnd,
	} {
		decoded, err := Decode(inst.Symbol())
		require.NoError(t, err)
		assert.Equal(t, inst, decoded)
	}
}

func TestDecodeUnknownSymbol(t *testing.T) {
	for _, symbol := range []rune{'a', ' ', '\n', '#', '0'} {
		_, err := Decode(symbol)
		require.Error(t, err)
		var unknownErr *UnknownSymbolError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, symbol, unknownErr.Symbol)
		assert.False(t, IsSymbol(symbol))
	}
}

func TestInvalidInstruction(t *testing.T) {
	assert.Equal(t, "INVALID", Invalid.Name())
	assert.Equal(t, "INVALID", Instruction(200).Name())
}

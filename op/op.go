// Package op defines the eight instructions of the tape language and the
// decoding between instructions and their source symbols.
package op

import "fmt"

// Instruction is one operation of the tape language. The set is closed:
// exactly eight instructions exist, one per source symbol.
type Instruction uint8

const (
	Invalid Instruction = 0

	IncrementPointer Instruction = 1 // >
	DecrementPointer Instruction = 2 // <
	IncrementValue   Instruction = 3 // +
	DecrementValue   Instruction = 4 // -
	Output           Instruction = 5 // .
	Input            Instruction = 6 // ,
	LoopStart        Instruction = 7 // [
	LoopEnd          Instruction = 8 // ]
)

// UnknownSymbolError indicates a character that does not decode to any
// instruction.
type UnknownSymbolError struct {
	Symbol rune
}

func (e *UnknownSymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q", e.Symbol)
}

// Info describes one instruction.
type Info struct {
	Instruction Instruction
	Name        string
	Symbol      rune
}

var infos = [9]Info{
	{Invalid, "INVALID", 0},
	{IncrementPointer, "INCREMENT_POINTER", '>'},
	{DecrementPointer, "DECREMENT_POINTER", '<'},
	{IncrementValue, "INCREMENT_VALUE", '+'},
	{DecrementValue, "DECREMENT_VALUE", '-'},
	{Output, "OUTPUT", '.'},
	{Input, "INPUT", ','},
	{LoopStart, "LOOP_START", '['},
	{LoopEnd, "LOOP_END", ']'},
}

var bySymbol = map[rune]Instruction{}

func init() {
	for _, info := range infos[1:] {
		bySymbol[info.Symbol] = info.Instruction
	}
}

// GetInfo returns information about the given instruction.
func GetInfo(inst Instruction) Info {
	if int(inst) >= len(infos) {
		return infos[Invalid]
	}
	return infos[inst]
}

// Decode maps a source character to its Instruction. Any character that
// is not one of the eight symbols fails with an UnknownSymbolError.
func Decode(symbol rune) (Instruction, error) {
	inst, ok := bySymbol[symbol]
	if !ok {
		return Invalid, &UnknownSymbolError{Symbol: symbol}
	}
	return inst, nil
}

// IsSymbol reports whether the character is one of the eight instruction
// symbols.
func IsSymbol(symbol rune) bool {
	_, ok := bySymbol[symbol]
	return ok
}

// Symbol returns the source character for the instruction. It is the
// exact inverse of Decode for all eight instructions.
func (i Instruction) Symbol() rune {
	return GetInfo(i).Symbol
}

// Name returns the instruction's mnemonic, e.g. "INCREMENT_POINTER".
func (i Instruction) Name() string {
	return GetInfo(i).Name
}

func (i Instruction) String() string {
	return i.Name()
}

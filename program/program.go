// Package program turns source text into an immutable instruction
// sequence with precomputed loop jump targets.
package program

import (
	"fmt"
	"strings"

	"github.com/cloudcmds/brainfoam/op"
)

// UnmatchedBracketError indicates unbalanced loop delimiters in a
// program. Position is the instruction index of the offending bracket:
// a LoopEnd with no open LoopStart, or a LoopStart left open at the end
// of the program.
type UnmatchedBracketError struct {
	Position    int
	Instruction op.Instruction
}

func (e *UnmatchedBracketError) Error() string {
	return fmt.Sprintf("unmatched %q at instruction %d", e.Instruction.Symbol(), e.Position)
}

// Program is an immutable ordered sequence of instructions together with
// a bidirectional jump table mapping every LoopStart to its matching
// LoopEnd and vice versa. A Program never changes after construction and
// is safe for concurrent use.
type Program struct {
	instructions []op.Instruction
	jumps        map[int]int
	source       string
}

// Parse builds a Program from source text. Every character that is not
// one of the eight instruction symbols is dropped before decoding, so
// whitespace and comments carry no instruction. Unbalanced brackets fail
// with an UnmatchedBracketError; no partial Program is returned.
func Parse(source string) (*Program, error) {
	var instructions []op.Instruction
	for _, ch := range source {
		if !op.IsSymbol(ch) {
			continue
		}
		inst, err := op.Decode(ch)
		if err != nil {
			return nil, err
		}
		instructions = append(instructions, inst)
	}
	jumps, err := resolveJumps(instructions)
	if err != nil {
		return nil, err
	}
	return &Program{
		instructions: instructions,
		jumps:        jumps,
		source:       source,
	}, nil
}

// New builds a Program from an already-decoded instruction sequence,
// applying the same bracket validation as Parse. The slice is copied.
func New(instructions []op.Instruction) (*Program, error) {
	jumps, err := resolveJumps(instructions)
	if err != nil {
		return nil, err
	}
	copied := make([]op.Instruction, len(instructions))
	copy(copied, instructions)
	var sb strings.Builder
	for _, inst := range copied {
		sb.WriteRune(inst.Symbol())
	}
	return &Program{
		instructions: copied,
		jumps:        jumps,
		source:       sb.String(),
	}, nil
}

// resolveJumps walks the instruction sequence with a stack of open
// bracket positions and records each matched pair in both directions.
func resolveJumps(instructions []op.Instruction) (map[int]int, error) {
	jumps := map[int]int{}
	var stack []int
	for i, inst := range instructions {
		switch inst {
		case op.LoopStart:
			stack = append(stack, i)
		case op.LoopEnd:
			if len(stack) == 0 {
				return nil, &UnmatchedBracketError{Position: i, Instruction: op.LoopEnd}
			}
			open := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			jumps[open] = i
			jumps[i] = open
		}
	}
	if len(stack) > 0 {
		return nil, &UnmatchedBracketError{
			Position:    stack[len(stack)-1],
			Instruction: op.LoopStart,
		}
	}
	return jumps, nil
}

// Len returns the number of instructions in the program.
func (p *Program) Len() int {
	return len(p.instructions)
}

// IsEmpty returns true if the program contains no instructions.
func (p *Program) IsEmpty() bool {
	return len(p.instructions) == 0
}

// Get returns the instruction at the given position. The boolean is
// false if the position is past either end of the program.
func (p *Program) Get(i int) (op.Instruction, bool) {
	if i < 0 || i >= len(p.instructions) {
		return op.Invalid, false
	}
	return p.instructions[i], true
}

// JumpTarget returns the position of the bracket matching the LoopStart
// or LoopEnd at the given position. The boolean is false for every other
// position.
func (p *Program) JumpTarget(i int) (int, bool) {
	target, ok := p.jumps[i]
	return target, ok
}

// Instructions returns a copy of the instruction sequence.
func (p *Program) Instructions() []op.Instruction {
	out := make([]op.Instruction, len(p.instructions))
	copy(out, p.instructions)
	return out
}

// Source returns the original source text the program was parsed from.
func (p *Program) Source() string {
	return p.source
}

// String returns a one-instruction-per-line listing of the program.
func (p *Program) String() string {
	var sb strings.Builder
	for i, inst := range p.instructions {
		fmt.Fprintf(&sb, "%d: %c\n", i, inst.Symbol())
	}
	return sb.String()
}

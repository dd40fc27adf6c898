package vm

import (
	"github.com/cloudcmds/brainfoam/bits"
	"github.com/cloudcmds/brainfoam/op"
)

// StepEvent describes one executed instruction. The event is delivered
// after the instruction's effects are applied.
type StepEvent struct {
	// IP is the position of the executed instruction.
	IP int

	// Instruction is the operation that was executed.
	Instruction op.Instruction

	// DataPointer is the tape index of the current cell after the step.
	DataPointer int

	// Cell is the value of the current cell after the step.
	Cell bits.Byte

	// Steps is the total number of instructions executed so far.
	Steps int64
}

// Observer receives a callback for every executed instruction. It enables
// tracers, debuggers, and visual front ends without touching the machine's
// core loop. Callbacks run synchronously; returning false stops Run
// without faulting the machine, so execution can be resumed.
type Observer interface {
	OnStep(event StepEvent) bool
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(event StepEvent) bool

func (f ObserverFunc) OnStep(event StepEvent) bool {
	return f(event)
}

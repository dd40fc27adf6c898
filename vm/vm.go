// Package vm provides a VirtualMachine that executes a parsed program
// against a fixed-length circular tape of Byte cells.
package vm

import (
	"context"

	"github.com/cloudcmds/brainfoam/bits"
	"github.com/cloudcmds/brainfoam/op"
	"github.com/cloudcmds/brainfoam/program"
)

// DefaultContextCheckInterval is the number of instructions between
// checks of ctx.Done() during Run. Set to 0 to disable.
const DefaultContextCheckInterval = 1000

// State describes the execution state of a VirtualMachine.
type State uint8

const (
	// Ready means the machine is constructed and has not executed yet.
	Ready State = iota

	// Running means the machine is mid-execution.
	Running

	// Halted means the instruction pointer passed the end of the
	// program. Terminal, success.
	Halted

	// Faulted means an unrecoverable I/O error occurred. Terminal.
	Faulted
)

func (s State) String() string {
	switch s {
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Halted:
		return "halted"
	case Faulted:
		return "faulted"
	default:
		return "unknown"
	}
}

// VirtualMachine executes a Program over a circular tape. The tape, data
// pointer, and instruction pointer are owned exclusively by one machine;
// execution is single-threaded and synchronous, blocking only on the
// supplied input and output collaborators.
type VirtualMachine struct {
	tape     []bits.Byte
	dp       int
	ip       int
	prog     *program.Program
	input    Reader
	output   Writer
	observer Observer
	state    State
	fault    *Fault
	steps    int64

	// contextCheckInterval is how many instructions Run executes between
	// ctx.Done() checks. The machine imposes no timeout of its own.
	contextCheckInterval int

	// stopRequested is set when the observer asks Run to pause.
	stopRequested bool
}

// State returns the machine's current execution state.
func (m *VirtualMachine) State() State {
	return m.state
}

// Fault returns the error that moved the machine to Faulted, or nil.
func (m *VirtualMachine) Fault() error {
	if m.fault == nil {
		return nil
	}
	return m.fault
}

// Program returns the program the machine executes.
func (m *VirtualMachine) Program() *program.Program {
	return m.prog
}

// IP returns the instruction pointer.
func (m *VirtualMachine) IP() int {
	return m.ip
}

// DataPointer returns the tape index of the current cell.
func (m *VirtualMachine) DataPointer() int {
	return m.dp
}

// TapeLength returns the fixed length of the tape.
func (m *VirtualMachine) TapeLength() int {
	return len(m.tape)
}

// Cell returns the value of the tape cell at the given index. The
// boolean is false if the index is outside the tape.
func (m *VirtualMachine) Cell(i int) (bits.Byte, bool) {
	if i < 0 || i >= len(m.tape) {
		return bits.Byte{}, false
	}
	return m.tape[i], true
}

// CurrentCell returns the value of the cell under the data pointer.
func (m *VirtualMachine) CurrentCell() bits.Byte {
	return m.tape[m.dp]
}

// Tape returns a copy of the whole tape.
func (m *VirtualMachine) Tape() []bits.Byte {
	out := make([]bits.Byte, len(m.tape))
	copy(out, m.tape)
	return out
}

// Steps returns the number of instructions executed so far.
func (m *VirtualMachine) Steps() int64 {
	return m.steps
}

// Step executes exactly one instruction and returns the new state.
// Stepping a Halted machine is a no-op; stepping a Faulted machine
// returns the fault. External front ends drive single-stepping by
// calling Step repeatedly and stopping whenever they choose.
func (m *VirtualMachine) Step() (State, error) {
	switch m.state {
	case Halted:
		return Halted, nil
	case Faulted:
		return Faulted, m.fault
	}

	inst, ok := m.prog.Get(m.ip)
	if !ok {
		m.state = Halted
		return Halted, nil
	}
	m.state = Running
	executedAt := m.ip

	switch inst {
	case op.IncrementPointer:
		m.dp = (m.dp + 1) % len(m.tape)
		m.ip++
	case op.DecrementPointer:
		m.dp = (m.dp - 1 + len(m.tape)) % len(m.tape)
		m.ip++
	case op.IncrementValue:
		m.tape[m.dp].Increment()
		m.ip++
	case op.DecrementValue:
		m.tape[m.dp].Decrement()
		m.ip++
	case op.Output:
		if err := m.output.WriteByte(m.tape[m.dp].Uint8()); err != nil {
			return m.enterFault(inst, err)
		}
		m.ip++
	case op.Input:
		b, ok, err := m.input.ReadByte()
		if err != nil {
			return m.enterFault(inst, err)
		}
		// End of input leaves the cell unchanged. It is neither an
		// error nor a zeroing of the cell.
		if ok {
			m.tape[m.dp] = bits.ByteFromUint8(b)
		}
		m.ip++
	case op.LoopStart:
		if m.tape[m.dp].IsZero() {
			target, _ := m.prog.JumpTarget(m.ip)
			m.ip = target + 1
		} else {
			m.ip++
		}
	case op.LoopEnd:
		if !m.tape[m.dp].IsZero() {
			target, _ := m.prog.JumpTarget(m.ip)
			m.ip = target + 1
		} else {
			m.ip++
		}
	}

	m.steps++
	if m.ip >= m.prog.Len() {
		m.state = Halted
	}
	if m.observer != nil {
		event := StepEvent{
			IP:          executedAt,
			Instruction: inst,
			DataPointer: m.dp,
			Cell:        m.tape[m.dp],
			Steps:       m.steps,
		}
		if !m.observer.OnStep(event) {
			m.stopRequested = true
		}
	}
	return m.state, nil
}

func (m *VirtualMachine) enterFault(inst op.Instruction, err error) (State, error) {
	m.fault = &Fault{IP: m.ip, Instruction: inst, Err: err}
	m.state = Faulted
	return Faulted, m.fault
}

// Run steps the machine until it reaches Halted or Faulted. The caller's
// context is checked every contextCheckInterval instructions; a cancelled
// context stops execution without faulting the machine, so Run may be
// called again to resume. An observer returning false pauses the machine
// the same way.
func (m *VirtualMachine) Run(ctx context.Context) error {
	if m.state == Faulted {
		return m.fault
	}
	for m.state == Ready || m.state == Running {
		if m.contextCheckInterval > 0 && m.steps%int64(m.contextCheckInterval) == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		if _, err := m.Step(); err != nil {
			return err
		}
		if m.stopRequested {
			m.stopRequested = false
			return nil
		}
	}
	return nil
}

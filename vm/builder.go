package vm

import (
	"fmt"

	"github.com/cloudcmds/brainfoam/bits"
	"github.com/cloudcmds/brainfoam/program"
	"github.com/hashicorp/go-multierror"
)

// DefaultTapeLength is the tape length used when none is configured.
const DefaultTapeLength = 30000

// Builder assembles a validated VirtualMachine configuration. A machine
// never exists in a partially configured state: Build fails fast,
// reporting every configuration problem at once.
type Builder struct {
	prog       *program.Program
	tapeLength int
	input      Reader
	output     Writer
	observer   Observer

	contextCheckInterval int
}

// NewBuilder returns a Builder with the default tape length, an empty
// input source, and a discarding output sink.
func NewBuilder() *Builder {
	return &Builder{
		tapeLength:           DefaultTapeLength,
		contextCheckInterval: DefaultContextCheckInterval,
	}
}

// WithProgram sets the program to execute. Required.
func (b *Builder) WithProgram(p *program.Program) *Builder {
	b.prog = p
	return b
}

// WithTapeLength sets the tape length. Must be positive.
func (b *Builder) WithTapeLength(length int) *Builder {
	b.tapeLength = length
	return b
}

// WithInput binds the input source.
func (b *Builder) WithInput(r Reader) *Builder {
	b.input = r
	return b
}

// WithOutput binds the output sink.
func (b *Builder) WithOutput(w Writer) *Builder {
	b.output = w
	return b
}

// WithObserver attaches a per-step observer.
func (b *Builder) WithObserver(o Observer) *Builder {
	b.observer = o
	return b
}

// WithContextCheckInterval sets how many instructions Run executes
// between ctx.Done() checks. Zero disables the check.
func (b *Builder) WithContextCheckInterval(interval int) *Builder {
	b.contextCheckInterval = interval
	return b
}

// Build validates the configuration and constructs the machine. All
// configuration problems are collected and returned together.
func (b *Builder) Build() (*VirtualMachine, error) {
	var errs *multierror.Error
	if b.prog == nil {
		errs = multierror.Append(errs, &ConfigError{Reason: "no program supplied"})
	}
	if b.tapeLength <= 0 {
		errs = multierror.Append(errs, &ConfigError{
			Reason: fmt.Sprintf("tape length must be positive (got %d)", b.tapeLength),
		})
	}
	if b.contextCheckInterval < 0 {
		errs = multierror.Append(errs, &ConfigError{
			Reason: fmt.Sprintf("context check interval must not be negative (got %d)", b.contextCheckInterval),
		})
	}
	if err := errs.ErrorOrNil(); err != nil {
		return nil, err
	}
	input := b.input
	if input == nil {
		input = EmptyInput()
	}
	output := b.output
	if output == nil {
		output = Discard()
	}
	return &VirtualMachine{
		tape:                 make([]bits.Byte, b.tapeLength),
		prog:                 b.prog,
		input:                input,
		output:               output,
		observer:             b.observer,
		state:                Ready,
		contextCheckInterval: b.contextCheckInterval,
	}, nil
}

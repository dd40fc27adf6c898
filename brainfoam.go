// Package brainfoam is a bit-accurate virtual machine for an 8-symbol
// tape language. It provides the numeric cell types (Bit, Nybble, Byte),
// instruction decoding, program parsing with loop resolution, and a
// virtual machine with pluggable byte-stream input and output.
//
// The top-level API covers the common case of parsing and running a
// program in one call:
//
//	m, err := brainfoam.Run(ctx, "++.", brainfoam.WithOutput(os.Stdout))
//
// For single-stepping or custom wiring, use program.Parse and vm.Builder
// directly.
package brainfoam

import (
	"context"
	"io"

	"github.com/cloudcmds/brainfoam/program"
	"github.com/cloudcmds/brainfoam/vm"
)

// Option configures an execution started by Run.
type Option func(*options)

type options struct {
	tapeLength int
	input      vm.Reader
	output     vm.Writer
	observer   vm.Observer
}

// WithTapeLength sets the machine's tape length. The default is
// vm.DefaultTapeLength (30000).
func WithTapeLength(length int) Option {
	return func(o *options) {
		o.tapeLength = length
	}
}

// WithInput binds the machine's input source to an io.Reader.
func WithInput(r io.Reader) Option {
	return func(o *options) {
		o.input = vm.NewReader(r)
	}
}

// WithInputBytes binds the machine's input source to a fixed byte
// sequence.
func WithInputBytes(data []byte) Option {
	return func(o *options) {
		o.input = vm.BufferReader(data)
	}
}

// WithOutput binds the machine's output sink to an io.Writer.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.output = vm.NewWriter(w)
	}
}

// WithObserver attaches a per-step observer to the machine.
func WithObserver(o vm.Observer) Option {
	return func(opts *options) {
		opts.observer = o
	}
}

// Parse builds a Program from source text. Characters other than the
// eight instruction symbols are ignored.
func Parse(source string) (*program.Program, error) {
	return program.Parse(source)
}

// New parses the source and builds a machine without running it, for
// callers that want to single-step.
func New(source string, opts ...Option) (*vm.VirtualMachine, error) {
	p, err := program.Parse(source)
	if err != nil {
		return nil, err
	}
	return build(p, opts...)
}

// Run parses the source and executes it to completion. The returned
// machine exposes the final tape and execution state; on a parse error,
// configuration error, or runtime fault the error is returned instead.
func Run(ctx context.Context, source string, opts ...Option) (*vm.VirtualMachine, error) {
	m, err := New(source, opts...)
	if err != nil {
		return nil, err
	}
	if err := m.Run(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func build(p *program.Program, opts ...Option) (*vm.VirtualMachine, error) {
	o := &options{tapeLength: vm.DefaultTapeLength}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}
	b := vm.NewBuilder().
		WithProgram(p).
		WithTapeLength(o.tapeLength)
	if o.input != nil {
		b.WithInput(o.input)
	}
	if o.output != nil {
		b.WithOutput(o.output)
	}
	if o.observer != nil {
		b.WithObserver(o.observer)
	}
	return b.Build()
}

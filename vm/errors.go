package vm

import (
	"fmt"

	"github.com/cloudcmds/brainfoam/op"
)

// ConfigError indicates an invalid Builder configuration. Build collects
// every configuration problem before failing, so a returned error may
// wrap several ConfigErrors.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "invalid configuration: " + e.Reason
}

// Fault is an unrecoverable runtime I/O failure. The machine transitions
// to Faulted and stays there; the underlying error is not retried.
type Fault struct {
	IP          int
	Instruction op.Instruction
	Err         error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at instruction %d (%s): %v", f.IP, f.Instruction, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}

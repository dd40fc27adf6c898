package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cloudcmds/brainfoam/program"
	"github.com/cloudcmds/brainfoam/vm"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// getSource resolves the program source from, in order of precedence,
// the --code flag, a file argument, or stdin when --stdin is set.
func getSource(cmd *cobra.Command, args []string) (string, error) {
	if code := viper.GetString("code"); code != "" {
		return code, nil
	}
	if len(args) > 0 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	if viper.GetBool("stdin") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
	return "", errors.New("no program supplied: pass a file, --code, or --stdin")
}

func tapeLength() int {
	if length := viper.GetInt("tape-length"); length > 0 {
		return length
	}
	return vm.DefaultTapeLength
}

// buildMachine assembles a machine for the given source. Program input
// comes from the --input flag when set, or from stdin when stdin is not
// a terminal and was not already consumed for the program source.
func buildMachine(cmd *cobra.Command, source string, observer vm.Observer) (*vm.VirtualMachine, error) {
	p, err := program.Parse(source)
	if err != nil {
		return nil, err
	}
	log.Debug().
		Int("instructions", p.Len()).
		Int("tape_length", tapeLength()).
		Msg("program parsed")

	b := vm.NewBuilder().
		WithProgram(p).
		WithTapeLength(tapeLength()).
		WithOutput(vm.NewWriter(cmd.OutOrStdout()))
	if input := viper.GetString("input"); input != "" {
		b.WithInput(vm.BufferReader([]byte(input)))
	} else if !isTerminal(os.Stdin) && !viper.GetBool("stdin") {
		b.WithInput(vm.NewReader(cmd.InOrStdin()))
	}
	if observer != nil {
		b.WithObserver(observer)
	}
	return b.Build()
}

func traceObserver() vm.Observer {
	return vm.ObserverFunc(func(e vm.StepEvent) bool {
		log.Debug().
			Int("ip", e.IP).
			Str("instruction", fmt.Sprintf("%c", e.Instruction.Symbol())).
			Int("dp", e.DataPointer).
			Uint8("cell", e.Cell.Uint8()).
			Msg("step")
		return true
	})
}

func runHandler(cmd *cobra.Command, args []string) error {
	source, err := getSource(cmd, args)
	if err != nil {
		return err
	}
	var observer vm.Observer
	if viper.GetBool("trace") {
		observer = traceObserver()
	}
	m, err := buildMachine(cmd, source, observer)
	if err != nil {
		return err
	}
	if err := m.Run(cmd.Context()); err != nil {
		return err
	}
	log.Debug().
		Int64("steps", m.Steps()).
		Stringer("state", m.State()).
		Msg("execution finished")
	return nil
}

package main

import (
	"fmt"
	"io"
	"strings"

	"atomicgo.dev/keyboard"
	"atomicgo.dev/keyboard/keys"
	"github.com/cloudcmds/brainfoam/vm"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// tapeWindow is how many cells the stepper shows around the data pointer.
const tapeWindow = 16

var (
	pointerColor = color.New(color.FgGreen, color.Bold)
	headerColor  = color.New(color.FgCyan)
	faintColor   = color.New(color.Faint)
)

func newStepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step [file]",
		Short: "Execute a program one instruction at a time",
		Long: "Step runs a program interactively: space or enter executes one " +
			"instruction, r runs to completion, q quits.",
		Args: cobra.MaximumNArgs(1),
		RunE: stepHandler,
	}
	cmd.Flags().StringP("code", "c", "", "Program source to execute")
	cmd.Flags().String("input", "", "Program input as a string")
	return cmd
}

func stepHandler(cmd *cobra.Command, args []string) error {
	if err := viper.BindPFlags(cmd.Flags()); err != nil {
		return err
	}
	source, err := getSource(cmd, args)
	if err != nil {
		return err
	}
	m, err := buildMachine(cmd, source, nil)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, faintColor.Sprint("space/enter: step  r: run  q: quit"))
	renderMachine(out, m)

	return keyboard.Listen(func(key keys.Key) (bool, error) {
		switch key.Code {
		case keys.CtrlC, keys.Escape:
			return true, nil
		case keys.Space, keys.Enter:
			if _, err := m.Step(); err != nil {
				return true, err
			}
			renderMachine(out, m)
			return m.State() == vm.Halted, nil
		case keys.RuneKey:
			switch key.String() {
			case "q":
				return true, nil
			case "r":
				if err := m.Run(cmd.Context()); err != nil {
					return true, err
				}
				renderMachine(out, m)
				return true, nil
			}
		}
		return false, nil
	})
}

// renderMachine prints the instruction context and a window of the tape
// centered on the data pointer.
func renderMachine(out io.Writer, m *vm.VirtualMachine) {
	inst, ok := m.Program().Get(m.IP())
	next := "end"
	if ok {
		next = fmt.Sprintf("%c (%s)", inst.Symbol(), inst.Name())
	}
	fmt.Fprintf(out, "\n%s ip=%d next=%s dp=%d steps=%d state=%s\n",
		headerColor.Sprint("machine"), m.IP(), next, m.DataPointer(), m.Steps(), m.State())

	start := m.DataPointer() - tapeWindow/2
	if start < 0 {
		start = 0
	}
	var cells, pointer strings.Builder
	for i := start; i < start+tapeWindow && i < m.TapeLength(); i++ {
		cell, _ := m.Cell(i)
		text := fmt.Sprintf("%4d", cell.Uint8())
		if i == m.DataPointer() {
			text = pointerColor.Sprint(text)
			pointer.WriteString("   ^")
		} else {
			pointer.WriteString("    ")
		}
		cells.WriteString(text)
	}
	fmt.Fprintf(out, "tape[%d:]%s\n        %s\n", start, cells.String(), pointer.String())
}

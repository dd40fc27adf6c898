// Package dis renders a human-readable listing of a parsed program,
// including resolved loop jump targets.
package dis

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cloudcmds/brainfoam/op"
	"github.com/cloudcmds/brainfoam/program"
)

// Disassemble writes a listing of the program to w. Each line holds the
// instruction position, its symbol, its mnemonic, and, for loop
// delimiters, the position of the matching bracket.
func Disassemble(p *program.Program, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "; %d instructions\n", p.Len())
	for i := 0; i < p.Len(); i++ {
		inst, _ := p.Get(i)
		if target, ok := p.JumpTarget(i); ok {
			fmt.Fprintf(tw, "%4d\t%c\t%s\t-> %d\n", i, inst.Symbol(), inst.Name(), target)
		} else {
			fmt.Fprintf(tw, "%4d\t%c\t%s\t\n", i, inst.Symbol(), inst.Name())
		}
	}
	return tw.Flush()
}

// Counts returns how many times each instruction occurs in the program.
func Counts(p *program.Program) map[op.Instruction]int {
	counts := map[op.Instruction]int{}
	for _, inst := range p.Instructions() {
		counts[inst]++
	}
	return counts
}

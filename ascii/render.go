package ascii

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/cloudcmds/brainfoam/bits"
	"github.com/fatih/color"
)

var (
	controlColor = color.New(color.FgYellow)
	digitColor   = color.New(color.FgCyan)
	letterColor  = color.New(color.FgGreen)
	symbolColor  = color.New(color.FgMagenta)
)

func classColor(c Char) *color.Color {
	switch {
	case c.IsControl():
		return controlColor
	case c.IsDigit():
		return digitColor
	case c.IsLetter():
		return letterColor
	default:
		return symbolColor
	}
}

// Render writes the full ASCII reference table to w as aligned columns:
// decimal, hex, binary, mnemonic, display form, and description. Rows
// are colorized by character class unless color output is disabled
// globally (color.NoColor).
func Render(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "DEC\tHEX\tBIN\tCODE\tCHAR\tDESCRIPTION")
	for _, c := range All() {
		line := fmt.Sprintf("%d\t%s\t%s\t%s\t%s\t%s",
			c.Value.Uint8(), c.Value, binaryString(c), c.Code, c.Display, c.Description)
		fmt.Fprintln(tw, classColor(c).Sprint(line))
	}
	return tw.Flush()
}

// binaryString renders the byte's bits most significant first, using the
// cell type's own bit sequence.
func binaryString(c Char) string {
	var sb strings.Builder
	c.Value.Each(func(b bits.Bit) bool {
		sb.WriteString(b.String())
		return true
	})
	return sb.String()
}

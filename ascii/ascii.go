// Package ascii provides the 128-entry ASCII reference table keyed by
// the machine's Byte cell type, along with character classification
// predicates. The machine is ASCII-only, so the table covers its entire
// printable and control character space.
package ascii

import (
	"fmt"

	"github.com/cloudcmds/brainfoam/bits"
)

// Char is one entry of the ASCII table.
type Char struct {
	// Value is the character's byte value.
	Value bits.Byte

	// Code is a short mnemonic, e.g. "CNUL", "WSP", "DIG0", "UCLA".
	Code string

	// Description is the character's full name.
	Description string

	// Display is the printable representation: the glyph itself for
	// printable characters, a "\NNN" escape for control characters.
	Display string
}

// IsControl returns true for the control characters 0-31 and 127.
func (c Char) IsControl() bool {
	v := c.Value.Uint8()
	return v < 32 || v == 127
}

// IsPrintable returns true for the visible characters 32-126.
func (c Char) IsPrintable() bool {
	v := c.Value.Uint8()
	return v > 31 && v < 127
}

// IsWhitespace returns true for tab, line feed, vertical tab, form feed,
// carriage return, and space.
func (c Char) IsWhitespace() bool {
	switch c.Value.Uint8() {
	case 9, 10, 11, 12, 13, 32:
		return true
	}
	return false
}

// IsDigit returns true for '0' through '9'.
func (c Char) IsDigit() bool {
	v := c.Value.Uint8()
	return v > 47 && v < 58
}

// IsUppercase returns true for 'A' through 'Z'.
func (c Char) IsUppercase() bool {
	v := c.Value.Uint8()
	return v > 64 && v < 91
}

// IsLowercase returns true for 'a' through 'z'.
func (c Char) IsLowercase() bool {
	v := c.Value.Uint8()
	return v > 96 && v < 123
}

// IsLetter returns true for any uppercase or lowercase letter.
func (c Char) IsLetter() bool {
	return c.IsUppercase() || c.IsLowercase()
}

// entry is the compact source form of one table row.
type entry struct {
	code        string
	description string
	display     string
}

var table [128]Char

func init() {
	for value, e := range entries {
		table[value] = Char{
			Value:       bits.ByteFromUint8(uint8(value)),
			Code:        e.code,
			Description: e.description,
			Display:     e.display,
		}
	}
}

// Lookup returns the table entry for the given byte value. The boolean
// is false for values above 127, which are outside ASCII.
func Lookup(b bits.Byte) (Char, bool) {
	v := b.Uint8()
	if v > bits.MaxASCII {
		return Char{}, false
	}
	return table[v], true
}

// LookupValue returns the table entry for a raw byte value.
func LookupValue(v uint8) (Char, bool) {
	return Lookup(bits.ByteFromUint8(v))
}

// All returns the 128 table entries in value order.
func All() []Char {
	out := make([]Char, len(table))
	copy(out, table[:])
	return out
}

func escape(value int) string {
	return fmt.Sprintf("\\%03d", value)
}

var entries = [128]entry{
	0:   {"CNUL", "Null character", escape(0)},
	1:   {"CSOH", "Start of heading", escape(1)},
	2:   {"CSTX", "Start of text", escape(2)},
	3:   {"CETX", "End of text", escape(3)},
	4:   {"CEOT", "End of transmission", escape(4)},
	5:   {"CENQ", "Enquiry", escape(5)},
	6:   {"CACK", "Acknowledge", escape(6)},
	7:   {"CBEL", "Bell", escape(7)},
	8:   {"CBS", "Backspace", escape(8)},
	9:   {"CTAB", "Horizontal tab", escape(9)},
	10:  {"CLF", "Line feed", escape(10)},
	11:  {"CVT", "Vertical tab", escape(11)},
	12:  {"CFF", "Form feed", escape(12)},
	13:  {"CCR", "Carriage return", escape(13)},
	14:  {"CSO", "Shift out", escape(14)},
	15:  {"CSI", "Shift in", escape(15)},
	16:  {"CDLE", "Data link escape", escape(16)},
	17:  {"CDC1", "Device control 1", escape(17)},
	18:  {"CDC2", "Device control 2", escape(18)},
	19:  {"CDC3", "Device control 3", escape(19)},
	20:  {"CDC4", "Device control 4", escape(20)},
	21:  {"CNAK", "Negative acknowledge", escape(21)},
	22:  {"CSYN", "Synchronous idle", escape(22)},
	23:  {"CETB", "End of transmission block", escape(23)},
	24:  {"CCAN", "Cancel", escape(24)},
	25:  {"CEM", "End of medium", escape(25)},
	26:  {"CSUB", "Substitute", escape(26)},
	27:  {"CESC", "Escape", escape(27)},
	28:  {"CFS", "File separator", escape(28)},
	29:  {"CGS", "Group separator", escape(29)},
	30:  {"CRS", "Record separator", escape(30)},
	31:  {"CUS", "Unit separator", escape(31)},
	32:  {"WSP", "Space", " "},
	33:  {"SBANG", "Exclamation mark", "!"},
	34:  {"SDBLQ", "Double quote", "\""},
	35:  {"SHASH", "Hash", "#"},
	36:  {"SDOLL", "Dollar sign", "$"},
	37:  {"SPERC", "Percent", "%"},
	38:  {"SAMP", "Ampersand", "&"},
	39:  {"SSQT", "Single quote", "'"},
	40:  {"SOPAR", "Open parenthesis", "("},
	41:  {"SCPAR", "Close parenthesis", ")"},
	42:  {"SSTAR", "Asterisk", "*"},
	43:  {"SPLUS", "Plus", "+"},
	44:  {"SCOM", "Comma", ","},
	45:  {"SDASH", "Dash", "-"},
	46:  {"SDOT", "Period", "."},
	47:  {"SSLASH", "Slash", "/"},
	48:  {"DIG0", "Zero", "0"},
	49:  {"DIG1", "One", "1"},
	50:  {"DIG2", "Two", "2"},
	51:  {"DIG3", "Three", "3"},
	52:  {"DIG4", "Four", "4"},
	53:  {"DIG5", "Five", "5"},
	54:  {"DIG6", "Six", "6"},
	55:  {"DIG7", "Seven", "7"},
	56:  {"DIG8", "Eight", "8"},
	57:  {"DIG9", "Nine", "9"},
	58:  {"SCOL", "Colon", ":"},
	59:  {"SSCL", "Semicolon", ";"},
	60:  {"SLT", "Less than", "<"},
	61:  {"SEQ", "Equals", "="},
	62:  {"SGT", "Greater than", ">"},
	63:  {"SQUES", "Question mark", "?"},
	64:  {"SAT", "At sign", "@"},
	65:  {"UCLA", "Uppercase Letter A", "A"},
	66:  {"UCLB", "Uppercase Letter B", "B"},
	67:  {"UCLC", "Uppercase Letter C", "C"},
	68:  {"UCLD", "Uppercase Letter D", "D"},
	69:  {"UCLE", "Uppercase Letter E", "E"},
	70:  {"UCLF", "Uppercase Letter F", "F"},
	71:  {"UCLG", "Uppercase Letter G", "G"},
	72:  {"UCLH", "Uppercase Letter H", "H"},
	73:  {"UCLI", "Uppercase Letter I", "I"},
	74:  {"UCLJ", "Uppercase Letter J", "J"},
	75:  {"UCLK", "Uppercase Letter K", "K"},
	76:  {"UCLL", "Uppercase Letter L", "L"},
	77:  {"UCLM", "Uppercase Letter M", "M"},
	78:  {"UCLN", "Uppercase Letter N", "N"},
	79:  {"UCLO", "Uppercase Letter O", "O"},
	80:  {"UCLP", "Uppercase Letter P", "P"},
	81:  {"UCLQ", "Uppercase Letter Q", "Q"},
	82:  {"UCLR", "Uppercase Letter R", "R"},
	83:  {"UCLS", "Uppercase Letter S", "S"},
	84:  {"UCLT", "Uppercase Letter T", "T"},
	85:  {"UCLU", "Uppercase Letter U", "U"},
	86:  {"UCLV", "Uppercase Letter V", "V"},
	87:  {"UCLW", "Uppercase Letter W", "W"},
	88:  {"UCLX", "Uppercase Letter X", "X"},
	89:  {"UCLY", "Uppercase Letter Y", "Y"},
	90:  {"UCLZ", "Uppercase Letter Z", "Z"},
	91:  {"SOSB", "Open square bracket", "["},
	92:  {"SBKS", "Backslash", "\\"},
	93:  {"SCSB", "Close square bracket", "]"},
	94:  {"SCAR", "Caret", "^"},
	95:  {"SUSC", "Underscore", "_"},
	96:  {"SBTK", "Backtick", "`"},
	97:  {"LCLA", "Lowercase Letter a", "a"},
	98:  {"LCLB", "Lowercase Letter b", "b"},
	99:  {"LCLC", "Lowercase Letter c", "c"},
	100: {"LCLD", "Lowercase Letter d", "d"},
	101: {"LCLE", "Lowercase Letter e", "e"},
	102: {"LCLF", "Lowercase Letter f", "f"},
	103: {"LCLG", "Lowercase Letter g", "g"},
	104: {"LCLH", "Lowercase Letter h", "h"},
	105: {"LCLI", "Lowercase Letter i", "i"},
	106: {"LCLJ", "Lowercase Letter j", "j"},
	107: {"LCLK", "Lowercase Letter k", "k"},
	108: {"LCLL", "Lowercase Letter l", "l"},
	109: {"LCLM", "Lowercase Letter m", "m"},
	110: {"LCLN", "Lowercase Letter n", "n"},
	111: {"LCLO", "Lowercase Letter o", "o"},
	112: {"LCLP", "Lowercase Letter p", "p"},
	113: {"LCLQ", "Lowercase Letter q", "q"},
	114: {"LCLR", "Lowercase Letter r", "r"},
	115: {"LCLS", "Lowercase Letter s", "s"},
	116: {"LCLT", "Lowercase Letter t", "t"},
	117: {"LCLU", "Lowercase Letter u", "u"},
	118: {"LCLV", "Lowercase Letter v", "v"},
	119: {"LCLW", "Lowercase Letter w", "w"},
	120: {"LCLX", "Lowercase Letter x", "x"},
	121: {"LCLY", "Lowercase Letter y", "y"},
	122: {"LCLZ", "Lowercase Letter z", "z"},
	123: {"SOCB", "Open curly brace", "{"},
	124: {"SVBAR", "Vertical bar", "|"},
	125: {"SCCB", "Close curly brace", "}"},
	126: {"STLD", "Tilde", "~"},
	127: {"CDEL", "Delete", escape(127)},
}

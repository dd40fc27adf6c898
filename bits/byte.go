package bits

import "fmt"

// ByteWidth is the number of bits in a Byte.
const ByteWidth = 8

// MaxByte is the largest value a Byte can hold.
const MaxByte = 255

// MaxASCII is the largest value that is a valid ASCII code point.
const MaxASCII = 127

// Byte is a pair of Nybbles (high, low) representing an unsigned integer
// in [0,255]. The invariant value = high*16 + low holds at all times.
// Byte is the memory-cell type of the virtual machine. The zero value is
// the Byte 0.
type Byte struct {
	high Nybble
	low  Nybble
}

// NewByte converts an integer to a Byte. Values outside [0,255] are
// rejected with a RangeError rather than truncated.
func NewByte(value int) (Byte, error) {
	if value < 0 || value > MaxByte {
		return Byte{}, &RangeError{Type: "byte", Value: value, Max: MaxByte}
	}
	return ByteFromUint8(uint8(value)), nil
}

// ByteFromUint8 converts a uint8 to a Byte. The conversion is total.
func ByteFromUint8(value uint8) Byte {
	return Byte{
		high: nybbleFromUint8(value >> NybbleWidth),
		low:  nybbleFromUint8(value & MaxNybble),
	}
}

// ByteFromNybbles assembles a Byte from a high and a low nybble.
func ByteFromNybbles(high, low Nybble) Byte {
	return Byte{high: high, low: low}
}

// ByteFromRune converts an ASCII character to a Byte. Code points above
// 127 are rejected with a RangeError: the machine is ASCII-only.
func ByteFromRune(r rune) (Byte, error) {
	if r < 0 || r > MaxASCII {
		return Byte{}, &RangeError{Type: "ascii", Value: int(r), Max: MaxASCII}
	}
	return ByteFromUint8(uint8(r)), nil
}

// High returns the most significant nybble.
func (b Byte) High() Nybble {
	return b.high
}

// Low returns the least significant nybble.
func (b Byte) Low() Nybble {
	return b.low
}

// Bit returns the bit at the given position, where position 0 is the most
// significant bit of the high nybble and 7 the least significant bit of
// the low nybble.
func (b Byte) Bit(position int) (Bit, error) {
	if position < 0 || position >= ByteWidth {
		return Zero, &PositionError{Type: "byte", Position: position, Width: ByteWidth}
	}
	if position < NybbleWidth {
		return b.high.Bit(position)
	}
	return b.low.Bit(position - NybbleWidth)
}

// Each yields the eight bits in order: the high nybble's bits, most
// significant first, followed by the low nybble's. Iteration stops early
// if fn returns false. Every call begins a fresh traversal.
func (b Byte) Each(fn func(Bit) bool) {
	stopped := false
	b.high.Each(func(bit Bit) bool {
		if !fn(bit) {
			stopped = true
			return false
		}
		return true
	})
	if stopped {
		return
	}
	b.low.Each(fn)
}

// Uint8 returns the numeric value of the byte, in [0,255].
func (b Byte) Uint8() uint8 {
	return b.high.Uint8()<<NybbleWidth | b.low.Uint8()
}

// Rune returns the byte's value as a character.
func (b Byte) Rune() rune {
	return rune(b.Uint8())
}

// Increment adds one in place, wrapping 255 to 0. A low-nybble wrap
// carries into the high nybble.
func (b *Byte) Increment() {
	b.low.Increment()
	if b.low.IsZero() {
		b.high.Increment()
	}
}

// Decrement subtracts one in place, wrapping 0 to 255. A borrow out of
// the low nybble decrements the high nybble.
func (b *Byte) Decrement() {
	if b.low.IsZero() {
		b.high.Decrement()
	}
	b.low.Decrement()
}

// Not returns the bitwise complement of the byte.
func (b Byte) Not() Byte {
	return Byte{high: b.high.Not(), low: b.low.Not()}
}

// IsZero returns true if all eight bits are unset.
func (b Byte) IsZero() bool {
	return b == Byte{}
}

// Compare returns -1, 0, or 1 according to the numeric ordering of the
// two bytes.
func (b Byte) Compare(other Byte) int {
	switch bv, ov := b.Uint8(), other.Uint8(); {
	case bv < ov:
		return -1
	case bv > ov:
		return 1
	default:
		return 0
	}
}

// String returns the value in hexadecimal, e.g. "0xFF".
func (b Byte) String() string {
	return fmt.Sprintf("0x%02X", b.Uint8())
}

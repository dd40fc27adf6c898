package bits

import "fmt"

// NybbleWidth is the number of bits in a Nybble.
const NybbleWidth = 4

// MaxNybble is the largest value a Nybble can hold.
const MaxNybble = 15

// Nybble is an ordered sequence of exactly four Bits, most significant
// first, representing an unsigned integer in [0,15]. The zero value is
// the Nybble 0.
type Nybble struct {
	bits [NybbleWidth]Bit
}

// NewNybble converts an integer to a Nybble. Values outside [0,15] are
// rejected with a RangeError rather than truncated.
func NewNybble(value int) (Nybble, error) {
	if value < 0 || value > MaxNybble {
		return Nybble{}, &RangeError{Type: "nybble", Value: value, Max: MaxNybble}
	}
	return nybbleFromUint8(uint8(value)), nil
}

// NybbleFromBits assembles a Nybble from four explicit bits, most
// significant first.
func NybbleFromBits(b0, b1, b2, b3 Bit) Nybble {
	return Nybble{bits: [NybbleWidth]Bit{b0, b1, b2, b3}}
}

func nybbleFromUint8(value uint8) Nybble {
	var n Nybble
	for i := 0; i < NybbleWidth; i++ {
		n.bits[i] = Bit(value >> (NybbleWidth - 1 - i) & 1)
	}
	return n
}

// Bit returns the bit at the given position, where position 0 is the most
// significant bit and 3 the least.
func (n Nybble) Bit(position int) (Bit, error) {
	if position < 0 || position >= NybbleWidth {
		return Zero, &PositionError{Type: "nybble", Position: position, Width: NybbleWidth}
	}
	return n.bits[position], nil
}

// Each yields the four bits in order, most significant first. Iteration
// stops early if fn returns false. Every call begins a fresh traversal.
func (n Nybble) Each(fn func(Bit) bool) {
	for _, b := range n.bits {
		if !fn(b) {
			return
		}
	}
}

// Uint8 returns the numeric value of the nybble, in [0,15].
func (n Nybble) Uint8() uint8 {
	var value uint8
	for _, b := range n.bits {
		value = value<<1 | uint8(b)
	}
	return value
}

// Increment adds one in place, wrapping 15 to 0. The carry ripples up from
// the least significant bit: each flip that lands on zero propagates.
func (n *Nybble) Increment() {
	for i := NybbleWidth - 1; i >= 0; i-- {
		n.bits[i].Flip()
		if n.bits[i] == One {
			return
		}
	}
}

// Decrement subtracts one in place, wrapping 0 to 15. The borrow ripples
// up from the least significant bit: each flip that lands on one propagates.
func (n *Nybble) Decrement() {
	for i := NybbleWidth - 1; i >= 0; i-- {
		n.bits[i].Flip()
		if n.bits[i] == Zero {
			return
		}
	}
}

// Not returns the bitwise complement of the nybble.
func (n Nybble) Not() Nybble {
	var out Nybble
	for i, b := range n.bits {
		out.bits[i] = b.Not()
	}
	return out
}

// IsZero returns true if all four bits are unset.
func (n Nybble) IsZero() bool {
	return n == Nybble{}
}

// String returns the value in hexadecimal, e.g. "0x0F".
func (n Nybble) String() string {
	return fmt.Sprintf("0x%02X", n.Uint8())
}

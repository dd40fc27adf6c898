// Package bits models the bit-accurate numeric containers used for memory
// cells: a single Bit, a 4-bit Nybble, and an 8-bit Byte. All in-place
// arithmetic is modular over the container's width; only construction from
// an out-of-range integer returns an error.
package bits

// Bit is a single binary digit.
type Bit uint8

const (
	// Zero is an unset bit.
	Zero Bit = 0
	// One is a set bit.
	One Bit = 1
)

// NewBit converts an integer to a Bit. Values other than 0 and 1 are
// rejected with a RangeError rather than truncated.
func NewBit(value int) (Bit, error) {
	if value < 0 || value > 1 {
		return Zero, &RangeError{Type: "bit", Value: value, Max: 1}
	}
	return Bit(value), nil
}

// Not returns the logical complement of the bit.
func (b Bit) Not() Bit {
	return b ^ One
}

// And returns the logical conjunction of two bits.
func (b Bit) And(other Bit) Bit {
	return b & other
}

// Or returns the logical disjunction of two bits.
func (b Bit) Or(other Bit) Bit {
	return b | other
}

// Xor returns the exclusive disjunction of two bits.
func (b Bit) Xor(other Bit) Bit {
	return b ^ other
}

// Flip inverts the bit in place.
func (b *Bit) Flip() {
	*b ^= One
}

// AndWith replaces the bit with its conjunction with other.
func (b *Bit) AndWith(other Bit) {
	*b &= other
}

// OrWith replaces the bit with its disjunction with other.
func (b *Bit) OrWith(other Bit) {
	*b |= other
}

// XorWith replaces the bit with its exclusive disjunction with other.
func (b *Bit) XorWith(other Bit) {
	*b ^= other
}

// IsSet returns true if the bit is One.
func (b Bit) IsSet() bool {
	return b == One
}

// Uint8 returns the bit's numeric value, 0 or 1.
func (b Bit) Uint8() uint8 {
	return uint8(b)
}

func (b Bit) String() string {
	if b == One {
		return "1"
	}
	return "0"
}

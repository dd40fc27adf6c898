package bits

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBit(t *testing.T) {
	b, err := NewBit(0)
	require.NoError(t, err)
	assert.Equal(t, Zero, b)

	b, err = NewBit(1)
	require.NoError(t, err)
	assert.Equal(t, One, b)
}

func TestNewBitOutOfRange(t *testing.T) {
	for _, value := range []int{-1, 2, 255} {
		_, err := NewBit(value)
		require.Error(t, err)
		var rangeErr *RangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, value, rangeErr.Value)
	}
}

func TestBitLogic(t *testing.T) {
	tests := []struct {
		a, b         Bit
		and, or, xor Bit
	}{
		{Zero, Zero, Zero, Zero, Zero},
		{Zero, One, Zero, One, One},
		{One, Zero, Zero, One, One},
		{One, One, One, One, Zero},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.and, tt.a.And(tt.b))
		assert.Equal(t, tt.or, tt.a.Or(tt.b))
		assert.Equal(t, tt.xor, tt.a.Xor(tt.b))
	}
	assert.Equal(t, One, Zero.Not())
	assert.Equal(t, Zero, One.Not())
}

func TestBitCompoundAssign(t *testing.T) {
	b := Zero
	b.Flip()
	assert.Equal(t, One, b)
	b.Flip()
	assert.Equal(t, Zero, b)

	b = One
	b.AndWith(Zero)
	assert.Equal(t, Zero, b)
	b.OrWith(One)
	assert.Equal(t, One, b)
	b.XorWith(One)
	assert.Equal(t, Zero, b)
}

func TestBitString(t *testing.T) {
	assert.Equal(t, "0", Zero.String())
	assert.Equal(t, "1", One.String())
}

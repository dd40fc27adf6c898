package vm

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReaderEOFIsNotAnError(t *testing.T) {
	r := NewReader(strings.NewReader("ab"))

	b, ok, err := r.ReadByte()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte('a'), b)

	b, ok, err = r.ReadByte()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte('b'), b)

	_, ok, err = r.ReadByte()
	require.NoError(t, err)
	assert.False(t, ok)

	// Exhaustion is stable across repeated reads.
	_, ok, err = r.ReadByte()
	require.NoError(t, err)
	assert.False(t, ok)
}

type brokenReader struct{}

func (brokenReader) Read([]byte) (int, error) {
	return 0, errors.New("device unplugged")
}

func TestNewReaderPropagatesRealErrors(t *testing.T) {
	r := NewReader(brokenReader{})
	_, ok, err := r.ReadByte()
	assert.False(t, ok)
	require.Error(t, err)
	assert.NotErrorIs(t, err, io.EOF)
}

func TestBufferReader(t *testing.T) {
	r := BufferReader([]byte{1, 2})
	b, ok, err := r.ReadByte()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte(1), b)

	b, ok, err = r.ReadByte()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, byte(2), b)

	_, ok, err = r.ReadByte()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestEmptyInput(t *testing.T) {
	_, ok, err := EmptyInput().ReadByte()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestNewWriter(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteByte('H'))
	require.NoError(t, w.WriteByte('i'))
	assert.Equal(t, "Hi", buf.String())
}

func TestDiscard(t *testing.T) {
	require.NoError(t, Discard().WriteByte(0xFF))
}

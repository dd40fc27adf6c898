package vm

import (
	"errors"
	"io"
)

// Reader supplies input bytes to a VirtualMachine, one byte per call.
// Exhaustion of the stream is an ordinary state, not an error: ok is
// false once no more bytes are available. A non-nil error indicates an
// unrecoverable I/O failure and faults the machine.
type Reader interface {
	ReadByte() (b byte, ok bool, err error)
}

// Writer consumes output bytes from a VirtualMachine, one byte per call.
// A non-nil error faults the machine; writes are not retried.
type Writer interface {
	WriteByte(b byte) error
}

type ioReader struct {
	r   io.Reader
	buf [1]byte
}

// NewReader adapts an io.Reader into a Reader. io.EOF is reported as
// ordinary end of stream, never as an error.
func NewReader(r io.Reader) Reader {
	return &ioReader{r: r}
}

func (r *ioReader) ReadByte() (byte, bool, error) {
	n, err := r.r.Read(r.buf[:])
	if n == 1 {
		return r.buf[0], true, nil
	}
	if err == nil || errors.Is(err, io.EOF) {
		return 0, false, nil
	}
	return 0, false, err
}

type ioWriter struct {
	w io.Writer
}

// NewWriter adapts an io.Writer into a Writer.
func NewWriter(w io.Writer) Writer {
	return &ioWriter{w: w}
}

func (w *ioWriter) WriteByte(b byte) error {
	_, err := w.w.Write([]byte{b})
	return err
}

type bufferReader struct {
	data []byte
	pos  int
}

// BufferReader returns a Reader over a fixed in-memory byte sequence.
// Useful for tests and for the CLI's --input flag.
func BufferReader(data []byte) Reader {
	return &bufferReader{data: data}
}

func (r *bufferReader) ReadByte() (byte, bool, error) {
	if r.pos >= len(r.data) {
		return 0, false, nil
	}
	b := r.data[r.pos]
	r.pos++
	return b, true, nil
}

type emptyReader struct{}

func (emptyReader) ReadByte() (byte, bool, error) {
	return 0, false, nil
}

// EmptyInput returns a Reader that is always at end of stream. It is the
// Builder's default input source.
func EmptyInput() Reader {
	return emptyReader{}
}

type discardWriter struct{}

func (discardWriter) WriteByte(byte) error {
	return nil
}

// Discard returns a Writer that drops every byte. It is the Builder's
// default output sink.
func Discard() Writer {
	return discardWriter{}
}

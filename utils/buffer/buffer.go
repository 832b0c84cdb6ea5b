// Package buffer implements buffered little-endian encoding and decoding of
// 64-bit words on top of readers and writers that expose their internal buffers.
package buffer

import (
	"errors"
	"io"
)

// ErrBufferFull is returned by Buffer.Write when the write does not fit in
// the backing slice.
var ErrBufferFull = errors.New("buffer full")

// Writer is a writer that lets the caller encode directly into its free space.
// It is implemented by *bufio.Writer and *Buffer.
type Writer interface {
	io.Writer
	Flush() (err error)
	AvailableBuffer() []byte
	Available() int
}

// Reader is a reader that lets the caller decode directly from its pending bytes.
// It is implemented by *bufio.Reader and *Buffer.
type Reader interface {
	io.Reader
	Size() int
	Peek(n int) ([]byte, error)
	Discard(n int) (discarded int, err error)
}

// Buffer is a Writer and a Reader over a fixed-size byte slice.
// Writes and reads advance two independent offsets, and the
// backing slice is never grown.
type Buffer struct {
	buf  []byte
	wOff int
	rOff int
}

// NewBuffer returns a Buffer backed by p. Both offsets start at p[0], so
// p can be read as is, and writes overwrite its content.
func NewBuffer(p []byte) *Buffer {
	return &Buffer{buf: p}
}

// NewBufferSize returns a Buffer backed by a new slice of the given size.
func NewBufferSize(size int) *Buffer {
	return NewBuffer(make([]byte, size))
}

// Bytes returns the bytes written so far.
func (b *Buffer) Bytes() []byte {
	return b.buf[:b.wOff]
}

// Reset rewinds both offsets.
func (b *Buffer) Reset() {
	b.wOff, b.rOff = 0, 0
}

// Write appends p at the write offset, or returns ErrBufferFull if p does
// not fit in the remaining space.
func (b *Buffer) Write(p []byte) (n int, err error) {
	if len(p) > b.Available() {
		return 0, ErrBufferFull
	}
	// copy is a no-op when p was obtained from AvailableBuffer
	n = copy(b.buf[b.wOff:], p)
	b.wOff += n
	return
}

// Flush is a no-op.
func (b *Buffer) Flush() (err error) {
	return
}

// AvailableBuffer returns a zero-length slice over the free space of b.
// It is valid until the next write.
func (b *Buffer) AvailableBuffer() []byte {
	return b.buf[b.wOff:b.wOff]
}

// Available returns the number of bytes that can still be written.
func (b *Buffer) Available() int {
	return len(b.buf) - b.wOff
}

// Read copies the pending bytes into p and returns io.EOF if fewer than
// len(p) bytes were pending.
func (b *Buffer) Read(p []byte) (n int, err error) {
	n = copy(p, b.buf[b.rOff:])
	b.rOff += n
	if n < len(p) {
		err = io.EOF
	}
	return
}

// Size returns the number of pending bytes.
func (b *Buffer) Size() int {
	return len(b.buf) - b.rOff
}

// Peek returns the next n pending bytes without consuming them. The
// returned slice aliases b. It returns io.EOF with the remaining bytes
// if fewer than n are pending.
func (b *Buffer) Peek(n int) ([]byte, error) {
	if n > b.Size() {
		return b.buf[b.rOff:], io.EOF
	}
	return b.buf[b.rOff : b.rOff+n], nil
}

// Discard consumes up to n pending bytes and returns io.EOF if fewer than n were pending.
func (b *Buffer) Discard(n int) (discarded int, err error) {
	if discarded = b.Size(); n > discarded {
		b.rOff = len(b.buf)
		return discarded, io.EOF
	}
	b.rOff += n
	return n, nil
}

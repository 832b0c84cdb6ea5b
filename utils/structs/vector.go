package structs

import (
	"bufio"
	"fmt"
	"io"

	"github.com/zeebo/blake3"

	"github.com/polybasis/leg2cheb/utils/buffer"
)

// Vector is a struct wrapping a slice of 64-bit components of type T.
type Vector[T Word64] []T

// CopyNew returns a deep copy of the object.
func (v Vector[T]) CopyNew() (vcpy Vector[T]) {
	vcpy = Vector[T](make([]T, len(v)))
	copy(vcpy, v)
	return
}

// BinarySize returns the serialized size of the object in bytes.
func (v Vector[T]) BinarySize() (size int) {
	return 8 + len(v)*8
}

// WriteTo writes the object on an io.Writer. It implements the io.WriterTo
// interface, and will write exactly object.BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Writer. Since this requires allocations, it
// is preferable to pass a buffer.Writer directly:
//
//   - When writing multiple times to a io.Writer, it is preferable to first wrap the
//     io.Writer in a pre-allocated bufio.Writer.
//   - When writing to a pre-allocated var b []byte, it is preferable to pass
//     buffer.NewBuffer(b) as w (see utils/buffer/buffer.go).
func (v Vector[T]) WriteTo(w io.Writer) (n int64, err error) {

	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteAsUint64[int](w, len(v)); err != nil {
			return inc, fmt.Errorf("buffer.WriteAsUint64[int]: %w", err)
		}

		n += inc

		if inc, err = buffer.WriteAsUint64Slice[T](w, v); err != nil {
			var t T
			return n + inc, fmt.Errorf("buffer.WriteAsUint64Slice[%T]: %w", t, err)
		}

		n += inc

		return n, w.Flush()

	default:
		return v.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Writer. It implements the
// io.ReaderFrom interface.
//
// Unless r implements the buffer.Reader interface (see utils/buffer/buffer.go),
// it will be wrapped into a bufio.Reader. Since this requires allocation, it
// is preferable to pass a buffer.Reader directly.
//
// The declared length is not bounded: callers reading from untrusted sources
// should use ReadFromLimit.
func (v *Vector[T]) ReadFrom(r io.Reader) (n int64, err error) {
	return v.ReadFromLimit(r, -1)
}

// ReadFromLimit is identical to ReadFrom but returns an error wrapping
// ErrTooLarge, before allocating, if the declared length exceeds maxLen.
// A negative maxLen disables the check.
func (v *Vector[T]) ReadFromLimit(r io.Reader, maxLen int) (n int64, err error) {

	switch r := r.(type) {
	case buffer.Reader:

		var inc int64

		var size int

		if inc, err = buffer.ReadAsUint64[int](r, &size); err != nil {
			return inc, fmt.Errorf("buffer.ReadAsUint64[int]: %w", err)
		}

		n += inc

		if size < 0 || (maxLen >= 0 && size > maxLen) {
			return n, fmt.Errorf("cannot ReadFrom: declared length %d: %w", size, ErrTooLarge)
		}

		if cap(*v) < size {
			*v = make([]T, size)
		}

		*v = (*v)[:size]

		if inc, err = buffer.ReadAsUint64Slice[T](r, *v); err != nil {
			var t T
			return n + inc, fmt.Errorf("buffer.ReadAsUint64Slice[%T]: %w", t, err)
		}

		n += inc

		return n, nil

	default:
		return v.ReadFromLimit(bufio.NewReader(r), maxLen)
	}
}

// MarshalBinary encodes the object into a binary form on a newly allocated slice of bytes.
func (v Vector[T]) MarshalBinary() (p []byte, err error) {
	buf := buffer.NewBufferSize(v.BinarySize())
	_, err = v.WriteTo(buf)
	return buf.Bytes(), err
}

// UnmarshalBinary decodes a slice of bytes generated by
// MarshalBinary or WriteTo on the object.
func (v *Vector[T]) UnmarshalBinary(p []byte) (err error) {
	_, err = v.ReadFrom(buffer.NewBuffer(p))
	return
}

// Equal performs a bitwise deep equal.
func (v Vector[T]) Equal(other Vector[T]) (isEqual bool) {
	return buffer.EqualAsUint64Slice([]T(v), []T(other))
}

// Digest returns the blake3 hash of the binary serialization of the object.
// Two vectors have the same digest if and only if they are bit-identical.
func (v Vector[T]) Digest() (digest [32]byte) {
	hasher := blake3.New()
	if _, err := v.WriteTo(bufio.NewWriter(hasher)); err != nil {
		// blake3.Hasher.Write never returns an error
		panic(err)
	}
	copy(digest[:], hasher.Sum(nil))
	return
}

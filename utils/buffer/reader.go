package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"unsafe"
)

// ReadAsUint64 reads an uint64 from r and stores the result into *c with pointer type casting into type T.
// User must ensure that T can be stored in an uint64.
func ReadAsUint64[T any](r Reader, c *T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint64(r, (*uint64)(unsafe.Pointer(c)))
}

// ReadAsUint64Slice reads a slice of uint64 from r and stores the result into c with pointer type casting into type T.
// User must ensure that T can be stored in an uint64.
func ReadAsUint64Slice[T any](r Reader, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return ReadUint64Slice(r, *(*[]uint64)(unsafe.Pointer(&c)))
}

// ReadUint64 reads an uint64 from r and stores the result into c.
func ReadUint64(r Reader, c *uint64) (n int64, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb = [8]byte{}

	var nint int
	if nint, err = io.ReadFull(r, bb[:]); err != nil {
		return int64(nint), err
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return int64(nint), nil
}

// ReadUint64Slice fills c with little-endian words read from r.
// The words are decoded directly from the pending bytes of r. It returns an
// error wrapping io.ErrUnexpectedEOF if r ends before c is filled.
func ReadUint64Slice(r Reader, c []uint64) (n int64, err error) {

	for len(c) > 0 {

		// a short peek still holds whole words to decode
		pending, perr := r.Peek(min(r.Size(), len(c)<<3))
		if perr != nil && perr != io.EOF {
			return n, perr
		}

		words := len(pending) >> 3
		if words == 0 {
			return n, fmt.Errorf("cannot ReadUint64Slice: %w", io.ErrUnexpectedEOF)
		}

		for i := 0; i < words; i++ {
			c[i] = binary.LittleEndian.Uint64(pending[i<<3:])
		}

		var inc int
		inc, err = r.Discard(words << 3)
		n += int64(inc)
		if err != nil {
			return
		}

		c = c[words:]
	}

	return
}

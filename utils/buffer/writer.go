package buffer

import (
	"encoding/binary"
	"fmt"
	"unsafe"
)

// WriteAsUint64 casts &T to an *uint64 and writes it to w.
// User must ensure that T can be stored in an uint64.
func WriteAsUint64[T any](w Writer, c T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return WriteUint64(w, *(*uint64)(unsafe.Pointer(&c)))
}

// WriteAsUint64Slice casts &[]T into *[]uint64 and writes it to w.
// User must ensure that T can be stored in an uint64.
func WriteAsUint64Slice[T any](w Writer, c []T) (n int64, err error) {
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	return WriteUint64Slice(w, *(*[]uint64)(unsafe.Pointer(&c)))
}

// WriteUint64 writes c into w as 8 little-endian bytes.
func WriteUint64(w Writer, c uint64) (n int64, err error) {
	return WriteUint64Slice(w, []uint64{c})
}

// WriteUint64Slice writes c into w as consecutive little-endian words.
// The words are encoded directly in the free space of w, which is flushed
// each time it is full.
func WriteUint64Slice(w Writer, c []uint64) (n int64, err error) {

	for len(c) > 0 {

		words := w.Available() >> 3

		if words == 0 {
			if err = w.Flush(); err != nil {
				return
			}
			if words = w.Available() >> 3; words == 0 {
				return n, fmt.Errorf("cannot WriteUint64Slice: %w", ErrBufferFull)
			}
		}

		words = min(words, len(c))

		buf := w.AvailableBuffer()[:words<<3]
		for i := 0; i < words; i++ {
			binary.LittleEndian.PutUint64(buf[i<<3:], c[i])
		}

		var inc int
		inc, err = w.Write(buf)
		n += int64(inc)
		if err != nil {
			return
		}

		c = c[words:]
	}

	return
}

// EqualAsUint64Slice casts &[]T into *[]uint64 and compares the two slices word by word.
// Two float64 slices are therefore equal if and only if they are bit-identical.
func EqualAsUint64Slice[T any](a, b []T) bool {

	if len(a) != len(b) {
		return false
	}

	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	aU64 := *(*[]uint64)(unsafe.Pointer(&a))
	/* #nosec G103 -- behavior and consequences well understood, pointer type cast */
	bU64 := *(*[]uint64)(unsafe.Pointer(&b))

	for i := range aU64 {
		if aU64[i] != bU64[i] {
			return false
		}
	}

	return true
}

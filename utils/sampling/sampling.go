// Package sampling implements secure and deterministic sampling of bytes and floats.
package sampling

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// MaxSliceLength is the largest n accepted by RandFloat64Slice, for which
// the n<<3 bytes drawn from the PRNG still fit in an int.
const MaxSliceLength = math.MaxInt >> 3

// ErrInvalidLength is returned when a requested length is negative or larger than MaxSliceLength.
var ErrInvalidLength = errors.New("invalid length")

// RandUint64 returns a value between 0 and 0xFFFFFFFFFFFFFFFF read from prng.
func RandUint64(prng PRNG) (v uint64, err error) {
	b := make([]byte, 8)
	if _, err = io.ReadFull(prng, b); err != nil {
		return 0, fmt.Errorf("cannot RandUint64: %w", err)
	}
	return binary.LittleEndian.Uint64(b), nil
}

// RandFloat64 returns a float between min and max read from prng.
func RandFloat64(prng PRNG, min, max float64) (f float64, err error) {
	var v uint64
	if v, err = RandUint64(prng); err != nil {
		return
	}
	return uint64ToFloat64(v, min, max), nil
}

// RandFloat64Slice returns a slice of n floats sampled uniformly between min and max
// from the bytes of prng. Given a KeyedPRNG, the output is deterministic.
func RandFloat64Slice(prng PRNG, min, max float64, n int) (s []float64, err error) {

	if n < 0 || n > MaxSliceLength {
		return nil, fmt.Errorf("cannot RandFloat64Slice: n=%d: %w", n, ErrInvalidLength)
	}

	b := make([]byte, n<<3)

	if _, err = io.ReadFull(prng, b); err != nil {
		return nil, fmt.Errorf("cannot RandFloat64Slice: %w", err)
	}

	s = make([]float64, n)
	for i := range s {
		s[i] = uint64ToFloat64(binary.LittleEndian.Uint64(b[i<<3:]), min, max)
	}

	return
}

func uint64ToFloat64(x uint64, min, max float64) float64 {
	f := float64(x) / 1.8446744073709552e+19
	return min + f*(max-min)
}

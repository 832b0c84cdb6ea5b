// Package utils implements generic helpers on slices.
package utils

import (
	"math"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Overlap1D returns true if the elements of x and y share memory, whether they are
// views of the same array with the same capacity or arbitrary overlapping reslices.
func Overlap1D[V any](x, y []V) bool {

	if len(x) == 0 || len(y) == 0 {
		return false
	}

	size := unsafe.Sizeof(x[0])
	if size == 0 {
		return false
	}

	/* #nosec G103 -- the addresses are only compared */
	x0, y0 := uintptr(unsafe.Pointer(&x[0])), uintptr(unsafe.Pointer(&y[0]))

	return x0 < y0+uintptr(len(y))*size && y0 < x0+uintptr(len(x))*size
}

// MaxAbsSlice returns max(|s[i]|), or zero if s is empty.
// NaN values are propagated.
func MaxAbsSlice[T constraints.Float](s []T) (m T) {
	for _, v := range s {
		a := T(math.Abs(float64(v)))
		if a != a {
			return a
		}
		if a > m {
			m = a
		}
	}
	return
}

// SubSlice returns a new slice equal to a - b.
// Panics if a and b have different lengths.
func SubSlice[T constraints.Float | constraints.Integer](a, b []T) (c []T) {

	if len(a) != len(b) {
		panic("cannot SubSlice: a and b have different lengths")
	}

	c = make([]T, len(a))
	for i := range a {
		c[i] = a[i] - b[i]
	}

	return
}

// AxpbySlice returns a new slice equal to alpha * x + beta * y.
// Panics if x and y have different lengths.
func AxpbySlice[T constraints.Float](alpha T, x []T, beta T, y []T) (z []T) {

	if len(x) != len(y) {
		panic("cannot AxpbySlice: x and y have different lengths")
	}

	z = make([]T, len(x))
	for i := range x {
		z[i] = alpha*x[i] + beta*y[i]
	}

	return
}

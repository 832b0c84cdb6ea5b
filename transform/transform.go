// Package transform implements the conversion of polynomial coefficients between the
// Chebyshev (first kind) basis and the Legendre basis.
//
// Given X[0], ..., X[N-1] such that
//
//	p(x) = X[0]T_0(x) + X[1]T_1(x) + ... + X[N-1]T_{N-1}(x)
//	     = C[0]P_0(x) + C[1]P_1(x) + ... + C[N-1]P_{N-1}(x)
//
// Cheb2Leg computes C from X and Leg2Cheb computes X from C.
//
// Both conversions are direct O(N^2) evaluations of the connection matrix between
// the two bases. The matrix is never stored: its entries are generated row by row
// with ratio recurrences, which keeps the auxiliary memory at O(1) and avoids forming
// large binomial-like terms. Entries (i, j) are non-zero only if i and j have the
// same parity and j >= i, so each row is a stride-2 walk over the input.
//
// All functions are pure: they never write their input and keep no state between
// calls, so they can be called concurrently on disjoint outputs.
package transform

import (
	"fmt"
	"strings"

	"github.com/polybasis/leg2cheb/utils"
	"github.com/polybasis/leg2cheb/utils/bignum"
	"github.com/polybasis/leg2cheb/utils/structs"
)

// Direction is the direction of a change of basis.
type Direction int

const (
	// ChebyshevToLegendre converts Chebyshev coefficients to Legendre coefficients.
	ChebyshevToLegendre = Direction(0)
	// LegendreToChebyshev converts Legendre coefficients to Chebyshev coefficients.
	LegendreToChebyshev = Direction(1)
)

func (d Direction) String() string {
	switch d {
	case ChebyshevToLegendre:
		return "cheb2leg"
	case LegendreToChebyshev:
		return "leg2cheb"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection returns the Direction named by s, which must be
// either "cheb2leg" or "leg2cheb" (case insensitive).
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "cheb2leg":
		return ChebyshevToLegendre, nil
	case "leg2cheb":
		return LegendreToChebyshev, nil
	default:
		return 0, fmt.Errorf("cannot ParseDirection: %q: %w", s, ErrUnknownDirection)
	}
}

// Inverse returns the opposite direction.
func (d Direction) Inverse() Direction {
	if d == ChebyshevToLegendre {
		return LegendreToChebyshev
	}
	return ChebyshevToLegendre
}

// Source returns the basis of the input coefficients.
func (d Direction) Source() bignum.Basis {
	if d == ChebyshevToLegendre {
		return bignum.Chebyshev
	}
	return bignum.Legendre
}

// Target returns the basis of the output coefficients.
func (d Direction) Target() bignum.Basis {
	return d.Inverse().Source()
}

// Convert returns a newly allocated slice with the coefficients x converted along d.
func Convert(d Direction, x []float64) (c []float64, err error) {
	switch d {
	case ChebyshevToLegendre:
		return Cheb2LegNew(x), nil
	case LegendreToChebyshev:
		return Leg2ChebNew(x), nil
	default:
		return nil, fmt.Errorf("cannot Convert: %s: %w", d, ErrUnknownDirection)
	}
}

// ConvertPolynomial returns the polynomial p expressed in the other basis of the
// Chebyshev/Legendre pair. The coefficients are converted in float64 precision and
// the interval of p is kept. Polynomials in the monomial basis are not supported.
func ConvertPolynomial(p bignum.Polynomial) (q bignum.Polynomial, err error) {

	var d Direction
	switch p.Basis {
	case bignum.Chebyshev:
		d = ChebyshevToLegendre
	case bignum.Legendre:
		d = LegendreToChebyshev
	default:
		return q, fmt.Errorf("cannot ConvertPolynomial: basis %d: %w", p.Basis, ErrUnsupportedBasis)
	}

	var c []float64
	if c, err = Convert(d, p.Float64s()); err != nil {
		return q, fmt.Errorf("cannot ConvertPolynomial: %w", err)
	}

	return bignum.NewPolynomial(d.Target(), c, &p.Interval), nil
}

// scratch holds the temporary outputs used when the output aliases the input.
var scratch = structs.NewSyncPool(func() *[]float64 {
	buf := []float64{}
	return &buf
})

// apply evaluates kernel(x, c), going through a scratch buffer if c and x overlap.
func apply(kernel func(x, c []float64), x, c []float64) {

	if len(x) != len(c) {
		panic(fmt.Errorf("invalid output: len(c)=%d != len(x)=%d", len(c), len(x)))
	}

	if !utils.Overlap1D(x, c) {
		kernel(x, c)
		return
	}

	buf := scratch.Get()
	defer scratch.Put(buf)

	if cap(*buf) < len(x) {
		*buf = make([]float64, len(x))
	}

	tmp := (*buf)[:len(x)]
	kernel(x, tmp)
	copy(c, tmp)
}

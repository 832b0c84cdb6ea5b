package bignum

import (
	"fmt"
	"math/big"
)

// Polynomial is a real polynomial with arbitrary precision coefficients,
// expressed in one of the supported bases over an interval.
type Polynomial struct {
	MetaData
	Coeffs []*big.Float
}

// NewPolynomial creates a new polynomial from the input parameters:
// basis: either `Monomial`, `Chebyshev` or `Legendre`
// coeffs: []float64 or []*big.Float
// interval: [2]float64{a, b}, *Interval or nil for [-1, 1]
//
// The precision of the polynomial is the one of the interval, or 53 bits
// if the interval is given as [2]float64 or nil.
func NewPolynomial(basis Basis, coeffs interface{}, interval interface{}) Polynomial {

	var inter Interval

	switch interval := interval.(type) {
	case nil:
		inter = NewInterval(-1, 1, 0, 53)
	case [2]float64:
		inter = NewInterval(interval[0], interval[1], 0, 53)
	case *Interval:
		inter.Nodes = interval.Nodes
		inter.A.Set(&interval.A)
		inter.B.Set(&interval.B)
	default:
		panic(fmt.Errorf("invalid interval.(type): must be [2]float64, *Interval or nil but is %T", interval))
	}

	prec := inter.Prec()

	var coefficients []*big.Float

	switch coeffs := coeffs.(type) {
	case []float64:
		coefficients = make([]*big.Float, len(coeffs))
		for i, c := range coeffs {
			coefficients[i] = NewFloat(c, prec)
		}
	case []*big.Float:
		coefficients = make([]*big.Float, len(coeffs))
		for i, c := range coeffs {
			if c == nil {
				coefficients[i] = NewFloat(nil, prec)
			} else {
				coefficients[i] = NewFloat(c, prec)
			}
		}
	default:
		panic(fmt.Errorf("invalid coeffs.(type): must be []float64 or []*big.Float but is %T", coeffs))
	}

	isEven, isOdd := parity(coefficients)

	return Polynomial{
		MetaData: MetaData{
			Basis:    basis,
			Interval: inter,
			IsOdd:    isOdd,
			IsEven:   isEven,
		},
		Coeffs: coefficients,
	}
}

// parity reports whether only even (resp. odd) indexed coefficients are non-zero.
// All three bases satisfy B_i(-x) = (-1)^i B_i(x), so this is the parity of the polynomial
// whenever its interval is symmetric around zero.
func parity(coeffs []*big.Float) (isEven, isOdd bool) {
	isEven, isOdd = true, true
	for i, c := range coeffs {
		if c.Sign() != 0 {
			if i&1 == 0 {
				isOdd = false
			} else {
				isEven = false
			}
		}
	}
	return
}

// Clone returns a deep copy of the polynomial.
func (p Polynomial) Clone() Polynomial {
	Coeffs := make([]*big.Float, len(p.Coeffs))
	for i := range Coeffs {
		if p.Coeffs[i] != nil {
			Coeffs[i] = new(big.Float).Set(p.Coeffs[i])
		}
	}

	var inter Interval
	inter.Nodes = p.Interval.Nodes
	inter.A.Set(&p.Interval.A)
	inter.B.Set(&p.Interval.B)

	return Polynomial{
		MetaData: MetaData{
			Basis:    p.Basis,
			Interval: inter,
			IsOdd:    p.IsOdd,
			IsEven:   p.IsEven,
		},
		Coeffs: Coeffs,
	}
}

// Degree returns the degree bound of the polynomial, i.e. len(p.Coeffs) - 1.
func (p Polynomial) Degree() int {
	return len(p.Coeffs) - 1
}

// Float64s returns the coefficients of the polynomial rounded to float64.
func (p Polynomial) Float64s() (coeffs []float64) {
	coeffs = make([]float64, len(p.Coeffs))
	for i, c := range p.Coeffs {
		coeffs[i], _ = c.Float64()
	}
	return
}

// Evaluate evaluates the polynomial on x.
// x.(type) must be either float64 or *big.Float.
func (p Polynomial) Evaluate(x interface{}) (y *big.Float) {

	var xf *big.Float
	switch x := x.(type) {
	case float64:
		xf = NewFloat(x, p.Interval.Prec())
	case *big.Float:
		xf = x
	default:
		panic(fmt.Errorf("invalid x.(type): must be float64 or *big.Float but is %T", x))
	}

	switch p.Basis {
	case Monomial:
		return MonomialEval(xf, p.Coeffs)
	case Chebyshev:
		return ChebyshevEval(xf, p.Coeffs, p.Interval)
	case Legendre:
		return LegendreEval(xf, p.Coeffs, p.Interval)
	default:
		panic(fmt.Errorf("invalid basis: %d", p.Basis))
	}
}

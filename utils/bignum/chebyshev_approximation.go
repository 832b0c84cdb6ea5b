package bignum

import (
	"fmt"
	"math/big"
)

// ChebyshevApproximation computes the Chebyshev interpolant of degree interval.Nodes of the
// input function on the interval [A, B], sampled at the interval.Nodes+1 Chebyshev nodes.
// f.(type) can be either :
//   - func(float64)float64
//   - func(*big.Float)*big.Float
//
// The reference precision is taken from the values stored in the Interval struct.
func ChebyshevApproximation(f interface{}, interval Interval) (pol Polynomial) {

	var fBig func(*big.Float) *big.Float

	switch f := f.(type) {
	case func(x float64) (y float64):
		fBig = func(x *big.Float) (y *big.Float) {
			xf64, _ := x.Float64()
			return new(big.Float).SetFloat64(f(xf64))
		}
	case func(x *big.Float) (y *big.Float):
		fBig = f
	default:
		panic(fmt.Errorf("invalid f.(type): must be func(float64)float64 or func(*big.Float)*big.Float but is %T", f))
	}

	nodes := chebyshevNodes(interval.Nodes+1, interval)

	fi := make([]*big.Float, len(nodes))

	x := new(big.Float).SetPrec(interval.Prec())

	for i := range nodes {
		x.Set(nodes[i])
		fi[i] = fBig(x)
	}

	return NewPolynomial(Chebyshev, chebyCoeffs(nodes, fi, interval), &interval)
}

func chebyshevNodes(n int, interval Interval) (nodes []*big.Float) {

	prec := interval.Prec()

	nodes = make([]*big.Float, n)

	half := new(big.Float).SetPrec(prec).SetFloat64(0.5)

	x := new(big.Float).SetPrec(prec).Add(&interval.A, &interval.B)
	x.Mul(x, half)
	y := new(big.Float).SetPrec(prec).Sub(&interval.B, &interval.A)
	y.Mul(y, half)

	PiOverN := Pi(prec)
	PiOverN.Quo(PiOverN, new(big.Float).SetInt64(int64(n)))

	for k := 1; k < n+1; k++ {
		up := new(big.Float).SetPrec(prec).SetFloat64(float64(k) - 0.5)
		up.Mul(up, PiOverN)
		up = Cos(up)
		up.Mul(up, y)
		up.Add(up, x)
		nodes[n-k] = up
	}

	return
}

func chebyCoeffs(nodes []*big.Float, fi []*big.Float, interval Interval) (coeffs []*big.Float) {

	prec := interval.Prec()

	n := len(nodes)

	coeffs = make([]*big.Float, n)
	for i := range coeffs {
		coeffs[i] = new(big.Float).SetPrec(prec)
	}

	u := new(big.Float).SetPrec(prec)

	tmp := new(big.Float).SetPrec(prec)

	two := new(big.Float).SetPrec(prec).SetInt64(2)

	minusab := new(big.Float).Set(&interval.A)
	minusab.Neg(minusab)
	minusab.Sub(minusab, &interval.B)

	bminusa := new(big.Float).Set(&interval.B)
	bminusa.Sub(bminusa, &interval.A)

	Tnext := new(big.Float).SetPrec(prec)

	for i := 0; i < n; i++ {

		u.Mul(nodes[i], two)
		u.Add(u, minusab)
		u.Quo(u, bminusa)

		Tprev := new(big.Float).SetPrec(prec)
		Tprev.SetFloat64(1)

		T := new(big.Float).Set(u)

		for j := 0; j < n; j++ {

			tmp.Mul(fi[i], Tprev)
			coeffs[j].Add(coeffs[j], tmp)

			Tnext.Mul(u, T)
			Tnext.Mul(Tnext, two)
			Tnext.Sub(Tnext, Tprev)

			Tprev.Set(T)
			T.Set(Tnext)
		}
	}

	NHalf := new(big.Float).SetInt64(int64(n))

	coeffs[0].Quo(coeffs[0], NHalf)

	NHalf.Quo(NHalf, two)

	for i := 1; i < n; i++ {
		coeffs[i].Quo(coeffs[i], NHalf)
	}

	return
}

package bignum

import (
	"math/big"
)

// MonomialEval evaluates y = sum x^i * poly[i].
func MonomialEval(x *big.Float, poly []*big.Float) (y *big.Float) {
	y = new(big.Float).SetPrec(x.Prec())
	for i := len(poly) - 1; i >= 0; i-- {
		y.Mul(y, x)
		y.Add(y, poly[i])
	}
	return
}

// ChebyshevEval evaluates y = sum Ti(x) * poly[i], where T0(x) = 1, T1(x) = (2x-a-b)/(b-a) and T{i+j}(x) = 2TiTj(x)- T|i-j|(x).
func ChebyshevEval(x *big.Float, poly []*big.Float, inter Interval) (y *big.Float) {

	precision := x.Prec()

	y = new(big.Float).SetPrec(precision)

	if len(poly) == 0 {
		return
	}

	two := NewFloat(2, precision)
	tmp := new(big.Float).SetPrec(precision)
	var T, Tprev, Tnext = new(big.Float).SetPrec(precision), new(big.Float).SetPrec(precision), new(big.Float).SetPrec(precision)

	u := inter.normalize(x)

	Tprev.SetFloat64(1)
	T.Set(u)
	y.Set(poly[0])

	for i := 1; i < len(poly); i++ {
		y.Add(y, tmp.Mul(T, poly[i]))
		Tnext.Mul(two, u)
		Tnext.Mul(Tnext, T)
		Tnext.Sub(Tnext, Tprev)
		Tprev.Set(T)
		T.Set(Tnext)
	}

	return
}

// LegendreEval evaluates y = sum Pi(x) * poly[i], where P0(x) = 1, P1(x) = (2x-a-b)/(b-a)
// and (n+1)P{n+1}(x) = (2n+1)xPn(x) - nP{n-1}(x).
func LegendreEval(x *big.Float, poly []*big.Float, inter Interval) (y *big.Float) {

	precision := x.Prec()

	y = new(big.Float).SetPrec(precision)

	if len(poly) == 0 {
		return
	}

	tmp := new(big.Float).SetPrec(precision)
	n := new(big.Float).SetPrec(precision)
	var P, Pprev, Pnext = new(big.Float).SetPrec(precision), new(big.Float).SetPrec(precision), new(big.Float).SetPrec(precision)

	u := inter.normalize(x)

	Pprev.SetFloat64(1)
	P.Set(u)
	y.Set(poly[0])

	for i := 1; i < len(poly); i++ {
		y.Add(y, tmp.Mul(P, poly[i]))

		// Pnext = ((2i+1) * u * P - i * Pprev) / (i+1)
		n.SetInt64(int64(2*i + 1))
		Pnext.Mul(n, u)
		Pnext.Mul(Pnext, P)
		n.SetInt64(int64(i))
		Pnext.Sub(Pnext, tmp.Mul(n, Pprev))
		n.SetInt64(int64(i + 1))
		Pnext.Quo(Pnext, n)

		Pprev.Set(P)
		P.Set(Pnext)
	}

	return
}

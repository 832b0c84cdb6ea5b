package bignum

import (
	"math/big"
)

// Interval is a struct storing information about interval
// for a polynomial approximation.
// Nodes: the number of points used for the interpolation.
// [A, B]: the domain of the interpolation.
type Interval struct {
	Nodes int
	A, B  big.Float
}

// NewInterval returns an Interval [a, b] with the given number of nodes
// and prec bits of precision.
func NewInterval(a, b float64, nodes int, prec uint) Interval {
	var inter Interval
	inter.Nodes = nodes
	inter.A.SetPrec(prec).SetFloat64(a)
	inter.B.SetPrec(prec).SetFloat64(b)
	return inter
}

// Prec returns the precision of the interval bounds.
func (inter *Interval) Prec() uint {
	return inter.A.Prec()
}

// change of variable u = (2*x - (a+b))/(b-a) mapping [a, b] onto [-1, 1].
func (inter *Interval) normalize(x *big.Float) (u *big.Float) {
	u = new(big.Float).SetPrec(x.Prec()).Set(x)
	u.Add(u, u)
	u.Sub(u, &inter.A)
	u.Sub(u, &inter.B)
	tmp := new(big.Float).SetPrec(x.Prec()).Set(&inter.B)
	tmp.Sub(tmp, &inter.A)
	return u.Quo(u, tmp)
}

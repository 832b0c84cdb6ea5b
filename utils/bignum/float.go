package bignum

import (
	"fmt"
	"math/big"

	"github.com/ALTree/bigfloat"
)

// piDigits holds enough decimal digits of Pi for 1024 bits of precision.
const piDigits = "3.14159265358979323846264338327950288419716939937510582097494459230781640628620899862803482534211706798214808651328230664709384460955058223172535940812848111745028410270193852110555964462294895493038196442881097566593344612847564823378678316527120190914564856692346034861045432664821339360726024914127372458700660631558817"

// Pi returns Pi rounded to prec bits. It is exact to at most 1024 bits.
func Pi(prec uint) *big.Float {
	y, _ := new(big.Float).SetPrec(prec).SetString(piDigits)
	return y
}

// NewFloat returns x as a *big.Float with prec bits of precision.
// x can be nil (zero), an int, int64, uint64, float64, *big.Int or *big.Float.
func NewFloat(x any, prec uint) (y *big.Float) {

	y = new(big.Float).SetPrec(prec)

	switch x := x.(type) {
	case nil:
	case int:
		y.SetInt64(int64(x))
	case int64:
		y.SetInt64(x)
	case uint64:
		y.SetUint64(x)
	case float64:
		y.SetFloat64(x)
	case *big.Int:
		y.SetInt(x)
	case *big.Float:
		y.Set(x)
	default:
		panic(fmt.Errorf("cannot NewFloat: invalid x.(type) %T", x))
	}

	return
}

// Cos returns cos(x) with x.Prec() bits of precision.
//
// The argument is scaled down by 2^-k with k = prec/2, then cos is recovered
// from the doubling formula 1 - cos(2y) = (1 - cos y)(4 - 2(1 - cos y))/2 applied k times.
// See Johansson, B. Tomas, An elementary algorithm to evaluate trigonometric
// functions to high precision, 2018.
func Cos(x *big.Float) *big.Float {

	prec := x.Prec()
	k := prec >> 1

	// s = 2(1 - cos(x/2^k)) ~ (x/2^k)^2
	s := new(big.Float).SetPrec(prec).Set(x)
	s.SetMantExp(s, -int(k)+1)
	s.Mul(s, x)
	s.SetMantExp(s, -int(k)+1)

	four := NewFloat(4, prec)
	tmp := new(big.Float).SetPrec(prec)
	for i := uint(1); i < k; i++ {
		s.Mul(s, tmp.Sub(four, s))
	}

	// cos(x) = 1 - s/2
	s.SetMantExp(s, -1)
	return s.Sub(NewFloat(1, prec), s)
}

// Sin returns sin(x) = cos(x - Pi/2) with x.Prec() bits of precision.
func Sin(x *big.Float) *big.Float {
	halfPi := Pi(x.Prec())
	halfPi.SetMantExp(halfPi, -1)
	return Cos(new(big.Float).SetPrec(x.Prec()).Sub(x, halfPi))
}

// Log returns ln(x) with x.Prec() bits of precision.
func Log(x *big.Float) *big.Float {
	return bigfloat.Log(x)
}

// Exp returns exp(x) with x.Prec() bits of precision.
func Exp(x *big.Float) *big.Float {
	return bigfloat.Exp(x)
}

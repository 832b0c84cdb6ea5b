package bignum

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFloat(t *testing.T) {
	testFunc1("Sin", 1.4142135623730951, math.Sin, Sin, 1e-15, t)
	testFunc1("Cos", 1.4142135623730951, math.Cos, Cos, 1e-15, t)
	testFunc1("Log", 1.4142135623730951, math.Log, Log, 1e-15, t)
	testFunc1("Exp", 1.4142135623730951, math.Exp, Exp, 1e-15, t)

	t.Run("Pi", func(t *testing.T) {
		pi, _ := Pi(53).Float64()
		require.Equal(t, math.Pi, pi)
	})

	t.Run("NewFloat", func(t *testing.T) {
		require.Equal(t, uint(128), NewFloat(3, 128).Prec())
		v, _ := NewFloat(big.NewInt(7), 64).Int64()
		require.Equal(t, int64(7), v)
		require.Panics(t, func() { NewFloat("7", 64) })
	})
}

func testFunc1(name string, x float64, f func(x float64) (y float64), g func(x *big.Float) (y *big.Float), delta float64, t *testing.T) {
	t.Run(name, func(t *testing.T) {
		y, _ := g(NewFloat(x, 53)).Float64()
		require.InDelta(t, f(x), y, delta)
	})
}

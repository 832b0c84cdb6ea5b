package sampling_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/polybasis/leg2cheb/utils/sampling"
)

func Test_PRNG(t *testing.T) {

	key := []byte{0x49, 0x0a, 0x42, 0x3d, 0x97, 0x9d, 0xc1, 0x07, 0xa1, 0xd7, 0xe9, 0x7b, 0x3b, 0xce, 0xa1, 0xdb,
		0x42, 0xf3, 0xa6, 0xd5, 0x75, 0xd2, 0x0c, 0x92, 0xb7, 0x35, 0xce, 0x0c, 0xee, 0x09, 0x7c, 0x98}

	t.Run("PRNG", func(t *testing.T) {

		Ha, _ := sampling.NewKeyedPRNG(key)
		Hb, _ := sampling.NewKeyedPRNG(key)

		sum0 := make([]byte, 512)
		sum1 := make([]byte, 512)

		for i := 0; i < 128; i++ {
			Hb.Read(sum1)
		}

		Hb.Reset()

		Ha.Read(sum0)
		Hb.Read(sum1)

		require.Equal(t, sum0, sum1)
		require.Equal(t, key, Ha.Key())
	})

	t.Run("RandFloat64Slice", func(t *testing.T) {

		Ha, _ := sampling.NewKeyedPRNG(key)
		Hb, _ := sampling.NewKeyedPRNG(key)

		a, err := sampling.RandFloat64Slice(Ha, -1, 1, 257)
		require.NoError(t, err)
		b, err := sampling.RandFloat64Slice(Hb, -1, 1, 257)
		require.NoError(t, err)

		require.Equal(t, a, b)
		for _, v := range a {
			require.GreaterOrEqual(t, v, -1.0)
			require.LessOrEqual(t, v, 1.0)
		}

		empty, err := sampling.RandFloat64Slice(Ha, -1, 1, 0)
		require.NoError(t, err)
		require.Len(t, empty, 0)
	})

	t.Run("NewSeededPRNG", func(t *testing.T) {
		Ha, err := sampling.NewSeededPRNG(42)
		require.NoError(t, err)
		Hb, err := sampling.NewSeededPRNG(42)
		require.NoError(t, err)
		Hc, err := sampling.NewSeededPRNG(43)
		require.NoError(t, err)

		a, _ := sampling.RandFloat64Slice(Ha, -1, 1, 8)
		b, _ := sampling.RandFloat64Slice(Hb, -1, 1, 8)
		c, _ := sampling.RandFloat64Slice(Hc, -1, 1, 8)

		require.Equal(t, a, b)
		require.NotEqual(t, a, c)
	})

	t.Run("RandFloat64", func(t *testing.T) {
		v, err := sampling.RandFloat64(sampling.NewPRNG(), 2, 3)
		require.NoError(t, err)
		require.GreaterOrEqual(t, v, 2.0)
		require.LessOrEqual(t, v, 3.0)
	})

	t.Run("RandUint64", func(t *testing.T) {
		Ha, _ := sampling.NewSeededPRNG(7)
		Hb, _ := sampling.NewSeededPRNG(7)
		a, err := sampling.RandUint64(Ha)
		require.NoError(t, err)
		b, err := sampling.RandUint64(Hb)
		require.NoError(t, err)
		require.Equal(t, a, b)

		_, err = sampling.RandUint64(sampling.NewPRNG())
		require.NoError(t, err)
	})

	t.Run("RandFloat64Slice/InvalidLength", func(t *testing.T) {
		Ha, _ := sampling.NewKeyedPRNG(key)
		for _, n := range []int{-1, sampling.MaxSliceLength + 1, math.MaxInt} {
			_, err := sampling.RandFloat64Slice(Ha, -1, 1, n)
			require.ErrorIs(t, err, sampling.ErrInvalidLength)
		}
	})
}

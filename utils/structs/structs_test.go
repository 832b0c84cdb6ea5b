package structs

import (
	"bytes"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/polybasis/leg2cheb/utils/buffer"
)

func TestStructs(t *testing.T) {
	t.Run("Vector/Uint64/Serialization&Equatable", func(t *testing.T) {
		testVector[uint64](t)
	})

	t.Run("Vector/Int/Serialization&Equatable", func(t *testing.T) {
		testVector[int](t)
	})

	t.Run("Vector/Float64/Serialization&Equatable", func(t *testing.T) {
		testVector[float64](t)
	})

	t.Run("Vector/Float64/NonFinite", func(t *testing.T) {
		v := Vector[float64]{math.NaN(), math.Inf(-1), math.Copysign(0, -1)}
		data, err := v.MarshalBinary()
		require.NoError(t, err)
		vNew := Vector[float64]{}
		require.NoError(t, vNew.UnmarshalBinary(data))
		require.True(t, v.Equal(vNew))
	})

	t.Run("Vector/Empty", func(t *testing.T) {
		v := Vector[float64]{}
		data, err := v.MarshalBinary()
		require.NoError(t, err)
		require.Len(t, data, 8)
		vNew := Vector[float64]{1, 2}
		require.NoError(t, vNew.UnmarshalBinary(data))
		require.Len(t, vNew, 0)
	})

	t.Run("Vector/ReadFromLimit", func(t *testing.T) {
		v := Vector[float64](make([]float64, 16))
		data, err := v.MarshalBinary()
		require.NoError(t, err)

		vNew := Vector[float64]{}
		_, err = vNew.ReadFromLimit(buffer.NewBuffer(data), 15)
		require.ErrorIs(t, err, ErrTooLarge)

		_, err = vNew.ReadFromLimit(bytes.NewReader(data), 16)
		require.NoError(t, err)
		require.True(t, v.Equal(vNew))
	})

	t.Run("Vector/Digest", func(t *testing.T) {
		a := Vector[float64]{1, 2, 3}
		b := a.CopyNew()
		require.Equal(t, a.Digest(), b.Digest())
		b[2] = math.Nextafter(b[2], 4)
		require.NotEqual(t, a.Digest(), b.Digest())
	})

	t.Run("SyncPool", func(t *testing.T) {
		pool := NewSyncPool(func() *[]float64 {
			buf := make([]float64, 4)
			return &buf
		})
		buf := pool.Get()
		require.Len(t, *buf, 4)
		pool.Put(buf)
	})
}

func testVector[T Word64](t *testing.T) {
	v := Vector[T](make([]T, 64))
	for i := range v {
		v[i] = T(i)
	}
	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, v.BinarySize())
	vNew := Vector[T]{}
	require.NoError(t, vNew.UnmarshalBinary(data))
	require.True(t, cmp.Equal(v, vNew)) // also tests Equatable
}

package serialization

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestArrayRoundTrip verifies typed construction and decoding.
func TestArrayRoundTrip(t *testing.T) {
	f32 := []float32{1.5, -2.25, 0, 3.75}
	a := FromFloat32([]int{2, 2}, f32)
	assert.Equal(t, Float32, a.DType())
	assert.Equal(t, []int{2, 2}, a.Shape())
	assert.Equal(t, 4, a.NumElements())

	got, err := a.Float32s()
	require.NoError(t, err)
	assert.Equal(t, f32, got)

	// Decoding as the wrong dtype fails.
	_, err = a.Float64s()
	assert.ErrorIs(t, err, ErrDTypeMismatch)

	f64 := []float64{0.001, -9.5}
	got64, err := FromFloat64([]int{2}, f64).Float64s()
	require.NoError(t, err)
	assert.Equal(t, f64, got64)

	i64 := []int64{-5, 0, 1 << 40}
	got64i, err := FromInt64([]int{3}, i64).Int64s()
	require.NoError(t, err)
	assert.Equal(t, i64, got64i)
}

// TestNewArrayShapeCheck verifies the byte-length invariant.
func TestNewArrayShapeCheck(t *testing.T) {
	_, err := NewArray(Float32, []int{2, 2}, make([]byte, 16))
	require.NoError(t, err)

	_, err = NewArray(Float32, []int{2, 2}, make([]byte, 12))
	assert.ErrorIs(t, err, ErrShapeMismatch)

	_, err = NewArray(Float32, []int{-1, 4}, nil)
	assert.ErrorIs(t, err, ErrShapeMismatch)
}

// TestDTypeSizes verifies element sizes used for offset arithmetic.
func TestDTypeSizes(t *testing.T) {
	sizes := map[DType]int{
		Float32: 4, Float64: 8, Int32: 4, Int64: 8, Uint8: 1, Bool: 1,
	}
	for dt, want := range sizes {
		assert.Equal(t, want, dt.Size(), "dtype %s", dt)
	}
}

// TestDTypeStrings verifies dtype names round-trip through the header
// representation.
func TestDTypeStrings(t *testing.T) {
	for _, dt := range []DType{Float32, Float64, Int32, Int64, Uint8, Bool} {
		back, ok := dtypeFromString(dt.String())
		require.True(t, ok, "dtype %s", dt)
		assert.Equal(t, dt, back)
	}
	_, ok := dtypeFromString("complex128")
	assert.False(t, ok)
}

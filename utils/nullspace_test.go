package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNullSpace(t *testing.T) {
	{
		// Kernel of the 1D difference operator is the constant vector
		A := NewMatrix(2, 3, []float64{
			1, -1, 0,
			0, 1, -1,
		})
		N, nullity := NullSpace(A, 0)
		assert.Equal(t, 1, nullity)
		nr, nc := N.Dims()
		assert.Equal(t, 3, nr)
		assert.Equal(t, 1, nc)
		// A*n = 0 and unit norm
		var norm float64
		for i := 0; i < 3; i++ {
			norm += N.At(i, 0) * N.At(i, 0)
		}
		assert.True(t, near(norm, 1))
		for i := 0; i < 2; i++ {
			var dot float64
			for j := 0; j < 3; j++ {
				dot += A.At(i, j) * N.At(j, 0)
			}
			assert.True(t, nearZero(dot))
		}
		assert.Equal(t, 2, Rank(A, 0))
	}
	{
		// Full column rank leaves a trivial kernel
		A := NewMatrix(2, 2, []float64{
			2, 0,
			0, 3,
		})
		N, nullity := NullSpace(A, 0)
		assert.Equal(t, 0, nullity)
		assert.True(t, N.IsEmpty())
	}
}

func TestMatrixStackRows(t *testing.T) {
	A := NewMatrix(1, 2, []float64{1, 2})
	B := NewMatrix(2, 2, []float64{3, 4, 5, 6})
	R := A.StackRows(B)
	nr, nc := R.Dims()
	assert.Equal(t, 3, nr)
	assert.Equal(t, 2, nc)
	assert.Equal(t, 1., R.At(0, 0))
	assert.Equal(t, 5., R.At(2, 0))

	var E Matrix
	assert.Equal(t, B, E.StackRows(B))
	assert.Equal(t, B, B.StackRows(E))

	assert.Panics(t, func() { A.StackRows(NewMatrix(1, 3)) })
}

func TestLinspace(t *testing.T) {
	V := NewLinspace(0, 1, 6)
	assert.Equal(t, 6, V.Len())
	assert.Equal(t, 0., V.AtVec(0))
	assert.Equal(t, 1., V.AtVec(5))
	assert.True(t, near(V.AtVec(3), 0.6))
	assert.Equal(t, 0., V.Min())
	assert.Equal(t, 1., V.Max())
}

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Abs(b)+1.e-12 {
		l = true
	}
	return
}

func nearZero(a float64) (l bool) {
	if math.Abs(a) < 1.e-10 {
		l = true
	}
	return
}

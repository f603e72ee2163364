// Package matrix_test covers the matrix-vector kernel, its numeric width and
// the vector comparison used by verification.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/freivalds/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMatVecSmall checks a hand-computed product.
func TestMatVecSmall(t *testing.T) {
	m := MustRows(t, [][]int64{
		{1, 2, 3},
		{4, 5, 6},
		{7, 8, 9},
	})

	got, err := matrix.MatVec(m, matrix.Vector{1, 0, 1})
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{4, 10, 16}, got)
}

// TestMatVecFallbackMatchesFastPath runs the same product through *Dense and
// through a wrapper that hides the concrete type.
func TestMatVecFallbackMatchesFastPath(t *testing.T) {
	m := RandomDense(t, 17, 1000, 7)
	v := RandomBinary(17, 8)

	fast, err := matrix.MatVec(m, v)
	require.NoError(t, err)
	slow, err := matrix.MatVec(hide{m}, v)
	require.NoError(t, err)

	require.Equal(t, fast, slow)
}

// TestMatVecAgainstGonum compares against gonum on random integer fixtures.
func TestMatVecAgainstGonum(t *testing.T) {
	for _, n := range []int{1, 2, 5, 16, 33} {
		m := RandomDense(t, n, 10_000, int64(n))
		v := RandomBinary(n, int64(100+n))

		got, err := matrix.MatVec(m, v)
		require.NoError(t, err)
		assert.Equal(t, gonumMatVec(t, m, v), got, "n=%d", n)
	}
}

// TestMatVecIdempotent asserts repeated calls return identical output and
// leave the inputs untouched.
func TestMatVecIdempotent(t *testing.T) {
	m := RandomDense(t, 8, 50, 3)
	before := m.Clone()
	v := RandomBinary(8, 4)
	vCopy := append(matrix.Vector(nil), v...)

	first, err := matrix.MatVec(m, v)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := matrix.MatVec(m, v)
		require.NoError(t, err)
		require.Equal(t, first, again)
	}

	require.Equal(t, before.String(), m.String())
	require.Equal(t, vCopy, v)
}

// TestMatVecOverflowWraps pins the int64 wraparound boundary.
func TestMatVecOverflowWraps(t *testing.T) {
	m := MustRows(t, [][]int64{
		{math.MaxInt64, 1},
		{math.MinInt64, -1},
	})

	got, err := matrix.MatVec(m, matrix.Vector{1, 1})
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{math.MinInt64, math.MaxInt64}, got)

	// 2^62 * 4 == 2^64 ≡ 0 (mod 2^64).
	big := MustRows(t, [][]int64{{1 << 62, 0}, {0, 1 << 62}})
	got, err = matrix.MatVec(big, matrix.Vector{4, 2})
	require.NoError(t, err)
	require.Equal(t, matrix.Vector{0, math.MinInt64}, got)
}

// TestMatVecErrors covers nil and length guards.
func TestMatVecErrors(t *testing.T) {
	m := MustRows(t, [][]int64{{1, 2}, {3, 4}})

	_, err := matrix.MatVec(nil, matrix.Vector{1, 1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	var typedNil *matrix.Dense
	_, err = matrix.MatVec(typedNil, matrix.Vector{1, 1})
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(m, nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = matrix.MatVec(m, matrix.Vector{1, 1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestMatVecInto checks the allocation-free variant and its dst guard.
func TestMatVecInto(t *testing.T) {
	m := MustRows(t, [][]int64{{2, 0}, {1, 3}})
	dst := make(matrix.Vector, 2)

	require.NoError(t, matrix.MatVecInto(dst, m, matrix.Vector{1, 1}))
	require.Equal(t, matrix.Vector{2, 4}, dst)

	// Stale contents are overwritten, not accumulated.
	require.NoError(t, matrix.MatVecInto(dst, m, matrix.Vector{0, 1}))
	require.Equal(t, matrix.Vector{0, 3}, dst)

	err := matrix.MatVecInto(make(matrix.Vector, 3), m, matrix.Vector{1, 1})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
}

// TestVecEqual covers equal, unequal and length-mismatched vectors.
func TestVecEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b matrix.Vector
		want bool
	}{
		{"equal", matrix.Vector{1, 2}, matrix.Vector{1, 2}, true},
		{"differ", matrix.Vector{1, 2}, matrix.Vector{1, 3}, false},
		{"length", matrix.Vector{1, 2}, matrix.Vector{1, 2, 0}, false},
		{"both empty", matrix.Vector{}, nil, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, matrix.VecEqual(tc.a, tc.b))
		})
	}
}

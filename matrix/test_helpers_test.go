// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic fixtures for the dense kernels.
//   • Offer a gonum-backed oracle for products of small integer matrices.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/freivalds/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// hide wraps any Matrix to hide its concrete type from type assertions,
// forcing the At-based fallback path in kernels.
type hide struct{ matrix.Matrix }

// MustRows builds a *Dense from row literals or fails the test.
func MustRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// RandomDense fills an n×n matrix with values in [-bound, bound] from a seeded stream.
func RandomDense(t testing.TB, n int, bound int64, seed int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n)
	require.NoError(t, err)
	rng := rand.New(rand.NewSource(seed))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, rng.Int63n(2*bound+1)-bound))
		}
	}

	return m
}

// RandomBinary returns a length-n vector of 0/1 entries from a seeded stream.
func RandomBinary(n int, seed int64) matrix.Vector {
	rng := rand.New(rand.NewSource(seed))
	v := make(matrix.Vector, n)
	for i := range v {
		v[i] = rng.Int63n(2)
	}

	return v
}

// gonumMatVec computes m*v in float64 via gonum. Exact while |entries| stay
// well below 2^53 / n.
func gonumMatVec(t testing.TB, m *matrix.Dense, v matrix.Vector) matrix.Vector {
	t.Helper()
	n := m.Size()
	data := make([]float64, n*n)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			x, err := m.At(i, j)
			require.NoError(t, err)
			data[i*n+j] = float64(x)
		}
	}
	xs := make([]float64, n)
	for i = range v {
		xs[i] = float64(v[i])
	}

	var y mat.VecDense
	y.MulVec(mat.NewDense(n, n, data), mat.NewVecDense(n, xs))

	out := make(matrix.Vector, n)
	for i = 0; i < n; i++ {
		out[i] = int64(y.AtVec(i))
	}

	return out
}

// Package freivalds_test provides fixtures shared across *_test.go files.
package freivalds_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/freivalds/matrix"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

const (
	// seedDet is a fixed base seed for reproducible runs.
	seedDet = int64(42)

	// trialsSpec is the trial count used by the reference scenarios.
	trialsSpec = 20
)

// mustRows builds a *matrix.Dense from row literals or fails the test.
func mustRows(t testing.TB, rows [][]int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	return m
}

// identityCase returns I, B, B: a correct product.
func identityCase(t testing.TB) (a, b, c *matrix.Dense) {
	t.Helper()
	a = mustRows(t, [][]int64{{1, 0}, {0, 1}})
	b = mustRows(t, [][]int64{{2, 3}, {4, 5}})
	c = mustRows(t, [][]int64{{2, 3}, {4, 5}})

	return a, b, c
}

// mismatchCase returns A, B, C with A·B = [[2,1],[1,1]] ≠ C = I.
// A·B − C = [[1,1],[1,0]] is hidden only by α = 0, so a single trial
// misses with probability exactly 1/4.
func mismatchCase(t testing.TB) (a, b, c *matrix.Dense) {
	t.Helper()
	a = mustRows(t, [][]int64{{1, 1}, {0, 1}})
	b = mustRows(t, [][]int64{{1, 0}, {1, 1}})
	c = mustRows(t, [][]int64{{1, 0}, {0, 1}})

	return a, b, c
}

// randomDense returns an n×n matrix with entries in [-bound, bound].
func randomDense(t testing.TB, rng *rand.Rand, n int, bound int64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(n)
	require.NoError(t, err)
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			require.NoError(t, m.Set(i, j, rng.Int63n(2*bound+1)-bound))
		}
	}

	return m
}

// exactProduct computes A·B with gonum. Entries must stay small enough for
// float64 to be exact.
func exactProduct(t testing.TB, a, b *matrix.Dense) *matrix.Dense {
	t.Helper()
	n := a.Size()
	toGonum := func(m *matrix.Dense) *mat.Dense {
		data := make([]float64, n*n)
		for i := 0; i < n; i++ {
			row, err := m.Row(i)
			require.NoError(t, err)
			for j, x := range row {
				data[i*n+j] = float64(x)
			}
		}
		return mat.NewDense(n, n, data)
	}

	var p mat.Dense
	p.Mul(toGonum(a), toGonum(b))

	c, err := matrix.NewDense(n)
	require.NoError(t, err)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			require.NoError(t, c.Set(i, j, int64(p.At(i, j))))
		}
	}

	return c
}

// productCase returns random A, B and their exact product C.
func productCase(t testing.TB, n int, seed int64) (a, b, c *matrix.Dense) {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	a = randomDense(t, rng, n, 100)
	b = randomDense(t, rng, n, 100)

	return a, b, exactProduct(t, a, b)
}

// SPDX-License-Identifier: MIT

// Package matrix - matrix-vector kernels used by randomized verification.
//
// Numeric policy:
//   - Entries and accumulators are int64. Go defines signed overflow as
//     two's-complement wraparound, so every kernel computes in Z/2^64.
//     Overflow is never detected or reported.
//
// Determinism:
//   - Fixed i→j loop order; no goroutines; no hidden state.
package matrix

import "fmt"

// Operation tags for error wrapping.
const (
	opMatVec     = "MatVec"
	opMatVecInto = "MatVecInto"
)

// matrixErrorf wraps err with an operation tag, preserving it via %w.
// Call only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MatVec computes r = m * v, where r[i] = Σ_j m[i][j] * v[j].
//
// Contract: m non-nil; v non-nil; len(v) == m.Size().
// Fast-path: *Dense performs one pass per row with flat indexing.
// Overflow: wraps modulo 2^64 (int64 semantics).
// Complexity: Time O(n²), Space O(n) for r.
func MatVec(m Matrix, v Vector) (Vector, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}
	out := make(Vector, m.Size())
	if err := matVecInto(out, m, v); err != nil {
		return nil, matrixErrorf(opMatVec, err)
	}

	return out, nil
}

// MatVecInto computes dst = m * v without allocating.
// dst must have length m.Size() and must not alias v.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch (for v or dst).
func MatVecInto(dst Vector, m Matrix, v Vector) error {
	if err := ValidateNotNil(m); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}
	if err := matVecInto(dst, m, v); err != nil {
		return matrixErrorf(opMatVecInto, err)
	}

	return nil
}

// matVecInto is the shared kernel; m is known non-nil.
func matVecInto(dst Vector, m Matrix, v Vector) error {
	n := m.Size()
	if err := ValidateVecLen(v, n); err != nil {
		return err
	}
	if err := ValidateVecLen(dst, n); err != nil {
		return err
	}

	// Fast-path: *Dense allows flat, row-major dot-products.
	if d, ok := m.(*Dense); ok {
		var i, j, base int
		var acc, x int64
		for i = 0; i < n; i++ {
			acc = ZeroSum
			base = i * n
			row := d.data[base : base+n]
			for j = 0; j < n; j++ {
				x = v[j]
				if x != 0 { // binary vectors are ~half zeros
					acc += row[j] * x
				}
			}
			dst[i] = acc
		}

		return nil
	}

	// Fallback: interface-based dot-products via At.
	var i, j int
	var acc, mv int64
	var err error
	for i = 0; i < n; i++ {
		acc = ZeroSum
		for j = 0; j < n; j++ {
			mv, err = m.At(i, j)
			if err != nil {
				return fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			acc += mv * v[j]
		}
		dst[i] = acc
	}

	return nil
}

// VecEqual reports whether a and b have the same length and identical entries.
// Vectors of unequal length are never equal.
func VecEqual(a, b Vector) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

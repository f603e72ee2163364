// SPDX-License-Identifier: MIT

// Package matrix: domain types shared by the dense kernels.
package matrix

// Vector is a dense column vector of n int64 entries.
// Random binary vectors hold only 0/1; derived vectors use the full int64 range.
type Vector []int64

// Matrix is the read-only view of a square integer matrix consumed by the
// kernels. Verification never mutates its operands, so the interface carries
// no setter.
//
// Complexity: all methods are O(1).
type Matrix interface {
	// Size returns n for an n×n matrix.
	Size() int

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange if i or j is outside [0, n).
	At(i, j int) (int64, error)
}

// ZeroSum is the neutral accumulator for row dot-products.
const ZeroSum int64 = 0

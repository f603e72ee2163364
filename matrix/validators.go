// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single source of truth for nil/shape/length checks.
//  - Keep kernels minimal by delegating guards here.
//
// Determinism & Performance:
//  - All checks are pure, O(1), and allocate nothing.
//
// Note:
//  - Composite validators follow a fixed sequence (NotNil -> Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNil reports whether m is a nil interface or a typed nil *Dense.
func isNil(m Matrix) bool {
	if m == nil {
		return true
	}
	d, ok := m.(*Dense)

	return ok && d == nil
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix for a nil interface and for a typed nil *Dense.
func ValidateNotNil(m Matrix) error {
	if isNil(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures a and b have equal side length.
// Assumes both are non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Size() != b.Size() {
		return validatorErrorf("ValidateSameShape", ErrDimensionMismatch)
	}

	return nil
}

// ValidateVecLen ensures v is non-nil and has exactly n entries.
func ValidateVecLen(v Vector, n int) error {
	if v == nil {
		return validatorErrorf("ValidateVecLen", ErrNilMatrix)
	}
	if len(v) != n {
		return validatorErrorf("ValidateVecLen", ErrDimensionMismatch)
	}

	return nil
}

// ValidateOperands checks the (A, B, C) triple of a claimed product:
// all non-nil, all of the same side length n. It returns n on success.
//
// Errors: ErrNilMatrix, then ErrDimensionMismatch (priority order).
func ValidateOperands(a, b, c Matrix) (int, error) {
	var err error
	for _, m := range [...]Matrix{a, b, c} {
		if err = ValidateNotNil(m); err != nil {
			return 0, validatorErrorf("ValidateOperands", err)
		}
	}
	if err = ValidateSameShape(a, b); err != nil {
		return 0, validatorErrorf("ValidateOperands: A,B", err)
	}
	if err = ValidateSameShape(a, c); err != nil {
		return 0, validatorErrorf("ValidateOperands: A,C", err)
	}
	if a.Size() <= 0 {
		return 0, validatorErrorf("ValidateOperands", ErrInvalidDimensions)
	}

	return a.Size(), nil
}

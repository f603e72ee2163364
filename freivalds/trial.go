package freivalds

import (
	"fmt"

	"github.com/katalvlaran/freivalds/matrix"
)

// evaluator runs Freivalds checks against one fixed (A, B, C) triple.
// It owns four scratch vectors, so a single evaluator must not be shared
// between goroutines; the scheduler gives each worker its own.
type evaluator struct {
	a, b, c matrix.Matrix

	alpha matrix.Vector // random binary vector
	tmp   matrix.Vector // B·α
	beta  matrix.Vector // A·(B·α)
	gamma matrix.Vector // C·α
}

// newEvaluator allocates scratch space for dimension n. Operands must
// already be validated.
func newEvaluator(a, b, c matrix.Matrix, n int) *evaluator {
	return &evaluator{
		a: a, b: b, c: c,
		alpha: make(matrix.Vector, n),
		tmp:   make(matrix.Vector, n),
		beta:  make(matrix.Vector, n),
		gamma: make(matrix.Vector, n),
	}
}

// run executes one trial with a fresh vector from src.
//
// Algorithm:
//  1. α ← random binary vector.
//  2. t ← B·α.
//  3. β ← A·t.
//  4. γ ← C·α.
//  5. pass iff β == γ element-wise.
//
// Cost is three O(n²) products; A·B is never formed.
func (e *evaluator) run(src *VectorSource) (bool, error) {
	src.Fill(e.alpha)
	if err := matrix.MatVecInto(e.tmp, e.b, e.alpha); err != nil {
		return false, fmt.Errorf("B·α: %w", err)
	}
	if err := matrix.MatVecInto(e.beta, e.a, e.tmp); err != nil {
		return false, fmt.Errorf("A·(B·α): %w", err)
	}
	if err := matrix.MatVecInto(e.gamma, e.c, e.alpha); err != nil {
		return false, fmt.Errorf("C·α: %w", err)
	}

	return matrix.VecEqual(e.beta, e.gamma), nil
}

// Trial runs a single Freivalds check of C = A·B using src for the random
// vector. It returns true when the check found no discrepancy.
//
// If A·B = C the result is always true. If A·B ≠ C it is true with
// probability at most 1/2.
//
// A nil src draws from a fresh clock-seeded stream.
//
// Errors: matrix.ErrNilMatrix or matrix.ErrDimensionMismatch for bad operands.
func Trial(a, b, c matrix.Matrix, src *VectorSource) (bool, error) {
	n, err := matrix.ValidateOperands(a, b, c)
	if err != nil {
		return false, fmt.Errorf("freivalds: Trial: %w", err)
	}
	if src == nil {
		src = NewVectorSource(clockSeed())
	}

	return newEvaluator(a, b, c, n).run(src)
}

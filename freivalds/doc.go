// Package freivalds probabilistically verifies a claimed matrix product
// C = A·B without computing A·B.
//
// 🚀 What is Freivalds' check?
//
//	Draw a random binary vector α and compare A·(B·α) with C·α. Each trial
//	costs three O(n²) matrix-vector products instead of one O(n³) product.
//	If A·B = C every trial passes. If A·B ≠ C a single trial passes with
//	probability at most 1/2, so k independent trials miss the discrepancy
//	with probability at most 2^-k.
//
// ✨ Key features:
//   - Trial: one check against a caller-provided VectorSource
//   - Verify / Run: k trials on a bounded worker pool, AND-reduced
//   - per-trial streams derived from a base seed (clock or WithSeed)
//   - optional short-circuit after the first failing trial
//   - per-trial hook (WithOnTrial) and slog run logging (WithLogger)
//
// ⚙️ Usage:
//
//	ok, err := freivalds.Verify(ctx, a, b, c, 20,
//	    freivalds.WithWorkers(4),
//	)
//	if err != nil {
//	    // ErrNoTrials, matrix.ErrDimensionMismatch, ctx.Err(), ...
//	}
//
// Module layout:
//
//	matrix/         Dense, Vector, MatVec, validators
//	freivalds/      VectorSource, Trial, Verify/Run, options
//	input/          "n k A B C" text format
//	cmd/freivalds/  reads input.txt, prints "A * B == C" or "A * B != C"
//
// Zero trials is an error (ErrNoTrials), never a vacuous "equal".
//
// Arithmetic is int64 with wraparound (see package matrix), so the check is
// exact modulo 2^64.
package freivalds

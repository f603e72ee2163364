// Package matrix provides square integer matrices and the matrix-vector
// kernel used by randomized product verification.
//
// The matrix package provides:
//
//   - Dense, an immutable-by-convention n×n row-major int64 matrix with
//     bounds-checked accessors that return errors instead of panicking.
//   - MatVec / MatVecInto, the O(n²) product r = M·v.
//   - VecEqual and a small set of validators (nil, shape, vector length,
//     operand triples) shared by callers.
//
// Numeric width:
//
//	All arithmetic is int64 with wraparound. A product whose true value does
//	not fit in 64 bits is reduced modulo 2^64; no overflow error is raised.
//
// Complexity:
//
//	At/Set/Size run in O(1). MatVec runs in O(n²) time and O(n) space.
package matrix

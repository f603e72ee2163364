// Package input decodes and encodes verification problems in the plain-text
// format consumed by the freivalds command:
//
//	n k
//	A (n rows of n integers)
//	B (n rows of n integers)
//	C (n rows of n integers)
//
// Tokens are whitespace separated; line structure is not significant. The
// dimension and trial count always precede the matrices.
//
// Decoding fails fast: a non-numeric token, a premature end of input, a
// non-positive dimension, a negative trial count or trailing tokens after C
// each produce a descriptive error wrapping one of the package sentinels.
// A partially filled matrix is never returned.
package input

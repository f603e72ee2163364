package input

import "github.com/katalvlaran/freivalds/matrix"

// Problem is one decoded verification request: is C = A·B, checked with Trials trials?
type Problem struct {
	N      int
	Trials int
	A      *matrix.Dense
	B      *matrix.Dense
	C      *matrix.Dense
}

// operandNames label the matrices in error messages, in input order.
var operandNames = [...]string{"A", "B", "C"}

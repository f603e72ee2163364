package input

import "errors"

var (
	// ErrMalformed reports a token that is not a base-10 int64.
	ErrMalformed = errors.New("input: malformed integer")

	// ErrTruncated reports end of input before all values were read.
	ErrTruncated = errors.New("input: unexpected end of input")

	// ErrInvalidDimension reports n ≤ 0 or n above the decoder limit.
	ErrInvalidDimension = errors.New("input: invalid dimension")

	// ErrInvalidTrials reports a negative trial count.
	ErrInvalidTrials = errors.New("input: invalid trial count")

	// ErrTrailingData reports tokens left over after matrix C.
	ErrTrailingData = errors.New("input: trailing data after matrix C")
)

package freivalds

import "errors"

var (
	// ErrNoTrials is returned when a run is requested with zero trials.
	// An empty AND would be vacuously true; a verdict backed by no evidence
	// is refused instead.
	ErrNoTrials = errors.New("freivalds: trial count must be > 0")

	// ErrInvalidTrials is returned for a negative trial count.
	ErrInvalidTrials = errors.New("freivalds: trial count must be non-negative")

	// ErrInvalidDimension is returned when a random vector of size ≤ 0 is requested.
	ErrInvalidDimension = errors.New("freivalds: vector dimension must be > 0")
)

// TrialResult is the outcome of a single Freivalds check, as seen by hooks.
type TrialResult struct {
	// Index is the trial number in [0, trials).
	Index int

	// Worker is the pool slot that executed the trial.
	Worker int

	// Passed reports A·(B·α) == C·α for this trial's α.
	Passed bool
}

// Report aggregates all executed trials of one run.
type Report struct {
	// N is the side length of A, B and C.
	N int

	// Requested is the trial count asked for by the caller.
	Requested int

	// Trials is the number of trials actually executed. It equals Requested
	// unless short-circuiting stopped scheduling after a failure.
	Trials int

	// Passed and Failed count executed trials by outcome.
	Passed int
	Failed int

	// Workers is the effective pool size used.
	Workers int

	// Equal is the AND of all executed trial outcomes: true means no trial
	// found a discrepancy (A·B = C with error probability ≤ 2^-Trials).
	Equal bool
}

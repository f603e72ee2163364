package freivalds

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/katalvlaran/freivalds/matrix"
	"golang.org/x/sync/errgroup"
)

// outcome is the recorded state of one trial slot.
type outcome uint8

const (
	pending outcome = iota // not executed (short-circuit)
	passed
	failed
)

// reduce folds trial outcomes into a Report. AND over executed trials is
// commutative and associative, so slot order never changes the verdict.
func reduce(outcomes []outcome) Report {
	r := Report{Requested: len(outcomes), Equal: true}
	for _, o := range outcomes {
		switch o {
		case passed:
			r.Trials++
			r.Passed++
		case failed:
			r.Trials++
			r.Failed++
			r.Equal = false
		}
	}

	return r
}

// Verify runs trials independent Freivalds checks of C = A·B on a bounded
// worker pool and returns true iff every executed trial passed.
//
// See Run for the error contract.
func Verify(ctx context.Context, a, b, c matrix.Matrix, trials int, opts ...Option) (bool, error) {
	rep, err := Run(ctx, a, b, c, trials, opts...)
	if err != nil {
		return false, err
	}

	return rep.Equal, nil
}

// Run executes trials Freivalds checks of C = A·B and aggregates them.
//
// Implementation:
//   - Stage 1: validate operands and trial count before any work starts.
//   - Stage 2: start min(workers, trials) goroutines; each owns a VectorSource
//     and scratch vectors, and claims trial indices from a shared counter.
//   - Stage 3: trial i reseeds its worker's source from (base seed, i), so
//     draws are independent of which worker runs which trial.
//   - Stage 4: wait for every worker, then AND-reduce all outcomes.
//
// Errors:
//   - ErrInvalidTrials (trials < 0), ErrNoTrials (trials == 0).
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch for bad operands.
//   - ctx.Err() if the context is cancelled before all trials complete;
//     no verdict is produced in that case.
//
// Complexity: O(trials · n²) total work, O(workers · n) extra space.
func Run(ctx context.Context, a, b, c matrix.Matrix, trials int, opts ...Option) (Report, error) {
	if trials < 0 {
		return Report{}, fmt.Errorf("freivalds: Run(%d): %w", trials, ErrInvalidTrials)
	}
	if trials == 0 {
		return Report{}, fmt.Errorf("freivalds: Run: %w", ErrNoTrials)
	}
	n, err := matrix.ValidateOperands(a, b, c)
	if err != nil {
		return Report{}, fmt.Errorf("freivalds: Run: %w", err)
	}
	if err = ctx.Err(); err != nil {
		return Report{}, err
	}

	o := gatherOptions(opts...)
	workers := o.workers
	if workers > trials {
		workers = trials
	}

	start := time.Now()
	outcomes := make([]outcome, trials)
	var (
		next atomic.Int64 // next unclaimed trial index
		stop atomic.Bool  // set after a failure when short-circuiting
	)

	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			ev := newEvaluator(a, b, c, n)
			src := NewVectorSource(o.seed)
			for {
				if err := gctx.Err(); err != nil {
					return err
				}
				if stop.Load() {
					return nil
				}
				i := int(next.Add(1) - 1)
				if i >= trials {
					return nil
				}

				src.Reseed(deriveSeed(o.seed, uint64(i)))
				ok, err := ev.run(src)
				if err != nil {
					return fmt.Errorf("trial %d: %w", i, err)
				}
				if ok {
					outcomes[i] = passed
				} else {
					outcomes[i] = failed
					if o.shortCircuit {
						stop.Store(true)
					}
				}
				if o.onTrial != nil {
					o.onTrial(TrialResult{Index: i, Worker: w, Passed: ok})
				}
			}
		})
	}
	if err = g.Wait(); err != nil {
		return Report{}, fmt.Errorf("freivalds: Run: %w", err)
	}

	rep := reduce(outcomes)
	rep.N = n
	rep.Workers = workers
	o.logger.Debug("freivalds run complete",
		"n", n,
		"requested", rep.Requested,
		"trials", rep.Trials,
		"passed", rep.Passed,
		"failed", rep.Failed,
		"workers", workers,
		"equal", rep.Equal,
		"elapsed", time.Since(start),
	)

	return rep, nil
}

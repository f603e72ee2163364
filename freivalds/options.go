// Package freivalds: functional configuration for the trial scheduler.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors (panic only on nonsensical values),
//   - gatherOptions helper that enforces invariants.
package freivalds

import (
	"io"
	"log/slog"
	"runtime"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultWorkers of 0 means "use runtime.GOMAXPROCS(0)" at run time.
	DefaultWorkers = 0

	// DefaultShortCircuit keeps scheduling every requested trial after a failure.
	DefaultShortCircuit = false
)

// ---------- Internal panic messages ----------

const (
	panicWorkersInvalid = "freivalds: WithWorkers: n must be >= 1"
	panicLoggerNil      = "freivalds: WithLogger: logger must be non-nil"
)

// Option mutates internal options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	workers      int          // pool bound; 0 ⇒ GOMAXPROCS
	seed         int64        // base seed when seeded
	seeded       bool         // false ⇒ clock seed per run
	shortCircuit bool         // stop scheduling after first failure
	logger       *slog.Logger // never nil after gatherOptions
	onTrial      func(TrialResult)
}

// WithWorkers bounds the number of trials executing simultaneously.
// The effective pool is min(n, trials). Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic(panicWorkersInvalid)
	}
	return func(o *Options) { o.workers = n }
}

// WithSeed fixes the base seed so every trial's random vector is reproducible.
// Without it, each run seeds from the wall clock.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithShortCircuit stops scheduling new trials once any trial fails.
// The verdict is unchanged; Report.Trials may be smaller than requested.
func WithShortCircuit(on bool) Option {
	return func(o *Options) { o.shortCircuit = on }
}

// WithLogger routes run-level debug logs to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic(panicLoggerNil)
	}
	return func(o *Options) { o.logger = l }
}

// WithOnTrial registers a hook invoked after every executed trial.
// The hook runs on worker goroutines and must be safe for concurrent use.
func WithOnTrial(fn func(TrialResult)) Option {
	return func(o *Options) { o.onTrial = fn }
}

// discardLogger swallows everything; used when no logger is configured.
var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// gatherOptions applies opts over defaults and resolves derived values.
func gatherOptions(opts ...Option) Options {
	o := Options{
		workers:      DefaultWorkers,
		shortCircuit: DefaultShortCircuit,
		logger:       discardLogger,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.workers == DefaultWorkers {
		o.workers = runtime.GOMAXPROCS(0)
	}
	if !o.seeded {
		o.seed = clockSeed()
	}

	return o
}

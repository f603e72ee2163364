package freivalds

// ReduceOutcomes exposes the AND-reduction over plain pass/fail flags.
func ReduceOutcomes(results []bool) Report {
	out := make([]outcome, len(results))
	for i, ok := range results {
		if ok {
			out[i] = passed
		} else {
			out[i] = failed
		}
	}

	return reduce(out)
}

// DeriveSeed exposes the stream mixer.
var DeriveSeed = deriveSeed

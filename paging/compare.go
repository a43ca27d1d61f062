package paging

// A Result is the outcome of running one strategy.
type Result struct {
	Strategy Strategy
	Stats    Stats
}

// Compare runs an independent simulator for each strategy, all configured by
// the same builder. A custom victim finder on the builder is ignored. The
// setup function, if given, is called on every simulator before it runs, so
// that hooks can be attached.
func Compare(
	b Builder,
	strategies []Strategy,
	setup func(*Simulator),
) ([]Result, error) {
	results := make([]Result, 0, len(strategies))

	for _, strategy := range strategies {
		s, err := b.WithStrategy(strategy).WithVictimFinder(nil).Build()
		if err != nil {
			return nil, err
		}

		if setup != nil {
			setup(s)
		}

		results = append(results, Result{
			Strategy: strategy,
			Stats:    s.Run(),
		})
	}

	return results, nil
}

// Best returns the result with the fewest misses. Ties go to the earlier
// result.
func Best(results []Result) (Result, bool) {
	if len(results) == 0 {
		return Result{}, false
	}

	best := results[0]
	for _, r := range results[1:] {
		if r.Stats.Misses < best.Stats.Misses {
			best = r
		}
	}

	return best, true
}

package sudoku

// EnableStats toggles whether Search calls accumulate into Stats. Off by
// default, since instrumentation is not free; the CLI's --stats flag turns
// it on for the duration of a run, mirroring the teacher's EnableStats/
// WithStats facility.
var EnableStats bool

// Stats accumulates Search metrics across every call made while EnableStats
// is true. Not safe for concurrent use -- this package's search runs in a
// single goroutine and never needs it to be.
var Stats = &StatsAccumulator{}

// StatsAccumulator totals Search metrics.
type StatsAccumulator struct {
	NumSearches   uint64
	NumIterations uint64
	NumBranches   uint64
}

// Reset zeroes the accumulator.
func (s *StatsAccumulator) Reset() {
	*s = StatsAccumulator{}
}

func recordStats(result *SearchResult) {
	if !EnableStats {
		return
	}
	Stats.NumSearches++
	Stats.NumIterations += uint64(result.Iterations)
	Stats.NumBranches += uint64(result.Branches)
}

// WithStats enables Stats for the duration of f, restoring the previous
// EnableStats value afterward.
func WithStats(f func()) {
	prev := EnableStats
	EnableStats = true
	defer func() { EnableStats = prev }()
	f()
}

// Package dataset produces the synthetic tables behind the dashboard.
//
// Every generator reseeds its own random source per call, so two calls
// with the same seed and parameters return identical tables. Generators
// are total over their inputs: non-positive sizes yield empty slices.
package dataset

import (
	"math/rand/v2"
	"time"
)

// DefaultSeed matches the seed the reference dashboard ships with.
const DefaultSeed = 42

// newRand builds the per-call random source every generator starts from.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Table is a column-ordered string projection of a dataset, used by the
// CSV dump path. Rows hold one formatted value per column.
type Table struct {
	Name    string
	Columns []string
	Rows    [][]string
}

const dateFormat = "2006-01-02"

// monthEnds returns the last day of each of the trailing n months, ending
// with the month containing anchor. Day-of-month arithmetic goes through
// the first of the month to avoid AddDate overflow on short months.
func monthEnds(anchor time.Time, n int) []time.Time {
	first := time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, time.UTC)
	dates := make([]time.Time, n)
	for i := 0; i < n; i++ {
		m := first.AddDate(0, -(n-1-i), 0)
		dates[i] = m.AddDate(0, 1, -1)
	}
	return dates
}

package stats

import (
	"math"
	"sort"

	"github.com/bartekus/gitstat/internal/gitlog"
)

// TimeDiff pairs two commits adjacent in log order with the signed
// difference between them, in milliseconds. The log is newest-first, so the
// difference is normally non-negative, but clock skew or rebased history can
// flip the sign and the sign is carried through untouched.
type TimeDiff struct {
	Newer  *gitlog.Commit
	Older  *gitlog.Commit
	Millis int64
}

// timeDiffs builds the n-1 adjacent-pair differences in original log order.
// The commit sequence itself is never re-sorted; only median sorts a copy of
// the difference values.
func timeDiffs(commits []gitlog.Commit) []TimeDiff {
	diffs := make([]TimeDiff, 0, len(commits)-1)
	for i := 0; i+1 < len(commits); i++ {
		newer := &commits[i]
		older := &commits[i+1]
		diffs = append(diffs, TimeDiff{
			Newer:  newer,
			Older:  older,
			Millis: newer.Timestamp.Sub(older.Timestamp).Milliseconds(),
		})
	}
	return diffs
}

// extremes returns the pairs with the smallest and largest signed
// difference. Strict comparisons keep the first-encountered pair on ties.
func extremes(diffs []TimeDiff) (min, max TimeDiff) {
	min, max = diffs[0], diffs[0]
	for _, d := range diffs[1:] {
		if d.Millis < min.Millis {
			min = d
		}
		if d.Millis > max.Millis {
			max = d
		}
	}
	return min, max
}

func mean(diffs []TimeDiff) float64 {
	var sum int64
	for _, d := range diffs {
		sum += d.Millis
	}
	return float64(sum) / float64(len(diffs))
}

// median sorts the difference values ascending and picks the middle.
// For an even count the midpoint is ceil(n/2) and the result averages the
// elements at midpoint-1 and midpoint (0-indexed).
func median(diffs []TimeDiff) float64 {
	values := make([]int64, len(diffs))
	for i, d := range diffs {
		values[i] = d.Millis
	}
	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })

	n := len(values)
	mid := int(math.Ceil(float64(n) / 2))
	if n%2 == 1 {
		return float64(values[mid-1])
	}
	return float64(values[mid-1]+values[mid]) / 2
}

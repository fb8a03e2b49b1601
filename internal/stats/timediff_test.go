package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/gitstat/internal/gitlog"
)

// commitsWithGaps builds a newest-first sequence whose adjacent differences,
// in log order, are exactly gapsMillis.
func commitsWithGaps(gapsMillis ...int64) []gitlog.Commit {
	commits := []gitlog.Commit{commitAt("head", "dev", "m", 0, 1)}
	var ago int64
	for i, gap := range gapsMillis {
		ago += gap
		commits = append(commits, commitAt(hashFor(i+1), "dev", "m", ago, 1))
	}
	return commits
}

func hashFor(i int) string {
	return string(rune('a'+i)) + "0"
}

func TestMedianEvenCount(t *testing.T) {
	// Differences [40, 10, 30, 20] sort to [10, 20, 30, 40]; midpoint is
	// ceil(4/2)=2 and the median averages positions 1 and 2: 25.
	rep, err := Compute(commitsWithGaps(40, 10, 30, 20), 10, false)
	require.NoError(t, err)
	assert.Equal(t, 25.0, rep.MedianMillis)
	assert.Equal(t, 25.0, rep.MeanMillis)
}

func TestMedianOddCount(t *testing.T) {
	rep, err := Compute(commitsWithGaps(30, 10, 20), 10, false)
	require.NoError(t, err)
	assert.Equal(t, 20.0, rep.MedianMillis)
}

func TestMedianSingleDifference(t *testing.T) {
	rep, err := Compute(commitsWithGaps(1234), 10, false)
	require.NoError(t, err)
	assert.Equal(t, 1234.0, rep.MedianMillis)
	assert.Equal(t, 1234.0, rep.MeanMillis)
}

func TestMedianDoesNotReorderCommits(t *testing.T) {
	commits := commitsWithGaps(40, 10, 30, 20)
	before := make([]string, len(commits))
	for i, c := range commits {
		before[i] = c.Hash
	}

	_, err := Compute(commits, 10, false)
	require.NoError(t, err)

	after := make([]string, len(commits))
	for i, c := range commits {
		after[i] = c.Hash
	}
	assert.Equal(t, before, after)
}

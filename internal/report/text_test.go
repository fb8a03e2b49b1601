package report

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/gitstat/internal/gitlog"
	"github.com/bartekus/gitstat/internal/stats"
)

func sampleReport(t *testing.T, verbose bool) *stats.Report {
	t.Helper()
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	commits := []gitlog.Commit{
		{Hash: "aaaaaaaaaaaa", Author: "alice", Message: "add parser assertions", Timestamp: base, Changes: 30},
		{Hash: "bbbbbbbbbbbb", Author: "bob", Message: "fix", Timestamp: base.Add(-time.Minute), Changes: 10},
		{Hash: "cccccccccccc", Author: "alice", Message: "initial import of cli", Timestamp: base.Add(-2 * time.Hour), Changes: 20},
	}

	rep, err := stats.Compute(commits, 10, verbose)
	require.NoError(t, err)
	return rep
}

func TestRenderDefault(t *testing.T) {
	rep := sampleReport(t, false)

	var buf bytes.Buffer
	Render(&buf, rep, Options{Threshold: 10})
	out := buf.String()

	assert.Contains(t, out, "Commits analyzed: 3")
	assert.Contains(t, out, "Lines changed:    60")
	assert.Contains(t, out, "Messages longer than 10 chars: 2 (67%)")
	assert.Contains(t, out, "Unique messages:               3 (100%)")

	// Author table present with shares.
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "bob")
	assert.Contains(t, out, "83%")
	assert.Contains(t, out, "17%")

	assert.Contains(t, out, "Time between commits:")
	assert.Contains(t, out, "shortest: 1 minute")
	assert.Contains(t, out, "longest:  1 hour 59 minutes")

	// Pair details are verbose-only.
	assert.NotContains(t, out, "Shortest gap:")
}

func TestRenderVerbose(t *testing.T) {
	rep := sampleReport(t, true)

	var buf bytes.Buffer
	Render(&buf, rep, Options{Verbose: true, Threshold: 10})
	out := buf.String()

	assert.Contains(t, out, "alice: biggest commit aaaaaaaa (30 lines), smallest commit cccccccc (20 lines)")
	assert.Contains(t, out, "Shortest gap:")
	assert.Contains(t, out, "Longest gap:")
	assert.Contains(t, out, "aaaaaaaa")
	assert.Contains(t, out, "add parser assertions")
}

func TestRenderConcise(t *testing.T) {
	rep := sampleReport(t, false)

	var buf bytes.Buffer
	Render(&buf, rep, Options{Concise: true, Threshold: 10})
	out := buf.String()

	assert.Contains(t, out, "Commits analyzed: 3")
	assert.Contains(t, out, "Time between commits:")

	// No author table in concise mode.
	assert.NotContains(t, out, "alice")
	assert.False(t, strings.Contains(out, "AUTHOR"), "concise output must not include the author table")
}

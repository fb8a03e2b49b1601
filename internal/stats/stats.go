// Package stats derives the aggregate history report from a parsed commit
// sequence: per-author rollups, message quality counts, and inter-commit
// time statistics.
package stats

import (
	"errors"
	"math"
	"unicode/utf8"

	"github.com/bartekus/gitstat/internal/gitlog"
)

// ErrInsufficientHistory reports a history too short for time-difference
// statistics. Two commits are the minimum; the check runs before any
// difference is computed.
var ErrInsufficientHistory = errors.New("insufficient history: need at least 2 commits")

// AuthorStats is the per-author rollup over the whole history.
type AuthorStats struct {
	Author       string
	CommitCount  int
	TotalChanges int

	// Percent is this author's share of all changed lines, rounded to the
	// nearest integer.
	Percent int

	// Biggest and Smallest are the author's commits with the most and
	// fewest changed lines. First occurrence wins ties. Populated only in
	// verbose mode.
	Biggest  *gitlog.Commit
	Smallest *gitlog.Commit
}

// Report is the full aggregate produced by Compute.
type Report struct {
	TotalCommits int
	TotalChanges int

	// Authors preserves first-appearance order from the log.
	Authors []AuthorStats

	// MeaningfulMessages counts messages strictly longer (in runes) than
	// the configured threshold.
	MeaningfulMessages int
	MeaningfulPercent  int

	// UniqueMessages counts distinct message strings, case-sensitive and
	// untrimmed.
	UniqueMessages int
	UniquePercent  int

	// Min and Max are the adjacent commit pairs with the smallest and
	// largest signed time difference.
	Min TimeDiff
	Max TimeDiff

	MeanMillis   float64
	MedianMillis float64
}

// Compute runs the single aggregation pass over commits, which must be in
// log order (newest first). threshold is the message length cutoff; verbose
// additionally tracks each author's biggest and smallest commit.
func Compute(commits []gitlog.Commit, threshold int, verbose bool) (*Report, error) {
	if len(commits) < 2 {
		return nil, ErrInsufficientHistory
	}

	rep := &Report{TotalCommits: len(commits)}

	byAuthor := make(map[string]int) // author -> index into rep.Authors
	seen := make(map[string]struct{})

	for i := range commits {
		c := &commits[i]
		rep.TotalChanges += c.Changes

		idx, ok := byAuthor[c.Author]
		if !ok {
			idx = len(rep.Authors)
			byAuthor[c.Author] = idx
			rep.Authors = append(rep.Authors, AuthorStats{Author: c.Author})
		}
		as := &rep.Authors[idx]
		as.CommitCount++
		as.TotalChanges += c.Changes
		if verbose {
			if as.Biggest == nil || c.Changes > as.Biggest.Changes {
				as.Biggest = c
			}
			if as.Smallest == nil || c.Changes < as.Smallest.Changes {
				as.Smallest = c
			}
		}

		if utf8.RuneCountInString(c.Message) > threshold {
			rep.MeaningfulMessages++
		}
		seen[c.Message] = struct{}{}
	}

	rep.UniqueMessages = len(seen)
	rep.MeaningfulPercent = percentOf(rep.MeaningfulMessages, rep.TotalCommits)
	rep.UniquePercent = percentOf(rep.UniqueMessages, rep.TotalCommits)

	for i := range rep.Authors {
		rep.Authors[i].Percent = percentOf(rep.Authors[i].TotalChanges, rep.TotalChanges)
	}

	diffs := timeDiffs(commits)
	rep.Min, rep.Max = extremes(diffs)
	rep.MeanMillis = mean(diffs)
	rep.MedianMillis = median(diffs)

	return rep, nil
}

// percentOf rounds part/total to the nearest whole percent. A zero total
// yields 0 rather than NaN; it can only occur when no commit changed a line.
func percentOf(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}

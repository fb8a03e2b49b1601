// Package gitlog turns raw `git log` output into structured commit records.
package gitlog

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// Delimiter marks the start of each commit block in the raw log. It is a
// sentinel that cannot appear inside commit data because git substitutes it
// verbatim from the pretty format before any commit fields.
const Delimiter = "==gitstat=="

// commitDateLayout matches git's %ci placeholder output, e.g.
// "2025-11-03 14:21:07 +0100".
const commitDateLayout = "2006-01-02 15:04:05 -0700"

// ErrInvalidCommitData reports a structurally unparsable commit block inside
// an otherwise well-formed log. It is fatal for the whole run: silently
// dropping a commit would corrupt every percentage derived downstream.
var ErrInvalidCommitData = errors.New("invalid commit data")

var (
	insertionsRe = regexp.MustCompile(`(\d+) insertion`)
	deletionsRe  = regexp.MustCompile(`(\d+) deletion`)
)

// Commit is a single entry of the repository history.
type Commit struct {
	// Hash is the full commit identifier; callers may truncate for display.
	Hash string

	// Author is the local part of the author email (everything before the
	// first "@", or the whole string when no "@" is present).
	Author string

	// Message is the unparsed subject line. May be empty.
	Message string

	// Timestamp is the commit date including its timezone offset.
	Timestamp time.Time

	// Changes is the sum of inserted and deleted lines reported by the
	// trailing diffstat summary. Zero when the commit touched nothing or
	// the summary line is absent.
	Changes int
}

// Parse decomposes a raw log blob into commits, preserving the blob's own
// order (newest first, as produced by git log).
//
// Each block carries, in fixed order: hash, author email, subject and commit
// date, followed by zero or more per-file stat lines and a final diffstat
// summary. Only the summary line is inspected for counts.
//
// An empty blob yields an empty slice and no error; whether that is
// actionable is the caller's decision.
func Parse(raw string) ([]Commit, error) {
	blocks := strings.Split(raw, Delimiter)
	if len(blocks) < 2 {
		return []Commit{}, nil
	}

	// The split yields an empty fragment before the first real block.
	blocks = blocks[1:]

	commits := make([]Commit, 0, len(blocks))
	for _, block := range blocks {
		if strings.TrimSpace(block) == "" {
			continue
		}
		c, err := parseBlock(block)
		if err != nil {
			return nil, err
		}
		commits = append(commits, c)
	}
	return commits, nil
}

// parseBlock decodes one delimiter-separated commit block.
func parseBlock(block string) (Commit, error) {
	// The delimiter line ends with a newline, so the block starts with one.
	block = strings.TrimPrefix(block, "\n")
	block = strings.TrimRight(block, "\n")

	lines := strings.Split(block, "\n")
	if len(lines) < 4 {
		return Commit{}, fmt.Errorf("%w: block has %d header lines, want 4", ErrInvalidCommitData, len(lines))
	}

	hash := lines[0]
	email := lines[1]
	message := lines[2]

	ts, err := time.Parse(commitDateLayout, lines[3])
	if err != nil {
		return Commit{}, fmt.Errorf("%w: bad commit date %q: %v", ErrInvalidCommitData, lines[3], err)
	}

	return Commit{
		Hash:      hash,
		Author:    authorFromEmail(email),
		Message:   message,
		Timestamp: ts,
		Changes:   changesFromStat(lines[4:]),
	}, nil
}

// authorFromEmail truncates an email at the first "@". An address without
// "@" is used whole rather than rejected.
func authorFromEmail(email string) string {
	if i := strings.Index(email, "@"); i >= 0 {
		return email[:i]
	}
	return email
}

// changesFromStat extracts insertions+deletions from the last non-blank stat
// line. Intermediate per-file lines are ignored; a missing clause counts as
// zero, never as an error, since commits may touch only one side of the diff.
func changesFromStat(statLines []string) int {
	summary := ""
	for _, line := range statLines {
		if strings.TrimSpace(line) != "" {
			summary = line
		}
	}
	if summary == "" {
		return 0
	}
	return matchCount(insertionsRe, summary) + matchCount(deletionsRe, summary)
}

func matchCount(re *regexp.Regexp, line string) int {
	m := re.FindStringSubmatch(line)
	if m == nil {
		return 0
	}
	n, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return n
}

// Package report renders computed history statistics for people (console
// text) and machines (CSV export).
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/olekukonko/tablewriter"

	"github.com/bartekus/gitstat/internal/gitlog"
	"github.com/bartekus/gitstat/internal/stats"
)

// Options controls the text report shape. Verbose and Concise are mutually
// exclusive; callers validate that before rendering.
type Options struct {
	// Verbose adds per-author extreme commits and full pair details for
	// the shortest/longest gaps.
	Verbose bool

	// Concise limits output to the summary numbers, dropping the author
	// table and gap details.
	Concise bool

	// Threshold is echoed in the message-quality section so the report is
	// self-describing.
	Threshold int
}

// Render writes the full text report for rep to w.
func Render(w io.Writer, rep *stats.Report, opts Options) {
	fmt.Fprintf(w, "Commits analyzed: %d\n", rep.TotalCommits)
	fmt.Fprintf(w, "Lines changed:    %d\n", rep.TotalChanges)
	fmt.Fprintln(w)

	fmt.Fprintf(w, "Messages longer than %d chars: %d (%d%%)\n",
		opts.Threshold, rep.MeaningfulMessages, rep.MeaningfulPercent)
	fmt.Fprintf(w, "Unique messages:               %d (%d%%)\n",
		rep.UniqueMessages, rep.UniquePercent)
	fmt.Fprintln(w)

	if !opts.Concise {
		renderAuthors(w, rep, opts.Verbose)
		fmt.Fprintln(w)
	}

	renderGaps(w, rep, opts)
}

func renderAuthors(w io.Writer, rep *stats.Report, verbose bool) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Author", "Commits", "Changes", "Share"})
	table.SetAutoWrapText(false)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	for _, as := range rep.Authors {
		table.Append([]string{
			as.Author,
			strconv.Itoa(as.CommitCount),
			strconv.Itoa(as.TotalChanges),
			fmt.Sprintf("%d%%", as.Percent),
		})
	}
	table.Render()

	if !verbose {
		return
	}
	for _, as := range rep.Authors {
		if as.Biggest == nil || as.Smallest == nil {
			continue
		}
		fmt.Fprintf(w, "%s: biggest commit %s (%d lines), smallest commit %s (%d lines)\n",
			as.Author,
			shortHash(as.Biggest.Hash), as.Biggest.Changes,
			shortHash(as.Smallest.Hash), as.Smallest.Changes)
	}
}

func renderGaps(w io.Writer, rep *stats.Report, opts Options) {
	fmt.Fprintln(w, "Time between commits:")
	fmt.Fprintf(w, "  shortest: %s\n", HumanDuration(rep.Min.Millis))
	fmt.Fprintf(w, "  longest:  %s\n", HumanDuration(rep.Max.Millis))
	fmt.Fprintf(w, "  mean:     %s\n", HumanDuration(int64(rep.MeanMillis)))
	fmt.Fprintf(w, "  median:   %s\n", HumanDuration(int64(rep.MedianMillis)))

	if opts.Concise || !opts.Verbose {
		return
	}
	fmt.Fprintln(w)
	renderPair(w, "Shortest gap", rep.Min)
	renderPair(w, "Longest gap", rep.Max)
}

func renderPair(w io.Writer, label string, d stats.TimeDiff) {
	fmt.Fprintf(w, "%s:\n", label)
	renderCommit(w, d.Newer)
	renderCommit(w, d.Older)
}

func renderCommit(w io.Writer, c *gitlog.Commit) {
	fmt.Fprintf(w, "  %s  %s  %s\n", shortHash(c.Hash), c.Timestamp.Format("2006-01-02 15:04:05 -0700"), c.Message)
}

func shortHash(hash string) string {
	if len(hash) > 8 {
		return hash[:8]
	}
	return hash
}

// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Gitstat - Gitstat is a standalone git history analysis tool.
It parses a repository's commit log and reports contribution shares, commit
message quality, and commit timing statistics.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bartekus/gitstat/cmd/gitstat/internal/clierr"
	"github.com/bartekus/gitstat/internal/config"
	"github.com/bartekus/gitstat/internal/gitlog"
	"github.com/bartekus/gitstat/internal/projectroot"
	"github.com/bartekus/gitstat/internal/report"
	"github.com/bartekus/gitstat/internal/stats"
)

// NewReportCommand returns the `gitstat report` command.
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Analyze the commit log and print a statistics report",
		Long: `Reads the repository's commit log (merge commits excluded), then reports
per-author contribution shares, message quality metrics, and the distribution
of time between commits. With --csv the parsed commits are exported instead
and no statistics are computed.`,
		RunE: runReport,
	}

	// Flags in alphabetical order for deterministic help output
	cmd.Flags().BoolP("concise", "c", false, "print summary numbers only")
	cmd.Flags().String("csv", "", "export parsed commits to this CSV file instead of reporting")
	cmd.Flags().Int("limit", 0, "maximum number of commits to read (0 = all)")
	cmd.Flags().String("repo", ".", "path inside the repository to analyze")
	cmd.Flags().IntP("threshold", "t", 0, "message length cutoff for the meaningful-message count")

	return cmd
}

// runReport executes the report command.
func runReport(cmd *cobra.Command, args []string) error {
	// 1. Anchor everything at the repository root.
	repoFlag, _ := cmd.Flags().GetString("repo")
	repoRoot, err := projectroot.Find(repoFlag)
	if err != nil {
		return clierr.Wrap(clierr.CodeLogUnavailable, "finding repository root", err)
	}

	// 2. Load per-repository defaults and merge flags over them.
	cfg, err := config.Load(repoRoot)
	if err != nil {
		return clierr.Wrap(clierr.CodeGeneric, "loading config", err)
	}
	opts, err := mergeOptions(cmd, cfg)
	if err != nil {
		return err
	}

	// 3. Validate before any git invocation or parsing.
	if err := opts.Validate(); err != nil {
		return clierr.Wrap(clierr.CodeConflictingOptions, "invalid options", err)
	}

	// 4. One atomic collaborator call for the raw log text.
	raw, err := gitlog.NewGitLog(repoRoot, opts.Limit).Log(cmd.Context())
	if err != nil {
		return clierr.Wrap(clierr.CodeLogUnavailable, "reading commit log", err)
	}

	// 5. Parse the blob into ordered commit records.
	commits, err := gitlog.Parse(raw)
	if err != nil {
		return clierr.Wrap(clierr.CodeInvalidCommitData, "parsing commit log", err)
	}

	// 6. CSV export bypasses statistics entirely and accepts any history length.
	if opts.CSVPath != "" {
		if err := report.ExportCSV(opts.CSVPath, commits); err != nil {
			return clierr.Wrap(clierr.CodeOutputWriteFailure, "exporting csv", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Exported %d commits to %s\n", len(commits), opts.CSVPath)
		return nil
	}

	// 7. Compute and render.
	rep, err := stats.Compute(commits, opts.Threshold, opts.Verbose)
	if err != nil {
		return clierr.Wrap(clierr.CodeInsufficientHistory, "computing statistics", err)
	}

	report.Render(cmd.OutOrStdout(), rep, report.Options{
		Verbose:   opts.Verbose,
		Concise:   opts.Concise,
		Threshold: opts.Threshold,
	})
	return nil
}

// mergeOptions builds the effective options: config file values first, then
// any flag the user actually set.
func mergeOptions(cmd *cobra.Command, cfg config.Config) (config.Options, error) {
	opts := config.Options{
		Threshold: cfg.Threshold,
		Concise:   cfg.Concise,
		CSVPath:   cfg.CSVPath,
		Limit:     cfg.Limit,
	}

	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		return opts, clierr.Wrap(clierr.CodeGeneric, "reading verbose flag", err)
	}
	opts.Verbose = verbose

	if cmd.Flags().Changed("threshold") {
		opts.Threshold, _ = cmd.Flags().GetInt("threshold")
	}
	if cmd.Flags().Changed("concise") {
		opts.Concise, _ = cmd.Flags().GetBool("concise")
	}
	if cmd.Flags().Changed("csv") {
		opts.CSVPath, _ = cmd.Flags().GetString("csv")
	}
	if cmd.Flags().Changed("limit") {
		opts.Limit, _ = cmd.Flags().GetInt("limit")
	}
	return opts, nil
}

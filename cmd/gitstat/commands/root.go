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
	"os"

	"github.com/spf13/cobra"
)

// NewRootCmd constructs the gitstat root Cobra command.
func NewRootCmd() *cobra.Command {
	version := os.Getenv("GITSTAT_VERSION")
	if version == "" {
		version = "0.0.0-dev"
	}

	cmd := &cobra.Command{
		Use:           "gitstat",
		Short:         "Gitstat - commit history statistics",
		Long:          "Gitstat analyzes a local repository's commit log and reports author contribution shares, message quality, and commit timing statistics.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("verbose", "v", false, "enable verbose output")

	// Version command
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of Gitstat",
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Gitstat version %s\n", version)
		},
	})

	cmd.AddCommand(NewReportCommand())

	return cmd
}

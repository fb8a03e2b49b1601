package gitlog

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
)

// ErrLogUnavailable reports that git could not produce log text at all:
// the binary is missing, the directory is not a repository, or the log
// invocation itself failed.
var ErrLogUnavailable = errors.New("git log unavailable")

// Source provides raw log text for parsing. The git-backed implementation
// below is the only production source; tests substitute fixed blobs.
type Source interface {
	Log(ctx context.Context) (string, error)
}

// GitLog reads history from a local repository by shelling out to git.
type GitLog struct {
	repoRoot string
	limit    int
}

// NewGitLog creates a source for the repository rooted at repoRoot.
// A positive limit caps the number of commits read; zero means all.
func NewGitLog(repoRoot string, limit int) *GitLog {
	return &GitLog{
		repoRoot: repoRoot,
		limit:    limit,
	}
}

// Log runs the log query once and returns its full output. Merge commits are
// excluded and each commit is emitted as a delimiter-prefixed block of hash,
// author email, subject and commit date, followed by per-file stat lines and
// the diffstat summary Parse expects.
func (g *GitLog) Log(ctx context.Context) (string, error) {
	args := []string{
		"log",
		"--no-merges",
		"--stat",
		"--pretty=format:" + Delimiter + "%n%H%n%ae%n%s%n%ci",
	}
	if g.limit > 0 {
		args = append(args, "-n", strconv.Itoa(g.limit))
	}

	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = g.repoRoot

	out, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			detail := strings.TrimSpace(string(exitErr.Stderr))
			if detail != "" {
				return "", fmt.Errorf("%w: %s", ErrLogUnavailable, detail)
			}
		}
		return "", fmt.Errorf("%w: %v", ErrLogUnavailable, err)
	}
	return string(out), nil
}

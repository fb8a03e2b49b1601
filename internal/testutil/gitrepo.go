// Package testutil builds throwaway git repositories for integration tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// Repo is a temporary git repository controlled by a test.
type Repo struct {
	t   *testing.T
	Dir string
}

// NewRepo initializes an empty repository under t.TempDir.
func NewRepo(t *testing.T) *Repo {
	t.Helper()
	r := &Repo{t: t, Dir: t.TempDir()}
	r.Git("init")
	r.Git("config", "user.name", "Test User")
	r.Git("config", "user.email", "test@example.com")
	return r
}

// Git runs a git command inside the repository and fails the test on error.
func (r *Repo) Git(args ...string) {
	r.t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = r.Dir
	if out, err := cmd.CombinedOutput(); err != nil {
		r.t.Fatalf("git %v failed: %v\nOutput: %s", args, err, out)
	}
}

// WriteFile creates or overwrites a file relative to the repository root.
func (r *Repo) WriteFile(path, content string) {
	r.t.Helper()
	fullPath := filepath.Join(r.Dir, path)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		r.t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(fullPath, []byte(content), 0o644); err != nil {
		r.t.Fatalf("write %s: %v", path, err)
	}
}

// Commit stages everything and commits as the given author email at the
// given date (any format git accepts, e.g. RFC3339).
func (r *Repo) Commit(email, date, message string) {
	r.t.Helper()
	r.Git("add", "-A")

	cmd := exec.Command("git",
		"-c", "user.name=Test User",
		"-c", "user.email="+email,
		"commit", "--allow-empty", "-m", message, "--date", date)
	cmd.Dir = r.Dir
	cmd.Env = append(os.Environ(), "GIT_COMMITTER_DATE="+date)
	if out, err := cmd.CombinedOutput(); err != nil {
		r.t.Fatalf("git commit failed: %v\nOutput: %s", err, out)
	}
}

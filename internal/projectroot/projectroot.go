// Package projectroot locates the repository root that anchors git
// invocation and config lookup.
package projectroot

import (
	"fmt"
	"os"
	"path/filepath"
)

// Find walks up from start to the first directory containing a .git entry
// (directory or file, to cover worktrees and submodules) and returns its
// absolute path.
func Find(start string) (string, error) {
	dir, err := filepath.Abs(start)
	if err != nil {
		return "", fmt.Errorf("resolving %s: %w", start, err)
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("no git repository found in or above %s", start)
		}
		dir = parent
	}
}

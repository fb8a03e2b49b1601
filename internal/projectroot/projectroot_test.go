package projectroot

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindFromNestedDir(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))

	nested := filepath.Join(root, "internal", "deep")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	found, err := Find(nested)
	require.NoError(t, err)

	// Resolve symlinks so the comparison survives macOS /tmp indirection.
	wantRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	gotRoot, err := filepath.EvalSymlinks(found)
	require.NoError(t, err)
	assert.Equal(t, wantRoot, gotRoot)
}

func TestFindGitFileForWorktrees(t *testing.T) {
	root := t.TempDir()
	// Linked worktrees have a .git file, not a directory.
	require.NoError(t, os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: elsewhere"), 0o644))

	found, err := Find(root)
	require.NoError(t, err)
	assert.NotEmpty(t, found)
}

func TestFindOutsideRepository(t *testing.T) {
	dir := t.TempDir()
	_, err := Find(dir)
	assert.Error(t, err)
}

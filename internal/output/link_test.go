package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"git.home.luguber.info/inful/rulesgen/internal/foundation/errors"
)

func TestConvergeLink_CreateThenNoop(t *testing.T) {
	root := t.TempDir()
	canonical := filepath.Join(root, ".agents", "skills")
	require.NoError(t, os.MkdirAll(canonical, 0o750))
	link := filepath.Join(root, ".cursor", "skills")

	action, err := ConvergeLink(link, canonical)
	require.NoError(t, err)
	require.Equal(t, LinkCreated, action)

	target, err := os.Readlink(link)
	require.NoError(t, err)
	require.Equal(t, filepath.Join("..", ".agents", "skills"), target)

	action, err = ConvergeLink(link, canonical)
	require.NoError(t, err)
	require.Equal(t, LinkUnchanged, action)
}

func TestConvergeLink_ReplacesStaleLink(t *testing.T) {
	root := t.TempDir()
	oldDir := filepath.Join(root, "old")
	newDir := filepath.Join(root, "new")
	require.NoError(t, os.MkdirAll(oldDir, 0o750))
	require.NoError(t, os.MkdirAll(newDir, 0o750))
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(oldDir, link))

	action, err := ConvergeLink(link, newDir)
	require.NoError(t, err)
	require.Equal(t, LinkReplaced, action)

	resolved, err := filepath.EvalSymlinks(link)
	require.NoError(t, err)
	wantResolved, err := filepath.EvalSymlinks(newDir)
	require.NoError(t, err)
	require.Equal(t, wantResolved, resolved)
}

func TestConvergeLink_AbsoluteLinkToCanonicalIsNoop(t *testing.T) {
	root := t.TempDir()
	canonical := filepath.Join(root, "canonical")
	require.NoError(t, os.MkdirAll(canonical, 0o750))
	link := filepath.Join(root, "link")
	require.NoError(t, os.Symlink(canonical, link))

	action, err := ConvergeLink(link, canonical)
	require.NoError(t, err)
	require.Equal(t, LinkUnchanged, action)
}

func TestConvergeLink_ConflictsWithRealEntries(t *testing.T) {
	root := t.TempDir()
	canonical := filepath.Join(root, "canonical")
	require.NoError(t, os.MkdirAll(canonical, 0o750))

	dirLink := filepath.Join(root, "dir")
	require.NoError(t, os.MkdirAll(dirLink, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(dirLink, "keep.md"), []byte("user data"), 0o600))

	fileLink := filepath.Join(root, "file")
	require.NoError(t, os.WriteFile(fileLink, []byte("user data"), 0o600))

	for _, p := range []string{dirLink, fileLink} {
		_, err := ConvergeLink(p, canonical)
		require.Error(t, err)
		require.True(t, errors.HasCategory(err, errors.CategoryPathConflict))
	}

	data, err := os.ReadFile(filepath.Join(dirLink, "keep.md"))
	require.NoError(t, err)
	require.Equal(t, "user data", string(data))
}

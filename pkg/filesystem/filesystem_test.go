package filesystem

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiloon/enxkit/pkg/types"
)

// exercise runs the same checks against any types.FS rooted at dir.
func exercise(t *testing.T, fsys types.FS, dir string) {
	t.Helper()

	testFile := filepath.Join(dir, "sub", "test.txt")
	testContent := []byte("hello world")

	require.NoError(t, fsys.MkdirAll(filepath.Dir(testFile), 0755))
	require.NoError(t, fsys.WriteFile(testFile, testContent, 0644))

	info, err := fsys.Stat(testFile)
	require.NoError(t, err)
	assert.Equal(t, "test.txt", info.Name())
	assert.Equal(t, int64(len(testContent)), info.Size())

	content, err := fsys.ReadFile(testFile)
	require.NoError(t, err)
	assert.Equal(t, testContent, content)

	_, err = fsys.ReadFile(filepath.Dir(testFile))
	assert.Error(t, err, "reading a directory should fail")

	mtime := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, fsys.Chtimes(testFile, mtime, mtime))
	require.NoError(t, fsys.Chmod(testFile, 0600))
	info, err = fsys.Lstat(testFile)
	require.NoError(t, err)
	assert.True(t, info.ModTime().Equal(mtime))
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	var visited []string
	err = fsys.Walk(dir, func(path string, info os.FileInfo, err error) error {
		require.NoError(t, err)
		rel, relErr := filepath.Rel(dir, path)
		require.NoError(t, relErr)
		visited = append(visited, filepath.ToSlash(rel))
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{".", "sub", "sub/test.txt"}, visited)

	require.NoError(t, fsys.RemoveAll(filepath.Join(dir, "sub")))
	_, err = fsys.Stat(testFile)
	assert.True(t, os.IsNotExist(err))
}

func TestNewOS(t *testing.T) {
	exercise(t, NewOS(), t.TempDir())
}

func TestNewMemory(t *testing.T) {
	exercise(t, NewMemory(), "/work")
}

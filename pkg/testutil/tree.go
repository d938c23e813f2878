package testutil

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/wiloon/enxkit/pkg/types"
)

// WriteTree creates every file in tree below root, creating parents as
// needed. Keys are slash-separated relative paths.
func WriteTree(t *testing.T, fsys types.FS, root string, tree map[string][]byte) {
	t.Helper()

	for rel, content := range tree {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if err := fsys.MkdirAll(filepath.Dir(full), 0755); err != nil {
			t.Fatalf("Failed to create directory for %s: %v", rel, err)
		}
		if err := fsys.WriteFile(full, content, 0644); err != nil {
			t.Fatalf("Failed to write file %s: %v", rel, err)
		}
	}
}

// ReadTree returns every regular file below root keyed by slash-separated
// relative path. Subtrees at skip (if non-empty) are left out.
func ReadTree(t *testing.T, fsys types.FS, root string, skip string) map[string][]byte {
	t.Helper()

	tree := make(map[string][]byte)
	err := fsys.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if skip != "" && path == skip {
			return filepath.SkipDir
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		data, err := fsys.ReadFile(path)
		if err != nil {
			return err
		}
		tree[filepath.ToSlash(rel)] = data
		return nil
	})
	if err != nil {
		t.Fatalf("Failed to read tree %s: %v", root, err)
	}
	return tree
}

// RelPaths returns the sorted keys of a tree
func RelPaths(tree map[string][]byte) []string {
	paths := make([]string, 0, len(tree))
	for rel := range tree {
		paths = append(paths, rel)
	}
	sort.Strings(paths)
	return paths
}

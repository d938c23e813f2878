package types

import (
	"io/fs"
	"path/filepath"
	"time"
)

// FS is the filesystem interface required for enxkit operations
type FS interface {
	// File operations
	Stat(name string) (fs.FileInfo, error)
	ReadFile(name string) ([]byte, error)
	WriteFile(name string, data []byte, perm fs.FileMode) error

	// Directory operations
	MkdirAll(path string, perm fs.FileMode) error
	RemoveAll(path string) error

	// Metadata operations
	Chmod(name string, mode fs.FileMode) error
	Chtimes(name string, atime, mtime time.Time) error

	// Lstat does not follow a final symlink. Filesystems without symlinks
	// may fall back to Stat.
	Lstat(name string) (fs.FileInfo, error)

	// Walk visits root and everything below it in lexical order without
	// following symlinks, with filepath.Walk semantics.
	Walk(root string, fn filepath.WalkFunc) error
}

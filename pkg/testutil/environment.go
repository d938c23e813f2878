// pkg/testutil/environment.go
// DEPENDENCIES: pkg/filesystem
// PURPOSE: Orchestrate source/destination test trees

package testutil

import (
	"path/filepath"
	"testing"

	"github.com/wiloon/enxkit/pkg/filesystem"
	"github.com/wiloon/enxkit/pkg/types"
)

// EnvType defines the type of test environment
type EnvType int

const (
	EnvMemoryOnly EnvType = iota // Pure in-memory, no real filesystem
	EnvIsolated                  // Real filesystem in temp directory
)

// TestEnvironment provides a source root with a destination nested inside it
type TestEnvironment struct {
	SourceRoot string
	DestRoot   string
	FS         types.FS
	Type       EnvType

	t *testing.T
}

// NewTestEnvironment creates a new test environment with an empty source root
func NewTestEnvironment(t *testing.T, envType EnvType) *TestEnvironment {
	t.Helper()

	env := &TestEnvironment{t: t, Type: envType}

	switch envType {
	case EnvMemoryOnly:
		env.SourceRoot = "/virtual/chrome-enx"
		env.FS = filesystem.NewMemory()
	case EnvIsolated:
		env.SourceRoot = filepath.Join(t.TempDir(), "chrome-enx")
		env.FS = filesystem.NewOS()
	}
	env.DestRoot = filepath.Join(env.SourceRoot, "public")

	if err := env.FS.MkdirAll(env.SourceRoot, 0755); err != nil {
		t.Fatalf("Failed to create source root: %v", err)
	}
	return env
}

// WithFiles writes text files relative to the source root
func (env *TestEnvironment) WithFiles(files map[string]string) *TestEnvironment {
	env.t.Helper()
	tree := make(map[string][]byte, len(files))
	for rel, content := range files {
		tree[rel] = []byte(content)
	}
	WriteTree(env.t, env.FS, env.SourceRoot, tree)
	return env
}

// WithBinary writes one file with raw bytes relative to the source root
func (env *TestEnvironment) WithBinary(rel string, data []byte) *TestEnvironment {
	env.t.Helper()
	WriteTree(env.t, env.FS, env.SourceRoot, map[string][]byte{rel: data})
	return env
}

// Source returns the absolute path of rel inside the source root
func (env *TestEnvironment) Source(rel string) string {
	return filepath.Join(env.SourceRoot, filepath.FromSlash(rel))
}

// Dest returns the absolute path of rel inside the destination root
func (env *TestEnvironment) Dest(rel string) string {
	return filepath.Join(env.DestRoot, filepath.FromSlash(rel))
}

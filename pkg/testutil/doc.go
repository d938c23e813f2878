// Package testutil provides utilities for testing enxkit components.
//
// Key components:
//   - TestEnvironment: a source tree with a nested destination, either in
//     memory (afero MemMapFs) or in a real temporary directory
//   - tree helpers for writing and reading whole directory trees
//
// Usage guidelines:
//   - Prefer EnvMemoryOnly; use EnvIsolated when the test needs real file
//     modes, modification times, symlinks or the synthfs engine
//   - All test data should be defined inline, not in external files
package testutil

// Package filesystem provides filesystem implementations for enxkit.
//
// This package contains implementations of the types.FS interface,
// including the standard OS filesystem and afero-backed filesystems
// used for in-memory tests.
package filesystem

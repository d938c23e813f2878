// Package types defines the interfaces shared across enxkit packages.
// The filesystem abstraction lives here so that deploy and icons can run
// against the real OS or an in-memory afero tree without importing each other.
package types

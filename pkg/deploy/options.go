package deploy

import (
	"path/filepath"
	"strings"

	"github.com/wiloon/enxkit/pkg/errors"
)

// Engine selects the executor that applies a plan
type Engine string

const (
	// EngineDirect writes through the types.FS passed to Deploy
	EngineDirect Engine = "direct"
	// EngineSynthfs runs the plan as a synthfs pipeline on the OS filesystem
	EngineSynthfs Engine = "synthfs"
)

// ParseEngine parses an engine name. The empty string means EngineDirect.
func ParseEngine(s string) (Engine, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(EngineDirect):
		return EngineDirect, nil
	case string(EngineSynthfs):
		return EngineSynthfs, nil
	default:
		return "", errors.Newf(errors.ErrInvalidInput, "unknown engine: %s", s).
			WithDetail("engine", s)
	}
}

// Options configures a deploy run
type Options struct {
	// SourceRoot is the tree to mirror
	SourceRoot string
	// DestRoot is recreated on every run; it usually lives inside SourceRoot
	DestRoot string
	// Rule is applied to every text file
	Rule ReplacementRule

	// DryRun plans without touching the destination
	DryRun bool
	// Engine picks the executor; empty means EngineDirect
	Engine Engine
	// Rollback asks the synthfs engine to undo completed operations on failure
	Rollback bool
}

// ResolveDest turns a configured destination into a path. A relative
// destination is a subdirectory of the source.
func ResolveDest(source, dest string) string {
	if dest == "" {
		return filepath.Clean(source)
	}
	if filepath.IsAbs(dest) {
		return filepath.Clean(dest)
	}
	return filepath.Join(source, dest)
}

// validate normalises the roots and checks the preconditions that do not
// need the filesystem.
func (o *Options) validate() error {
	if o.SourceRoot == "" {
		return errors.New(errors.ErrInvalidInput, "source root must not be empty")
	}
	if o.DestRoot == "" {
		return errors.New(errors.ErrInvalidInput, "destination root must not be empty")
	}
	if err := o.Rule.Validate(); err != nil {
		return err
	}

	o.SourceRoot = filepath.Clean(o.SourceRoot)
	o.DestRoot = filepath.Clean(o.DestRoot)

	if filepath.IsAbs(o.SourceRoot) != filepath.IsAbs(o.DestRoot) {
		return errors.New(errors.ErrInvalidInput, "source and destination must both be absolute or both be relative").
			WithDetail("source", o.SourceRoot).
			WithDetail("destination", o.DestRoot)
	}

	// Resetting the destination would delete the input.
	if isWithin(o.SourceRoot, o.DestRoot) {
		return errors.New(errors.ErrInvalidInput, "source root must not be inside the destination").
			WithDetail("source", o.SourceRoot).
			WithDetail("destination", o.DestRoot)
	}

	engine, err := ParseEngine(string(o.Engine))
	if err != nil {
		return err
	}
	o.Engine = engine
	return nil
}

// isWithin reports whether path is root itself or lies beneath it, comparing
// whole path components. Both arguments must be clean.
func isWithin(path, root string) bool {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return false
	}
	if rel == "." {
		return true
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}

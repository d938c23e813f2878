package deploy

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/wiloon/enxkit/pkg/errors"
	"github.com/wiloon/enxkit/pkg/logging"
	"github.com/wiloon/enxkit/pkg/types"
)

// Summary holds the counters of a finished run
type Summary struct {
	Files int   `json:"files" yaml:"files"`
	Bytes int64 `json:"bytes" yaml:"bytes"`

	TextFiles    int  `json:"text_files" yaml:"text_files"`
	BinaryFiles  int  `json:"binary_files" yaml:"binary_files"`
	Replacements int  `json:"replacements" yaml:"replacements"`
	Skipped      int  `json:"skipped" yaml:"skipped"`
	DryRun       bool `json:"dry_run" yaml:"dry_run"`

	Duration time.Duration `json:"-" yaml:"-"`
}

// Line renders the one-line console report
func (s Summary) Line() string {
	if s.DryRun {
		return fmt.Sprintf("Would copy %d files, total %d bytes.", s.Files, s.Bytes)
	}
	return fmt.Sprintf("Copied %d files, total %d bytes.", s.Files, s.Bytes)
}

func (s *Summary) record(a Action, size int64) {
	s.Files++
	s.Bytes += size
	switch a.Type {
	case ActionWrite:
		s.TextFiles++
		s.Replacements += a.Replacements
	case ActionCopy:
		s.BinaryFiles++
	}
}

// Executor applies a plan
type Executor interface {
	Execute(ctx context.Context, plan *Plan) (Summary, error)
}

// NewExecutor returns the executor for engine. fsys is used by the direct
// engine; the synthfs engine always targets the OS filesystem.
func NewExecutor(engine Engine, fsys types.FS, rollback bool) (Executor, error) {
	switch engine {
	case EngineDirect, "":
		return NewDirectExecutor(fsys), nil
	case EngineSynthfs:
		return NewSynthfsExecutor(SynthfsOptions{Rollback: rollback}), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown engine: %s", engine)
	}
}

// DirectExecutor performs plan actions one by one through a types.FS
type DirectExecutor struct {
	fsys   types.FS
	logger zerolog.Logger
}

// NewDirectExecutor creates a new direct executor
func NewDirectExecutor(fsys types.FS) *DirectExecutor {
	return &DirectExecutor{
		fsys:   fsys,
		logger: logging.GetLogger("deploy.direct"),
	}
}

// Execute runs every action in order and stops at the first failure.
// A partially written destination is left as is.
func (e *DirectExecutor) Execute(ctx context.Context, plan *Plan) (Summary, error) {
	start := time.Now()
	summary := Summary{Skipped: plan.Skipped}

	for _, action := range plan.Actions {
		if err := ctx.Err(); err != nil {
			return summary, errors.Wrap(err, errors.ErrCancelled, "deploy cancelled")
		}

		if err := e.apply(action); err != nil {
			e.logger.Error().
				Err(err).
				Str("type", string(action.Type)).
				Str("target", action.Target).
				Msg("Action failed")
			return summary, err
		}

		if !action.IsFile() {
			continue
		}
		size, err := destSize(e.fsys, action.Target)
		if err != nil {
			return summary, err
		}
		summary.record(action, size)

		e.logger.Debug().
			Str("path", action.RelPath).
			Str("type", string(action.Type)).
			Int64("bytes", size).
			Int("replacements", action.Replacements).
			Msg("File written")
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

func (e *DirectExecutor) apply(action Action) error {
	switch action.Type {
	case ActionReset:
		return resetDir(e.fsys, action.Target)
	case ActionWrite:
		if err := e.ensureParent(action.Target); err != nil {
			return err
		}
		if err := e.fsys.WriteFile(action.Target, action.Content, textMode); err != nil {
			return errors.Wrap(err, errors.ErrFileWrite, "cannot write text file").
				WithDetail("path", action.Target)
		}
		return nil
	case ActionCopy:
		if err := e.ensureParent(action.Target); err != nil {
			return err
		}
		data, err := e.fsys.ReadFile(action.Source)
		if err != nil {
			return errors.Wrap(err, errors.ErrFileRead, "cannot read binary file").
				WithDetail("path", action.Source)
		}
		if err := e.fsys.WriteFile(action.Target, data, action.Mode); err != nil {
			return errors.Wrap(err, errors.ErrFileCopy, "cannot copy binary file").
				WithDetail("path", action.Target)
		}
		return preserveMetadata(e.fsys, action)
	default:
		return errors.Newf(errors.ErrPlanInvalid, "unsupported action type: %s", action.Type)
	}
}

func (e *DirectExecutor) ensureParent(target string) error {
	dir := filepath.Dir(target)
	if err := e.fsys.MkdirAll(dir, dirMode); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create directory").
			WithDetail("path", dir)
	}
	return nil
}

// resetDir removes dir and everything below it, then recreates it empty
func resetDir(fsys types.FS, dir string) error {
	if err := fsys.RemoveAll(dir); err != nil {
		return errors.Wrap(err, errors.ErrDirRemove, "cannot clear destination").
			WithDetail("path", dir)
	}
	if err := fsys.MkdirAll(dir, dirMode); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create destination").
			WithDetail("path", dir)
	}
	return nil
}

// preserveMetadata applies the source mode and modification time to a copy.
// WriteFile is subject to the umask, so the mode is set explicitly.
func preserveMetadata(fsys types.FS, action Action) error {
	if err := fsys.Chmod(action.Target, action.Mode); err != nil {
		return errors.Wrap(err, errors.ErrFileCopy, "cannot preserve file mode").
			WithDetail("path", action.Target)
	}
	if err := fsys.Chtimes(action.Target, action.ModTime, action.ModTime); err != nil {
		return errors.Wrap(err, errors.ErrFileCopy, "cannot preserve modification time").
			WithDetail("path", action.Target)
	}
	return nil
}

func destSize(fsys types.FS, target string) (int64, error) {
	info, err := fsys.Stat(target)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, errors.Wrap(err, errors.ErrFileNotFound, "written file is missing").
				WithDetail("path", target)
		}
		return 0, errors.Wrap(err, errors.ErrFileAccess, "cannot stat written file").
			WithDetail("path", target)
	}
	return info.Size(), nil
}

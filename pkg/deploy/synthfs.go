package deploy

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/arthur-debert/synthfs/pkg/synthfs"
	"github.com/arthur-debert/synthfs/pkg/synthfs/filesystem"
	"github.com/rs/zerolog"

	"github.com/wiloon/enxkit/pkg/errors"
	"github.com/wiloon/enxkit/pkg/logging"
	"github.com/wiloon/enxkit/pkg/types"

	osfilesystem "github.com/wiloon/enxkit/pkg/filesystem"
)

// SynthfsOptions configures the synthfs executor
type SynthfsOptions struct {
	// Rollback undoes completed operations when a later one fails
	Rollback bool
}

// SynthfsExecutor executes deploy plans as a synthfs operation pipeline
type SynthfsExecutor struct {
	logger     zerolog.Logger
	filesystem filesystem.FullFileSystem
	local      types.FS
	rollback   bool
}

// NewSynthfsExecutor creates a synthfs-based executor on the OS filesystem
func NewSynthfsExecutor(opts SynthfsOptions) *SynthfsExecutor {
	// PathAwareFileSystem lets operations use absolute paths directly
	osfs := filesystem.NewOSFileSystem("/")
	pathAwareFS := synthfs.NewPathAwareFileSystem(osfs, "/").WithAbsolutePaths()

	return &SynthfsExecutor{
		logger:     logging.GetLogger("deploy.synthfs"),
		filesystem: pathAwareFS,
		local:      osfilesystem.NewOS(),
		rollback:   opts.Rollback,
	}
}

// Execute converts the plan into synthfs operations, runs them as one
// pipeline and measures the written files.
func (e *SynthfsExecutor) Execute(ctx context.Context, plan *Plan) (Summary, error) {
	start := time.Now()
	summary := Summary{Skipped: plan.Skipped}

	if !filepath.IsAbs(plan.DestRoot) {
		return summary, errors.New(errors.ErrInvalidInput, "synthfs engine requires absolute paths").
			WithDetail("destination", plan.DestRoot)
	}

	sfs := synthfs.New()
	ops, err := e.Operations(sfs, plan)
	if err != nil {
		return summary, err
	}

	options := synthfs.DefaultPipelineOptions()
	options.RollbackOnError = e.rollback

	e.logger.Info().
		Int("operationCount", len(ops)).
		Bool("rollbackEnabled", e.rollback).
		Msg("Executing synthfs operations")

	result, err := synthfs.RunWithOptions(ctx, e.filesystem, options, ops...)
	e.logResults(result)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return summary, errors.Wrap(ctxErr, errors.ErrCancelled, "deploy cancelled")
		}
		return summary, errors.Wrap(err, errors.ErrExecute, "synthfs pipeline failed")
	}

	for _, action := range plan.Actions {
		if !action.IsFile() {
			continue
		}
		size, err := destSize(e.local, action.Target)
		if err != nil {
			return summary, err
		}
		summary.record(action, size)
	}

	summary.Duration = time.Since(start)
	return summary, nil
}

// Operations converts plan actions into synthfs operations, one per action
func (e *SynthfsExecutor) Operations(sfs *synthfs.SynthFS, plan *Plan) ([]synthfs.Operation, error) {
	ops := make([]synthfs.Operation, 0, len(plan.Actions))
	for i, action := range plan.Actions {
		op, err := e.convert(sfs, i, action)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}

func (e *SynthfsExecutor) convert(sfs *synthfs.SynthFS, index int, action Action) (synthfs.Operation, error) {
	id := fmt.Sprintf("%s_%04d_%s", action.Type, index, filepath.ToSlash(action.RelPath))

	switch action.Type {
	case ActionReset:
		return sfs.CustomOperationWithID(id, func(ctx context.Context, fs filesystem.FileSystem) error {
			return resetDir(e.local, action.Target)
		}), nil

	case ActionWrite:
		return sfs.CustomOperationWithID(id, func(ctx context.Context, fs filesystem.FileSystem) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := fs.MkdirAll(filepath.Dir(action.Target), 0755); err != nil {
				return err
			}
			return fs.WriteFile(action.Target, action.Content, textMode)
		}), nil

	case ActionCopy:
		return sfs.CustomOperationWithID(id, func(ctx context.Context, fs filesystem.FileSystem) error {
			if err := ctx.Err(); err != nil {
				return err
			}
			src, err := fs.Open(action.Source)
			if err != nil {
				return err
			}
			defer func() { _ = src.Close() }()

			data, err := io.ReadAll(src)
			if err != nil {
				return err
			}
			if err := fs.MkdirAll(filepath.Dir(action.Target), 0755); err != nil {
				return err
			}
			if err := fs.WriteFile(action.Target, data, action.Mode); err != nil {
				return err
			}
			return preserveMetadata(e.local, action)
		}), nil

	default:
		return nil, errors.Newf(errors.ErrPlanInvalid, "unsupported action type: %s", action.Type)
	}
}

func (e *SynthfsExecutor) logResults(result *synthfs.Result) {
	if result == nil {
		return
	}
	for _, opResult := range result.GetOperations() {
		r, ok := opResult.(synthfs.OperationResult)
		if !ok {
			continue
		}
		event := e.logger.Debug()
		if r.Status != synthfs.StatusSuccess {
			event = e.logger.Warn().Err(r.Error)
		}
		event.
			Str("operationID", string(r.OperationID)).
			Dur("duration", r.Duration).
			Msg("synthfs operation finished")
	}
}

package deploy

import (
	"context"

	"github.com/google/uuid"

	"github.com/wiloon/enxkit/pkg/logging"
	"github.com/wiloon/enxkit/pkg/types"
)

// Deploy mirrors opts.SourceRoot into opts.DestRoot and reports what was
// written. With opts.DryRun the destination is left alone and the summary
// reflects the plan.
func Deploy(ctx context.Context, fsys types.FS, opts Options) (Summary, error) {
	logger := logging.GetLogger("deploy").With().
		Str("run", uuid.NewString()).
		Logger()

	plan, err := BuildPlan(fsys, opts)
	if err != nil {
		logger.Error().Err(err).Msg("Planning failed")
		return Summary{}, err
	}

	if opts.DryRun {
		summary := plan.Summary()
		logger.Info().
			Int("files", summary.Files).
			Int64("bytes", summary.Bytes).
			Msg("Dry run, destination untouched")
		return summary, nil
	}

	engine, err := ParseEngine(string(opts.Engine))
	if err != nil {
		return Summary{}, err
	}
	opts.Engine = engine

	executor, err := NewExecutor(engine, fsys, opts.Rollback)
	if err != nil {
		return Summary{}, err
	}

	summary, err := executor.Execute(ctx, plan)
	if err != nil {
		logger.Error().Err(err).Int("files", summary.Files).Msg("Deploy aborted")
		return summary, err
	}

	logger.Info().
		Str("engine", string(opts.Engine)).
		Int("files", summary.Files).
		Int64("bytes", summary.Bytes).
		Int("text", summary.TextFiles).
		Int("binary", summary.BinaryFiles).
		Int("replacements", summary.Replacements).
		Dur("duration", summary.Duration).
		Msg("Deploy completed")
	return summary, nil
}

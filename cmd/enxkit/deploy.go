package enxkit

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/wiloon/enxkit/pkg/deploy"
	"github.com/wiloon/enxkit/pkg/errors"
	"github.com/wiloon/enxkit/pkg/filesystem"
	"github.com/wiloon/enxkit/pkg/logging"
	"github.com/wiloon/enxkit/pkg/ui"
)

func newDeployCmd(a *app) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:     "deploy",
		Short:   MsgDeployShort,
		Long:    MsgDeployLong,
		Example: MsgDeployExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDeploy(cmd, dryRun)
		},
	}

	cmd.Flags().StringP("source", "s", "", MsgFlagSource)
	cmd.Flags().StringP("dest", "d", "", MsgFlagDest)
	cmd.Flags().String("engine", "", MsgFlagEngine)
	cmd.Flags().StringP("format", "f", "", MsgFlagFormat)
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, MsgFlagDryRun)

	bindFlag(cmd, "source", "deploy.source")
	bindFlag(cmd, "dest", "deploy.destination")
	bindFlag(cmd, "engine", "deploy.engine")
	bindFlag(cmd, "format", "deploy.format")

	_ = cmd.RegisterFlagCompletionFunc("engine", cobra.FixedCompletions(
		[]string{string(deploy.EngineDirect), string(deploy.EngineSynthfs)}, cobra.ShellCompDirectiveNoFileComp))
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(
		ui.Formats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (a *app) runDeploy(cmd *cobra.Command, dryRun bool) error {
	logger := logging.GetLogger("cmd.deploy")

	opts, err := a.cfg.DeployOptions()
	if err != nil {
		return err
	}
	if opts.SourceRoot, err = filepath.Abs(opts.SourceRoot); err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrWorkingDir)
	}
	if opts.DestRoot, err = filepath.Abs(opts.DestRoot); err != nil {
		return errors.Wrap(err, errors.ErrInternal, MsgErrWorkingDir)
	}

	format, err := ui.ParseFormat(a.cfg.Deploy.Format)
	if err != nil {
		return err
	}
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	logger.Info().
		Str("source", opts.SourceRoot).
		Str("destination", opts.DestRoot).
		Str("engine", string(opts.Engine)).
		Bool("dryRun", dryRun).
		Msg("Starting deploy")

	fsys := filesystem.NewOS()

	if dryRun {
		plan, err := deploy.BuildPlan(fsys, opts)
		if err != nil {
			return err
		}
		return renderer.RenderPlan(plan)
	}

	summary, err := deploy.Deploy(cmd.Context(), fsys, opts)
	if err != nil {
		return err
	}
	return renderer.RenderSummary(summary)
}

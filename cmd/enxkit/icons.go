package enxkit

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wiloon/enxkit/pkg/filesystem"
	"github.com/wiloon/enxkit/pkg/icons"
)

func newIconsCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "icons",
		Short:   MsgIconsShort,
		Long:    MsgIconsLong,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			_, err := icons.Generate(cmd.Context(), filesystem.NewOS(), a.cfg.Icons.OutputDir, icons.Options{
				SVG: a.cfg.Icons.SVG,
				OnWrite: func(name string) {
					_, _ = fmt.Fprintf(out, MsgIconCreated, name)
				},
			})
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, MsgIconsComplete)
			return err
		},
	}

	cmd.Flags().StringP("out", "o", "", MsgFlagOut)
	cmd.Flags().Bool("svg", false, MsgFlagSVG)
	bindFlag(cmd, "out", "icons.output_dir")
	bindFlag(cmd, "svg", "icons.svg")

	return cmd
}

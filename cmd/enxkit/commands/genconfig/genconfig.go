package genconfig

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wiloon/enxkit/pkg/config"
	"github.com/wiloon/enxkit/pkg/errors"
	"github.com/wiloon/enxkit/pkg/logging"
)

// NewCommand creates the gen-config command. current returns the
// configuration loaded for this invocation.
func NewCommand(current func() *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "gen-config",
		Short:   MsgShort,
		Long:    MsgLong,
		Example: MsgExample,
		GroupID: "config",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, _ := cmd.Flags().GetBool("write")
			effective, _ := cmd.Flags().GetBool("effective")
			return run(cmd, current, write, effective)
		},
	}

	cmd.Flags().BoolP("write", "w", false, MsgFlagWrite)
	cmd.Flags().Bool("effective", false, MsgFlagEffective)

	return cmd
}

func run(cmd *cobra.Command, current func() *config.Config, write, effective bool) error {
	logger := logging.GetLogger("cmd.genconfig")

	content := config.GenerateConfigContent()
	if effective {
		cfg := current()
		if cfg == nil {
			return errors.New(errors.ErrInternal, "configuration not loaded")
		}
		var err error
		if content, err = config.EffectiveContent(cfg); err != nil {
			return err
		}
	}

	if !write {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}

	if _, err := os.Stat(FileName); err == nil {
		return errors.Newf(errors.ErrInvalidInput, MsgErrExists, FileName).
			WithDetail("path", FileName)
	}
	if err := os.WriteFile(FileName, []byte(content), 0644); err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write config file").
			WithDetail("path", FileName)
	}

	logger.Info().Str("path", FileName).Bool("effective", effective).Msg("Config file written")
	_, err := fmt.Fprintf(cmd.OutOrStdout(), MsgWritten, FileName)
	return err
}

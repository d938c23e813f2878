package enxkit

import (
	"embed"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/wiloon/enxkit/cmd/enxkit/commands/genconfig"
	"github.com/wiloon/enxkit/internal/version"
	"github.com/wiloon/enxkit/pkg/cobrax/topics"
	"github.com/wiloon/enxkit/pkg/config"
	"github.com/wiloon/enxkit/pkg/errors"
	"github.com/wiloon/enxkit/pkg/logging"
)

//go:embed topics/*.md
var topicsFS embed.FS

const (
	// annotationConfigKey maps a flag to the config key it overrides
	annotationConfigKey = "enxkit/config-key"
	// annotationSkipConfig marks commands that run without loading config
	annotationSkipConfig = "enxkit/skip-config"
)

// app holds the state shared by all commands of one invocation
type app struct {
	verbosity  int
	configFile string
	cfg        *config.Config
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:               "enxkit",
		Short:             MsgRootShort,
		Long:              MsgRootLong,
		Version:           version.Version,
		PersistentPreRunE: a.setup,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If we get here, no subcommand was provided
			_ = cmd.Help()
			return errors.New(errors.ErrInvalidInput, MsgErrNoCommand)
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	// Global flags
	rootCmd.PersistentFlags().CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	rootCmd.PersistentFlags().StringVar(&a.configFile, "config", "", MsgFlagConfig)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "config", Title: "CONFIGURATION:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newDeployCmd(a))
	rootCmd.AddCommand(newIconsCmd(a))
	rootCmd.AddCommand(genconfig.NewCommand(func() *config.Config { return a.cfg }))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	// Topic-based help, rendered with glamour
	opts := topics.Options{
		Extensions: []string{".md"},
		Renderer:   topics.NewGlamourRenderer(),
	}
	if err := topics.InitializeWithOptions(rootCmd, topicsFS, "topics", opts); err != nil {
		log.Warn().Err(err).Msg("Help topics unavailable")
	}

	return rootCmd
}

// setup configures logging and loads the configuration before any command runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logging.SetupLoggerWithOptions(a.verbosity, logging.Options{DisableFile: true})

	if !needsConfig(cmd) {
		return nil
	}

	cfg, err := config.Load(config.LoadOptions{
		ConfigFile: a.configFile,
		Overrides:  flagOverrides(cmd),
	})
	if err != nil {
		return err
	}
	a.cfg = cfg

	if cfg.Log.File {
		logging.SetupLogger(a.verbosity)
	}

	log.Debug().Str("command", cmd.Name()).Msg("Command started")
	return nil
}

func needsConfig(cmd *cobra.Command) bool {
	if cmd.Name() == "help" || cmd.Name() == cobra.ShellCompRequestCmd || cmd.Name() == cobra.ShellCompNoDescRequestCmd {
		return false
	}
	_, skip := cmd.Annotations[annotationSkipConfig]
	return !skip
}

// bindFlag marks flag as an override for a config key
func bindFlag(cmd *cobra.Command, flag, key string) {
	_ = cmd.Flags().SetAnnotation(flag, annotationConfigKey, []string{key})
}

// flagOverrides collects the config overrides of the flags set on the command line
func flagOverrides(cmd *cobra.Command) map[string]interface{} {
	overrides := make(map[string]interface{})
	cmd.Flags().Visit(func(f *pflag.Flag) {
		if keys := f.Annotations[annotationConfigKey]; len(keys) == 1 {
			overrides[keys[0]] = f.Value.String()
		}
	})
	return overrides
}

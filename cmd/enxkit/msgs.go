package enxkit

import (
	_ "embed"
	"strings"
)

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Deploy and icon tools for the enx browser extension"
	MsgDeployShort     = "Mirror the extension into its dev build directory"
	MsgIconsShort      = "Render the extension toolbar icons"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"

	// Status messages
	MsgIconCreated   = "Created %s\n"
	MsgIconsComplete = "All icons created successfully!"

	// Error messages
	MsgErrNoCommand  = "no command specified"
	MsgErrWorkingDir = "cannot determine working directory"

	// Flag descriptions
	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig  = "Read settings from this file instead of ./.enxkit.toml"
	MsgFlagSource  = "Extension source directory"
	MsgFlagDest    = "Output directory, relative to the source unless absolute"
	MsgFlagEngine  = "Executor: direct or synthfs"
	MsgFlagDryRun  = "Show what would be written without touching the output"
	MsgFlagFormat  = "Summary format: auto, text, json or yaml"
	MsgFlagOut     = "Directory that receives the icons"
	MsgFlagSVG     = "Also write an SVG version of each icon"
)

var (
	//go:embed msgs/root-long.txt
	msgRootLong string

	//go:embed msgs/deploy-long.txt
	msgDeployLong string

	//go:embed msgs/deploy-example.txt
	msgDeployExample string

	//go:embed msgs/icons-long.txt
	msgIconsLong string

	//go:embed msgs/usage-template.txt
	msgUsageTemplate string
)

// Long messages, trimmed of the trailing newline the files end with
var (
	MsgRootLong      = strings.TrimSpace(msgRootLong)
	MsgDeployLong    = strings.TrimSpace(msgDeployLong)
	MsgDeployExample = strings.TrimRight(msgDeployExample, "\n")
	MsgIconsLong     = strings.TrimSpace(msgIconsLong)
	MsgUsageTemplate = strings.TrimRight(msgUsageTemplate, "\n") + "\n"
)

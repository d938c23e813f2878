package genconfig

// Message constants
const (
	MsgShort   = "Generate a configuration file"
	MsgLong    = "Output the default configuration, with every value commented out, to stdout or to ./.enxkit.toml.\n\nWith --effective the merged configuration of all layers is printed instead."
	MsgExample = `  enxkit gen-config               # Output to stdout
  enxkit gen-config -w            # Write to ./.enxkit.toml
  enxkit gen-config --effective   # Show the values enxkit would use`

	MsgFlagWrite     = "Write config to ./.enxkit.toml instead of stdout"
	MsgFlagEffective = "Output the merged configuration instead of the defaults"
	MsgWritten       = "Wrote %s\n"
	MsgErrExists     = "%s already exists"
)

// FileName is the project config file written by -w
const FileName = ".enxkit.toml"

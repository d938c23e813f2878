package config

import (
	"strings"

	"github.com/wiloon/enxkit/pkg/deploy"
	"github.com/wiloon/enxkit/pkg/errors"
	"github.com/wiloon/enxkit/pkg/ui"
)

// Config is the resolved enxkit configuration
type Config struct {
	Deploy Deploy `koanf:"deploy" toml:"deploy"`
	Icons  Icons  `koanf:"icons" toml:"icons"`
	Log    Log    `koanf:"log" toml:"log"`
}

// Deploy configures the deploy command
type Deploy struct {
	Source      string `koanf:"source" toml:"source"`
	Destination string `koanf:"destination" toml:"destination"`
	Engine      string `koanf:"engine" toml:"engine"`
	Rollback    bool   `koanf:"rollback" toml:"rollback"`
	Format      string `koanf:"format" toml:"format"`
}

// Icons configures the icons command
type Icons struct {
	OutputDir string `koanf:"output_dir" toml:"output_dir"`
	SVG       bool   `koanf:"svg" toml:"svg"`
}

// Log configures logging
type Log struct {
	File bool `koanf:"file" toml:"file"`
}

// Validate checks values that cannot be expressed in the TOML schema
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Deploy.Source) == "" {
		return errors.New(errors.ErrConfigValid, "deploy.source must not be empty")
	}
	if _, err := deploy.ParseEngine(c.Deploy.Engine); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid deploy.engine").
			WithDetail("engine", c.Deploy.Engine)
	}
	if _, err := ui.ParseFormat(c.Deploy.Format); err != nil {
		return errors.Wrap(err, errors.ErrConfigValid, "invalid deploy.format").
			WithDetail("format", c.Deploy.Format)
	}
	if strings.TrimSpace(c.Icons.OutputDir) == "" {
		return errors.New(errors.ErrConfigValid, "icons.output_dir must not be empty")
	}
	return nil
}

// DeployOptions turns the deploy section into deploy.Options with the fixed
// replacement rule. The destination is resolved against the source.
func (c *Config) DeployOptions() (deploy.Options, error) {
	engine, err := deploy.ParseEngine(c.Deploy.Engine)
	if err != nil {
		return deploy.Options{}, err
	}
	return deploy.Options{
		SourceRoot: c.Deploy.Source,
		DestRoot:   deploy.ResolveDest(c.Deploy.Source, c.Deploy.Destination),
		Rule:       deploy.DefaultRule(),
		Engine:     engine,
		Rollback:   c.Deploy.Rollback,
	}, nil
}

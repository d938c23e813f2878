package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiloon/enxkit/pkg/deploy"
	"github.com/wiloon/enxkit/pkg/errors"
)

// isolate points every lookup location at empty temp directories
func isolate(t *testing.T) string {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, EnvPrefix) {
			name := strings.SplitN(kv, "=", 2)[0]
			t.Setenv(name, "")
			require.NoError(t, os.Unsetenv(name))
		}
	}
	return t.TempDir()
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}

func TestLoad_Defaults(t *testing.T) {
	workDir := isolate(t)

	cfg, err := Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)

	assert.Equal(t, "chrome-enx", cfg.Deploy.Source)
	assert.Equal(t, "public", cfg.Deploy.Destination)
	assert.Equal(t, "direct", cfg.Deploy.Engine)
	assert.True(t, cfg.Deploy.Rollback)
	assert.Equal(t, "auto", cfg.Deploy.Format)
	assert.Equal(t, "icons", cfg.Icons.OutputDir)
	assert.False(t, cfg.Icons.SVG)
	assert.True(t, cfg.Log.File)
}

func TestLoad_LayerPrecedence(t *testing.T) {
	workDir := isolate(t)

	writeFile(t, UserConfigPath(), `
[deploy]
source = "from-user"
engine = "synthfs"

[icons]
svg = true
`)
	writeFile(t, filepath.Join(workDir, ".enxkit.toml"), `
[deploy]
source = "from-project"
format = "json"
`)
	t.Setenv("ENXKIT_DEPLOY_FORMAT", "yaml")
	t.Setenv("ENXKIT_ICONS_OUTPUT_DIR", "assets/icons")

	cfg, err := Load(LoadOptions{
		WorkDir:   workDir,
		Overrides: map[string]interface{}{"deploy.destination": "/tmp/site"},
	})
	require.NoError(t, err)

	assert.Equal(t, "from-project", cfg.Deploy.Source, "project file beats user file")
	assert.Equal(t, "synthfs", cfg.Deploy.Engine, "user file beats defaults")
	assert.Equal(t, "yaml", cfg.Deploy.Format, "env beats project file")
	assert.Equal(t, "assets/icons", cfg.Icons.OutputDir, "env key keeps underscores after the section")
	assert.Equal(t, "/tmp/site", cfg.Deploy.Destination, "overrides beat everything")
	assert.True(t, cfg.Icons.SVG)
}

func TestLoad_EnvBooleans(t *testing.T) {
	workDir := isolate(t)
	t.Setenv("ENXKIT_LOG_FILE", "false")
	t.Setenv("ENXKIT_DEPLOY_ROLLBACK", "0")

	cfg, err := Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)
	assert.False(t, cfg.Log.File)
	assert.False(t, cfg.Deploy.Rollback)
}

func TestLoad_ProjectFileNames(t *testing.T) {
	workDir := isolate(t)
	writeFile(t, filepath.Join(workDir, "enxkit.toml"), "[deploy]\nsource = \"plain-name\"\n")

	cfg, err := Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)
	assert.Equal(t, "plain-name", cfg.Deploy.Source)

	writeFile(t, filepath.Join(workDir, ".enxkit.toml"), "[deploy]\nsource = \"dot-name\"\n")
	cfg, err = Load(LoadOptions{WorkDir: workDir})
	require.NoError(t, err)
	assert.Equal(t, "dot-name", cfg.Deploy.Source)
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	workDir := isolate(t)
	writeFile(t, filepath.Join(workDir, ".enxkit.toml"), "[deploy]\nsource = \"ignored\"\n")

	explicit := filepath.Join(t.TempDir(), "custom.toml")
	writeFile(t, explicit, "[deploy]\nsource = \"explicit\"\n")

	cfg, err := Load(LoadOptions{WorkDir: workDir, ConfigFile: explicit})
	require.NoError(t, err)
	assert.Equal(t, "explicit", cfg.Deploy.Source)

	_, err = Load(LoadOptions{WorkDir: workDir, ConfigFile: filepath.Join(workDir, "missing.toml")})
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		code    errors.ErrorCode
	}{
		{"malformed toml", "[deploy\nsource = ", errors.ErrConfigParse},
		{"unknown engine", "[deploy]\nengine = \"rsync\"\n", errors.ErrConfigValid},
		{"unknown format", "[deploy]\nformat = \"xml\"\n", errors.ErrConfigValid},
		{"empty source", "[deploy]\nsource = \"\"\n", errors.ErrConfigValid},
		{"empty icon dir", "[icons]\noutput_dir = \" \"\n", errors.ErrConfigValid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir := isolate(t)
			writeFile(t, filepath.Join(workDir, ".enxkit.toml"), tt.content)

			_, err := Load(LoadOptions{WorkDir: workDir})
			require.Error(t, err)
			assert.Equal(t, tt.code, errors.GetErrorCode(err))
		})
	}
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "deploy.source", envKey("ENXKIT_DEPLOY_SOURCE"))
	assert.Equal(t, "icons.output_dir", envKey("ENXKIT_ICONS_OUTPUT_DIR"))
	assert.Equal(t, "log.file", envKey("ENXKIT_LOG_FILE"))
}

func TestDeployOptions(t *testing.T) {
	cfg := &Config{Deploy: Deploy{Source: "chrome-enx", Destination: "public", Engine: "SYNTHFS", Rollback: true}}

	opts, err := cfg.DeployOptions()
	require.NoError(t, err)
	assert.Equal(t, "chrome-enx", opts.SourceRoot)
	assert.Equal(t, filepath.Join("chrome-enx", "public"), opts.DestRoot)
	assert.Equal(t, deploy.EngineSynthfs, opts.Engine)
	assert.Equal(t, deploy.DefaultRule(), opts.Rule)
	assert.True(t, opts.Rollback)

	cfg.Deploy.Destination = "/srv/site"
	opts, err = cfg.DeployOptions()
	require.NoError(t, err)
	assert.Equal(t, "/srv/site", opts.DestRoot)
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[deploy]")
	assert.Contains(t, content, `# source = "chrome-enx"`)
	assert.Contains(t, content, "# svg = false")
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("uncommented value line: %q", line)
	}

	// The generated file parses and sets nothing
	var parsed map[string]interface{}
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Empty(t, parsed["deploy"])
}

func TestEffectiveContent(t *testing.T) {
	workDir := isolate(t)
	cfg, err := Load(LoadOptions{WorkDir: workDir, Overrides: map[string]interface{}{"icons.svg": true}})
	require.NoError(t, err)

	content, err := EffectiveContent(cfg)
	require.NoError(t, err)

	var roundTrip Config
	require.NoError(t, toml.Unmarshal([]byte(content), &roundTrip))
	assert.Equal(t, *cfg, roundTrip)
	assert.Contains(t, content, "output_dir = 'icons'")
}

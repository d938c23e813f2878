package ui_test

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/wiloon/enxkit/pkg/deploy"
	"github.com/wiloon/enxkit/pkg/ui"
)

func samplePlan() *deploy.Plan {
	return &deploy.Plan{
		SourceRoot: "/src",
		DestRoot:   "/src/public",
		Skipped:    1,
		Actions: []deploy.Action{
			{Type: deploy.ActionReset, Target: "/src/public"},
			{Type: deploy.ActionWrite, RelPath: "a.txt", Size: 30, Replacements: 1},
			{Type: deploy.ActionCopy, RelPath: "b.bin", Size: 4},
		},
	}
}

func TestNewRenderer(t *testing.T) {
	tests := []struct {
		name        string
		format      ui.Format
		expectError bool
	}{
		{"terminal", ui.FormatTerminal, false},
		{"text", ui.FormatText, false},
		{"json", ui.FormatJSON, false},
		{"yaml", ui.FormatYAML, false},
		{"auto with buffer falls back to text", ui.FormatAuto, false},
		{"invalid", ui.Format(999), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			renderer, err := ui.NewRenderer(tt.format, &bytes.Buffer{})
			if tt.expectError {
				assert.Error(t, err)
				assert.Nil(t, renderer)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, renderer)
		})
	}
}

func TestTextRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewTextRenderer(&buf)

	require.NoError(t, r.RenderSummary(deploy.Summary{Files: 2, Bytes: 34}))
	assert.Equal(t, "Copied 2 files, total 34 bytes.\n", buf.String())

	buf.Reset()
	require.NoError(t, r.RenderPlan(samplePlan()))
	assert.Equal(t,
		"write a.txt (30 bytes, 1 replacements)\n"+
			"copy  b.bin (4 bytes)\n"+
			"Would copy 2 files, total 34 bytes.\n",
		buf.String())
}

func TestTerminalRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewTerminalRenderer(&buf)

	require.NoError(t, r.RenderSummary(deploy.Summary{Files: 2, Bytes: 34, TextFiles: 1, BinaryFiles: 1}))
	out := buf.String()
	assert.Contains(t, out, "Copied")
	assert.Contains(t, out, "34")
	assert.Equal(t, 1, strings.Count(out, "\n"), "summary is a single line")
	assert.NotContains(t, out, "binary")

	buf.Reset()
	require.NoError(t, r.RenderPlan(samplePlan()))
	out = buf.String()
	assert.Contains(t, out, "Dry run")
	assert.Contains(t, out, "a.txt")
	assert.Contains(t, out, "b.bin")
	assert.Contains(t, out, "1 text (1 replacements), 1 binary, 1 skipped")
	assert.Contains(t, out, "Would copy")
}

func TestNewRenderer_AutoFallsBackToText(t *testing.T) {
	var buf bytes.Buffer
	r, err := ui.NewRenderer(ui.FormatAuto, &buf)
	require.NoError(t, err)
	assert.IsType(t, &ui.TextRenderer{}, r)

	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	r, err = ui.NewRenderer(ui.FormatAuto, f)
	require.NoError(t, err)
	assert.IsType(t, &ui.TextRenderer{}, r)
}

func TestJSONRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewJSONRenderer(&buf)

	require.NoError(t, r.RenderSummary(deploy.Summary{Files: 2, Bytes: 34, TextFiles: 1, BinaryFiles: 1, Replacements: 1}))

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, float64(2), got["files"])
	assert.Equal(t, float64(34), got["bytes"])
	assert.Equal(t, false, got["dry_run"])
	assert.NotContains(t, got, "Duration")

	buf.Reset()
	require.NoError(t, r.RenderPlan(samplePlan()))

	var view ui.PlanView
	require.NoError(t, json.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "/src/public", view.Destination)
	require.Len(t, view.Files, 2)
	assert.Equal(t, ui.PlanEntry{Action: "write", Path: "a.txt", Bytes: 30, Replacements: 1}, view.Files[0])
	assert.True(t, view.Summary.DryRun)
	assert.Equal(t, 1, view.Summary.Skipped)
}

func TestYAMLRenderer(t *testing.T) {
	var buf bytes.Buffer
	r := ui.NewYAMLRenderer(&buf)

	require.NoError(t, r.RenderSummary(deploy.Summary{Files: 2, Bytes: 34}))
	assert.Contains(t, buf.String(), "files: 2\n")
	assert.Contains(t, buf.String(), "bytes: 34\n")

	buf.Reset()
	require.NoError(t, r.RenderPlan(samplePlan()))

	var view ui.PlanView
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &view))
	assert.Equal(t, "/src", view.Source)
	assert.Len(t, view.Files, 2)
	assert.Equal(t, int64(34), view.Summary.Bytes)
}

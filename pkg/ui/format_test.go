package ui_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wiloon/enxkit/pkg/errors"
	"github.com/wiloon/enxkit/pkg/ui"
)

func TestFormatString(t *testing.T) {
	tests := []struct {
		format   ui.Format
		expected string
	}{
		{ui.FormatAuto, "auto"},
		{ui.FormatTerminal, "term"},
		{ui.FormatText, "text"},
		{ui.FormatJSON, "json"},
		{ui.FormatYAML, "yaml"},
		{ui.Format(999), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.format.String())
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected ui.Format
		wantErr  bool
	}{
		{"auto", "auto", ui.FormatAuto, false},
		{"empty string is auto", "", ui.FormatAuto, false},
		{"term", "term", ui.FormatTerminal, false},
		{"terminal", "terminal", ui.FormatTerminal, false},
		{"text", "text", ui.FormatText, false},
		{"plain", "plain", ui.FormatText, false},
		{"json upper case", "JSON", ui.FormatJSON, false},
		{"yaml", "yaml", ui.FormatYAML, false},
		{"yml", "yml", ui.FormatYAML, false},
		{"invalid", "xml", ui.FormatAuto, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ui.ParseFormat(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestFormatsAreParseable(t *testing.T) {
	for _, name := range ui.Formats {
		_, err := ui.ParseFormat(name)
		assert.NoError(t, err, name)
	}
}

func TestDetectFormat(t *testing.T) {
	t.Run("NO_COLOR forces text", func(t *testing.T) {
		t.Setenv("NO_COLOR", "1")
		assert.Equal(t, ui.FormatText, ui.DetectFormat(os.Stdout))
	})

	t.Run("regular file is not a terminal", func(t *testing.T) {
		f, err := os.CreateTemp(t.TempDir(), "out")
		require.NoError(t, err)
		defer func() { _ = f.Close() }()

		assert.Equal(t, ui.FormatText, ui.DetectFormat(f))
	})

	t.Run("nil output", func(t *testing.T) {
		assert.Equal(t, ui.FormatText, ui.DetectFormat(nil))
	})
}

func TestResolve(t *testing.T) {
	assert.Equal(t, ui.FormatJSON, ui.Resolve(ui.FormatJSON, nil))
	assert.Equal(t, ui.FormatText, ui.Resolve(ui.FormatAuto, nil))
}

// Package styles holds the lipgloss styles used for terminal output. The
// style sheet lives in styles.yaml and is embedded in the binary.
package styles

import (
	_ "embed"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/wiloon/enxkit/pkg/errors"
)

//go:embed styles.yaml
var defaultStyles []byte

// sheetFile is the YAML layout of a style sheet
type sheetFile struct {
	Colors map[string]struct {
		Light string `yaml:"light"`
		Dark  string `yaml:"dark"`
	} `yaml:"colors"`
	Styles map[string]struct {
		Bold         bool   `yaml:"bold"`
		Underline    bool   `yaml:"underline"`
		Foreground   string `yaml:"foreground"`
		MarginBottom int    `yaml:"marginBottom"`
	} `yaml:"styles"`
}

// Sheet is a parsed style sheet
type Sheet struct {
	styles map[string]lipgloss.Style
}

var current *Sheet

func init() {
	if err := LoadStyles(defaultStyles); err != nil {
		panic("embedded styles: " + err.Error())
	}
}

// Parse builds a sheet from YAML. A foreground is either a palette name or
// a literal "#rrggbb"; unknown palette names are rejected.
func Parse(data []byte) (*Sheet, error) {
	var file sheetFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}

	sheet := &Sheet{styles: make(map[string]lipgloss.Style, len(file.Styles))}
	for name, def := range file.Styles {
		style := lipgloss.NewStyle().Bold(def.Bold).Underline(def.Underline)
		if def.MarginBottom > 0 {
			style = style.MarginBottom(def.MarginBottom)
		}

		switch fg := def.Foreground; {
		case fg == "":
		case strings.HasPrefix(fg, "#"):
			style = style.Foreground(lipgloss.Color(fg))
		default:
			c, ok := file.Colors[fg]
			if !ok {
				return nil, errors.Newf(errors.ErrConfigValid, "style %s uses unknown color %s", name, fg).
					WithDetail("style", name)
			}
			style = style.Foreground(lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Dark})
		}
		sheet.styles[name] = style
	}
	return sheet, nil
}

// Names lists the styles of the sheet in sorted order
func (s *Sheet) Names() []string {
	names := make([]string, 0, len(s.styles))
	for name := range s.styles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LoadStyles parses data and makes it the active sheet
func LoadStyles(data []byte) error {
	sheet, err := Parse(data)
	if err != nil {
		return err
	}
	current = sheet
	return nil
}

// GetStyle returns the named style of the active sheet, or an empty style
func GetStyle(name string) lipgloss.Style {
	if style, ok := current.styles[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

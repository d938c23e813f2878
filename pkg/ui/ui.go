// Package ui renders deploy results in the selected output format.
// It supports terminal (styled), text (plain), JSON and YAML output.
package ui

import (
	"io"
	"os"

	"github.com/wiloon/enxkit/pkg/deploy"
	"github.com/wiloon/enxkit/pkg/errors"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	// RenderSummary renders the result of a finished run
	RenderSummary(summary deploy.Summary) error

	// RenderPlan renders a dry-run plan followed by its summary
	RenderPlan(plan *deploy.Plan) error
}

// PlanEntry is the structured form of one planned file
type PlanEntry struct {
	Action       string `json:"action" yaml:"action"`
	Path         string `json:"path" yaml:"path"`
	Bytes        int64  `json:"bytes" yaml:"bytes"`
	Replacements int    `json:"replacements,omitempty" yaml:"replacements,omitempty"`
}

// PlanView is the structured form of a dry run
type PlanView struct {
	Source      string         `json:"source" yaml:"source"`
	Destination string         `json:"destination" yaml:"destination"`
	Files       []PlanEntry    `json:"files" yaml:"files"`
	Summary     deploy.Summary `json:"summary" yaml:"summary"`
}

// NewPlanView flattens a plan into the structured form. The destination
// reset is implied and left out.
func NewPlanView(plan *deploy.Plan) PlanView {
	view := PlanView{
		Source:      plan.SourceRoot,
		Destination: plan.DestRoot,
		Files:       make([]PlanEntry, 0, len(plan.Actions)),
		Summary:     plan.Summary(),
	}
	for _, a := range plan.Actions {
		if !a.IsFile() {
			continue
		}
		view.Files = append(view.Files, PlanEntry{
			Action:       string(a.Type),
			Path:         a.RelPath,
			Bytes:        a.Size,
			Replacements: a.Replacements,
		})
	}
	return view
}

// NewRenderer creates a new renderer based on the specified format.
// It detects terminal capabilities when format is Auto.
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format {
	case FormatAuto:
		file, _ := output.(*os.File)
		return NewRenderer(Resolve(format, file), output)
	case FormatTerminal:
		return NewTerminalRenderer(output), nil
	case FormatText:
		return NewTextRenderer(output), nil
	case FormatJSON:
		return NewJSONRenderer(output), nil
	case FormatYAML:
		return NewYAMLRenderer(output), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}

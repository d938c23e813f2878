package ui

import (
	"fmt"
	"io"

	"github.com/wiloon/enxkit/pkg/deploy"
)

// TextRenderer prints plain lines without colors or styling
type TextRenderer struct {
	output io.Writer
}

// NewTextRenderer creates a new text renderer
func NewTextRenderer(output io.Writer) *TextRenderer {
	return &TextRenderer{output: output}
}

// RenderSummary prints the one-line report
func (r *TextRenderer) RenderSummary(summary deploy.Summary) error {
	_, err := fmt.Fprintln(r.output, summary.Line())
	return err
}

// RenderPlan prints one line per planned file, then the summary
func (r *TextRenderer) RenderPlan(plan *deploy.Plan) error {
	view := NewPlanView(plan)
	for _, f := range view.Files {
		line := fmt.Sprintf("%-5s %s (%d bytes", f.Action, f.Path, f.Bytes)
		if f.Replacements > 0 {
			line += fmt.Sprintf(", %d replacements", f.Replacements)
		}
		if _, err := fmt.Fprintln(r.output, line+")"); err != nil {
			return err
		}
	}
	return r.RenderSummary(view.Summary)
}

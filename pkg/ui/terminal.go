package ui

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/wiloon/enxkit/pkg/deploy"
	"github.com/wiloon/enxkit/pkg/output/styles"
)

// TerminalRenderer provides styled terminal output
type TerminalRenderer struct {
	output io.Writer
}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer(output io.Writer) *TerminalRenderer {
	return &TerminalRenderer{output: output}
}

// RenderSummary prints the one-line report with the counters highlighted
func (r *TerminalRenderer) RenderSummary(summary deploy.Summary) error {
	count := styles.GetStyle("Count")
	verb := "Copied"
	lead := styles.GetStyle("Success")
	if summary.DryRun {
		verb = "Would copy"
		lead = styles.GetStyle("Warning")
	}

	line := fmt.Sprintf("%s %s files, total %s bytes.",
		lead.Render(verb),
		count.Render(strconv.Itoa(summary.Files)),
		count.Render(strconv.FormatInt(summary.Bytes, 10)))

	_, err := fmt.Fprintln(r.output, line)
	return err
}

// RenderPlan prints a banner, a table of planned files, the per-kind
// breakdown and the summary
func (r *TerminalRenderer) RenderPlan(plan *deploy.Plan) error {
	view := NewPlanView(plan)

	banner := styles.GetStyle("DryRunBanner").Render("Dry run: " + view.Destination + " is left untouched")
	if _, err := fmt.Fprintln(r.output, banner); err != nil {
		return err
	}

	if len(view.Files) > 0 {
		data := pterm.TableData{{"Action", "Path", "Bytes", "Replacements"}}
		for _, f := range view.Files {
			data = append(data, []string{
				f.Action,
				styles.GetStyle("FilePath").Render(f.Path),
				strconv.FormatInt(f.Bytes, 10),
				strconv.Itoa(f.Replacements),
			})
		}
		table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(r.output, table); err != nil {
			return err
		}
	}

	s := view.Summary
	details := fmt.Sprintf("%d text (%d replacements), %d binary, %d skipped",
		s.TextFiles, s.Replacements, s.BinaryFiles, s.Skipped)
	if _, err := fmt.Fprintln(r.output, styles.GetStyle("Muted").Render(details)); err != nil {
		return err
	}

	return r.RenderSummary(s)
}

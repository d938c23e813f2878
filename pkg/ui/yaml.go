package ui

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/wiloon/enxkit/pkg/deploy"
)

// YAMLRenderer provides YAML output for machine consumption
type YAMLRenderer struct {
	output io.Writer
}

// NewYAMLRenderer creates a new YAML renderer
func NewYAMLRenderer(output io.Writer) *YAMLRenderer {
	return &YAMLRenderer{output: output}
}

// RenderSummary renders the summary as YAML
func (r *YAMLRenderer) RenderSummary(summary deploy.Summary) error {
	return r.encode(summary)
}

// RenderPlan renders the plan view as one YAML document
func (r *YAMLRenderer) RenderPlan(plan *deploy.Plan) error {
	return r.encode(NewPlanView(plan))
}

func (r *YAMLRenderer) encode(v interface{}) error {
	encoder := yaml.NewEncoder(r.output)
	encoder.SetIndent(2)
	if err := encoder.Encode(v); err != nil {
		return err
	}
	return encoder.Close()
}

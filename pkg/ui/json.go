package ui

import (
	"encoding/json"
	"io"

	"github.com/wiloon/enxkit/pkg/deploy"
)

// JSONRenderer provides JSON output for machine consumption
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSONRenderer creates a new JSON renderer
func NewJSONRenderer(output io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(output)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

// RenderSummary renders the summary as JSON
func (r *JSONRenderer) RenderSummary(summary deploy.Summary) error {
	return r.encoder.Encode(summary)
}

// RenderPlan renders the plan view as one JSON document
func (r *JSONRenderer) RenderPlan(plan *deploy.Plan) error {
	return r.encoder.Encode(NewPlanView(plan))
}

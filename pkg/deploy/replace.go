package deploy

import (
	"strings"

	"github.com/wiloon/enxkit/pkg/errors"
)

// The hostname pair rewritten in every text file. It is intentionally not
// configurable.
const (
	MatchText       = "enx.wiloon.com"
	ReplacementText = "enx-dev.wiloon.com"
)

// DefaultRule returns the fixed production-to-dev hostname rule
func DefaultRule() ReplacementRule {
	return ReplacementRule{FromText: MatchText, ToText: ReplacementText}
}

// ReplacementRule defines a single literal text replacement
type ReplacementRule struct {
	// FromText is the text to replace. Matching is case-sensitive.
	FromText string

	// ToText is the replacement text
	ToText string
}

// ReplacementResult contains the results of applying a rule to some content
type ReplacementResult struct {
	// WasModified indicates if any replacements were made
	WasModified bool

	// ReplacementCount is the number of replacements made
	ReplacementCount int

	// Content is the content after replacements
	Content string
}

// Validate checks that the rule can be applied
func (r ReplacementRule) Validate() error {
	if r.FromText == "" {
		return errors.New(errors.ErrInvalidInput, "replacement match text must not be empty")
	}
	return nil
}

// Apply replaces every non-overlapping occurrence of FromText, left to right
func (r ReplacementRule) Apply(content string) ReplacementResult {
	if r.FromText == "" {
		return ReplacementResult{Content: content}
	}
	count := strings.Count(content, r.FromText)
	if count == 0 {
		return ReplacementResult{Content: content}
	}
	return ReplacementResult{
		WasModified:      true,
		ReplacementCount: count,
		Content:          strings.ReplaceAll(content, r.FromText, r.ToText),
	}
}

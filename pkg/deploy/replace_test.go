package deploy

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/wiloon/enxkit/pkg/errors"
)

func TestReplacementRule_Apply(t *testing.T) {
	tests := []struct {
		name     string
		rule     ReplacementRule
		content  string
		expected string
		count    int
	}{
		{
			name:     "single occurrence",
			rule:     DefaultRule(),
			content:  "visit enx.wiloon.com today",
			expected: "visit enx-dev.wiloon.com today",
			count:    1,
		},
		{
			name:     "several occurrences",
			rule:     DefaultRule(),
			content:  "https://enx.wiloon.com/a https://enx.wiloon.com/b",
			expected: "https://enx-dev.wiloon.com/a https://enx-dev.wiloon.com/b",
			count:    2,
		},
		{
			name:     "no match",
			rule:     DefaultRule(),
			content:  "localhost:8080",
			expected: "localhost:8080",
		},
		{
			name:     "case sensitive",
			rule:     DefaultRule(),
			content:  "ENX.WILOON.COM",
			expected: "ENX.WILOON.COM",
		},
		{
			name:     "replacement contains match is not rescanned",
			rule:     ReplacementRule{FromText: "a", ToText: "aa"},
			content:  "aaa",
			expected: "aaaaaa",
			count:    3,
		},
		{
			name:     "non-overlapping left to right",
			rule:     ReplacementRule{FromText: "aa", ToText: "b"},
			content:  "aaa",
			expected: "ba",
			count:    1,
		},
		{
			name:     "empty content",
			rule:     DefaultRule(),
			content:  "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.rule.Apply(tt.content)
			assert.Equal(t, tt.expected, result.Content)
			assert.Equal(t, tt.count, result.ReplacementCount)
			assert.Equal(t, tt.count > 0, result.WasModified)
		})
	}
}

func TestReplacementRule_Validate(t *testing.T) {
	assert.NoError(t, DefaultRule().Validate())
	assert.NoError(t, ReplacementRule{FromText: "x"}.Validate())

	err := ReplacementRule{ToText: "x"}.Validate()
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestDefaultRule(t *testing.T) {
	rule := DefaultRule()
	assert.Equal(t, "enx.wiloon.com", rule.FromText)
	assert.Equal(t, "enx-dev.wiloon.com", rule.ToText)
}

package config

import (
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/wiloon/enxkit/pkg/errors"
)

// GenerateConfigContent returns the embedded defaults with every value
// commented out, ready to be saved as a starting config file
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// EffectiveContent marshals a resolved configuration as TOML
func EffectiveContent(cfg *Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal configuration")
	}
	return string(data), nil
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	result := make([]string, 0, len(lines))

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		switch {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
			result = append(result, line)
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
			// Section headers stay active
			result = append(result, line)
		default:
			result = append(result, "# "+line)
		}
	}

	return strings.Join(result, "\n")
}

package helpblock

import (
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/byte4ever/helpmerge/helpdoc/example"
)

// Help is the part of a command help block the merge
// reads. Unknown keys are ignored.
type Help struct {
	Type     string           `yaml:"type"`
	Short    string           `yaml:"short-summary"`
	Long     string           `yaml:"long-summary"`
	Examples []example.Record `yaml:"examples"`

	// HasExamplesKey is true when the block declares
	// "examples", even with an empty value.
	HasExamplesKey bool `yaml:"-"`
}

// Parse decodes the YAML body of a help block. The block
// may be indented as a whole; the common indentation is
// removed before decoding.
func Parse(lines []string) (*Help, error) {
	const errCtx = "parsing help block"

	src := dedent(lines)
	if strings.TrimSpace(src) == "" {
		return &Help{}, nil
	}

	var help Help
	if err := yaml.Unmarshal([]byte(src), &help); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var keys map[string]any
	if err := yaml.Unmarshal([]byte(src), &keys); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	_, help.HasExamplesKey = keys[examplesKey]

	return &help, nil
}

// dedent joins lines after stripping the indentation
// shared by every non-blank line.
func dedent(lines []string) string {
	common := -1

	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}

		n := len(leadingSpaces(line))
		if common < 0 || n < common {
			common = n
		}
	}

	var sb strings.Builder

	for _, line := range lines {
		body := strings.TrimRight(line, "\r\n")

		if strings.TrimSpace(body) == "" {
			sb.WriteString("\n")

			continue
		}

		sb.WriteString(body[common:])
		sb.WriteString("\n")
	}

	return sb.String()
}

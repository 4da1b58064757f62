// Package source loads generated command help documents, the input the
// examples are merged from. A source file maps command names to help
// documents; each document is either a YAML string or an inline mapping.
package source

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"

	"github.com/byte4ever/helpmerge/helpdoc/example"
)

// Help is a generated help document.
type Help struct {
	Type     string           `json:"type" yaml:"type"`
	Short    string           `json:"short-summary" yaml:"short-summary"`
	Examples []example.Record `json:"examples" yaml:"examples"`
}

// Helps maps command names to generated help documents.
type Helps map[string]Help

// Load reads the source file at path. Files ending in
// ".json" are decoded as JSON, anything else as YAML.
func Load(path string) (Helps, error) {
	const errCtx = "loading generated helps"

	raw, err := os.ReadFile(path) //nolint:gosec // path from CLI flag
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var helps Helps

	if strings.EqualFold(filepath.Ext(path), ".json") {
		helps, err = DecodeJSON(raw)
	} else {
		helps, err = DecodeYAML(raw)
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", errCtx, path, err)
	}

	return helps, nil
}

// DecodeYAML decodes a YAML source document.
func DecodeYAML(raw []byte) (Helps, error) {
	const errCtx = "decoding yaml helps"

	var docs map[string]any
	if err := yaml.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	helps := make(Helps, len(docs))

	for cmd, doc := range docs {
		src, ok := doc.(string)
		if !ok {
			b, err := yaml.Marshal(doc)
			if err != nil {
				return nil, fmt.Errorf(
					"%s: %s: %w", errCtx, cmd, err,
				)
			}

			src = string(b)
		}

		var h Help
		if err := yaml.Unmarshal([]byte(src), &h); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", errCtx, cmd, err)
		}

		helps[strings.TrimSpace(cmd)] = h
	}

	return helps, nil
}

// DecodeJSON decodes a JSON source document. String
// values hold YAML help documents.
func DecodeJSON(raw []byte) (Helps, error) {
	const errCtx = "decoding json helps"

	var docs map[string]json.RawMessage
	if err := json.Unmarshal(raw, &docs); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	helps := make(Helps, len(docs))

	for cmd, doc := range docs {
		var (
			h   Help
			src string
		)

		if err := json.Unmarshal(doc, &src); err == nil {
			if err := yaml.Unmarshal([]byte(src), &h); err != nil {
				return nil, fmt.Errorf(
					"%s: %s: %w", errCtx, cmd, err,
				)
			}
		} else if err := json.Unmarshal(doc, &h); err != nil {
			return nil, fmt.Errorf("%s: %s: %w", errCtx, cmd, err)
		}

		helps[strings.TrimSpace(cmd)] = h
	}

	return helps, nil
}

// Examples returns the examples of every command that
// has at least one.
func (h Helps) Examples() map[string][]example.Record {
	out := make(map[string][]example.Record, len(h))

	for cmd, help := range h {
		if len(help.Examples) == 0 {
			continue
		}

		out[cmd] = help.Examples
	}

	return out
}

// Commands returns the command names in sorted order.
func (h Helps) Commands() []string {
	cmds := make([]string, 0, len(h))
	for cmd := range h {
		cmds = append(cmds, cmd)
	}

	sort.Strings(cmds)

	return cmds
}

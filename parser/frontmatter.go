package parser

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// SplitFrontMatter splits a leading YAML front matter document off
// content. Front matter starts with a "---" line at the very top and
// ends at the next "---" (or "...") line. When content carries no front
// matter, meta is nil and body is content unchanged. A delimited block
// that is not valid YAML returns an error with the original content as
// body so callers can fall back to parsing it as Markdown.
func SplitFrontMatter(content string) (meta map[string]any, body string, err error) {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != "---" {
		return nil, content, nil
	}

	end := -1
	for i := 1; i < len(lines); i++ {
		if t := strings.TrimRight(lines[i], "\r"); t == "---" || t == "..." {
			end = i
			break
		}
	}
	if end == -1 {
		return nil, content, nil
	}

	raw := strings.Join(lines[1:end], "\n")
	meta = map[string]any{}
	if err := yaml.Unmarshal([]byte(raw), &meta); err != nil {
		return nil, content, fmt.Errorf("failed to parse front matter: %w", err)
	}

	return meta, strings.Join(lines[end+1:], "\n"), nil
}

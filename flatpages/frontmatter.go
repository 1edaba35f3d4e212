package flatpages

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// fenceRegexp matches a front matter fence line.
var fenceRegexp = regexp.MustCompile(`(?m)^\s*\+\+\+\s*$`)

// splitFrontMatter splits a file into its front matter and Markdown body.
// Files without a leading fence pair are all body.
func splitFrontMatter(b []byte) (fm, body []byte) {
	subs := fenceRegexp.Split(string(b), 3)
	if len(subs) != 3 {
		return nil, b
	}
	if s := strings.TrimSpace(subs[0]); len(s) > 0 {
		return nil, b
	}
	return []byte(strings.TrimSpace(subs[1])), []byte(strings.TrimSpace(subs[2]))
}

// parseFrontMatter splits and decodes the front matter, returning the meta
// map and the Markdown body. The map is never nil.
func parseFrontMatter(b []byte) (map[string]any, []byte, error) {
	fm, body := splitFrontMatter(b)
	meta := make(map[string]any)
	if len(fm) > 0 {
		if err := toml.Unmarshal(fm, &meta); err != nil {
			return nil, nil, fmt.Errorf("parseFrontMatter: %w", err)
		}
	}
	return meta, body, nil
}

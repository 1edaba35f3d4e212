package flatpages

import (
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/russross/blackfriday/v2"
)

// Page is a single content file after loading: its slug, front matter, and
// rendered body. Pages are immutable once loaded; a reload builds new ones.
type Page struct {
	Name    string         // file path without the ".md" extension
	Meta    map[string]any // decoded TOML front matter, never nil
	Content template.HTML  // body rendered from Markdown
	ModTime time.Time      // mod time of the underlying file
}

// Title returns the front matter title, falling back to the last path
// element of the page name.
func (p *Page) Title() string {
	if t, ok := p.Meta["title"].(string); ok && t != "" {
		return t
	}
	return path.Base(p.Name)
}

// Template returns the template name the front matter asks for, or the
// empty string when the page does not choose one.
func (p *Page) Template() string {
	t, _ := p.Meta["template"].(string)
	return t
}

// Tags returns the front matter tags, if any.
func (p *Page) Tags() []string {
	raw, ok := p.Meta["tags"].([]any)
	if !ok {
		return nil
	}
	tags := make([]string, 0, len(raw))
	for _, v := range raw {
		if s, ok := v.(string); ok {
			tags = append(tags, s)
		}
	}
	return tags
}

// loadPage reads one Markdown file and turns it into a Page.
func (s *Store) loadPage(filename string) (*Page, error) {
	b, err := fs.ReadFile(s.fsys, filename)
	if err != nil {
		return nil, fmt.Errorf("loadPage: %w", err)
	}
	meta, body, err := parseFrontMatter(b)
	if err != nil {
		return nil, fmt.Errorf("loadPage %q: %w", filename, err)
	}
	p := &Page{
		Name:    strings.TrimSuffix(filename, ".md"),
		Meta:    meta,
		Content: template.HTML(blackfriday.Run(body)),
	}
	if fi, err := fs.Stat(s.fsys, filename); err == nil {
		p.ModTime = fi.ModTime()
	}
	return p, nil
}

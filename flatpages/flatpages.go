/*
Package flatpages loads a folder of Markdown files into an in-memory page
store suitable for serving a small website.

Each "*.md" file below the root becomes a Page whose name is the file path
without the extension (for example "articles/first-post"). Files may start
with TOML front matter delimited by "+++" lines:

	+++
	title = "My first post"
	date = 2024-01-01
	+++
	# Heading
	Body in [Markdown](https://en.wikipedia.org/wiki/Markdown).

The front matter is kept as an untyped key/value map so that pages can carry
whatever keys their templates need. The Markdown body is rendered to HTML at
load time.

Hidden files and folders (those starting with a period), the "template" and
"static" folders, and the site configuration file are never loaded as pages.

Pages iterate in name order, so the store yields a deterministic sequence
across loads of the same content.
*/
package flatpages

import (
	"fmt"
	"io/fs"
	"log"
	"sort"
	"strings"
	"sync"
)

// Store holds the pages loaded from a file system.
type Store struct {
	fsys fs.FS

	mu     sync.RWMutex
	pages  []*Page
	byName map[string]*Page
}

// New returns a Store reading from fsys. Call Load before use.
func New(fsys fs.FS) *Store {
	return &Store{fsys: fsys}
}

// Load reads all Markdown files below the root, replacing any previously
// loaded pages. Pages end up sorted by name.
func (s *Store) Load() error {
	var (
		pages  []*Page
		byName = make(map[string]*Page)
	)
	err := fs.WalkDir(s.fsys, ".", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("load: %w", err)
		}
		if d.IsDir() {
			if path != "." && skipFolder(path) {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".md") || containsSpecialFile(path) {
			return nil
		}
		p, err := s.loadPage(path)
		if err != nil {
			return err
		}
		pages = append(pages, p)
		byName[p.Name] = p
		return nil
	})
	if err != nil {
		return err
	}
	sort.Slice(pages, func(i, j int) bool { return pages[i].Name < pages[j].Name })

	s.mu.Lock()
	s.pages = pages
	s.byName = byName
	s.mu.Unlock()
	log.Printf("flatpages: loaded %d pages", len(pages))
	return nil
}

// Reload re-reads the content root. It is safe to call while requests
// are being served.
func (s *Store) Reload() error {
	return s.Load()
}

// Pages returns the loaded pages in name order. The returned slice is a
// copy and may be reordered by the caller.
func (s *Store) Pages() []*Page {
	s.mu.RLock()
	defer s.mu.RUnlock()
	pages := make([]*Page, len(s.pages))
	copy(pages, s.pages)
	return pages
}

// Page looks up a single page by name.
func (s *Store) Page(name string) (*Page, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byName[name]
	return p, ok
}

// Len reports the number of loaded pages.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.pages)
}

// skipFolder reports whether an entire folder should be left out of the
// page walk.
func skipFolder(name string) bool {
	if containsSpecialFile(name) {
		return true
	}
	switch name {
	case "template", "static":
		return true
	}
	return false
}

// containsSpecialFile reports whether name contains a path element starting
// with a period. The name is assumed to be delimited by forward slashes, as
// guaranteed by the fs.FS interface.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

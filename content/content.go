/*
Package content derives the website's views from a page source: the home
page, the dated archive, and lookup by name.

The index keeps no state of its own. Every call reads a fresh snapshot from
the source, so concurrent calls are independent and a reload of the source
is picked up by the next request.
*/
package content

import (
	"sort"
	"time"

	"github.com/inkwell-sh/inkwell/flatpages"
)

// Source supplies pages in a stable iteration order. *flatpages.Store
// satisfies it.
type Source interface {
	Pages() []*flatpages.Page
	Page(name string) (*flatpages.Page, bool)
}

// Index answers page queries against a Source.
type Index struct {
	src Source
}

// NewIndex returns an Index reading from src.
func NewIndex(src Source) Index {
	return Index{src: src}
}

// Home returns the first page in the source's iteration order. It returns
// ErrNoPages when the source is empty.
func (ix Index) Home() (*flatpages.Page, error) {
	pages := ix.src.Pages()
	if len(pages) == 0 {
		return nil, ErrNoPages
	}
	return pages[0], nil
}

// Archive returns the pages carrying a "date" in their front matter, most
// recent first. Pages with equal dates keep their source order. A "date"
// value that cannot be read as a date yields a *MetadataError.
func (ix Index) Archive() ([]*flatpages.Page, error) {
	type dated struct {
		page *flatpages.Page
		date time.Time
	}
	var entries []dated
	for _, p := range ix.src.Pages() {
		t, ok, err := pageDate(p)
		if err != nil {
			return nil, err
		}
		if ok {
			entries = append(entries, dated{page: p, date: t})
		}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[j].date.Before(entries[i].date) })
	pages := make([]*flatpages.Page, len(entries))
	for i, e := range entries {
		pages[i] = e.page
	}
	return pages, nil
}

// ByName looks up a page by name. It returns ErrNotFound when no page has
// that name; callers are expected to turn that into a not-found response.
func (ix Index) ByName(name string) (*flatpages.Page, error) {
	p, ok := ix.src.Page(name)
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

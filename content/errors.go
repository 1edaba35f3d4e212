package content

import (
	"errors"
	"fmt"
)

// ErrNoPages is returned when a view needs at least one page and the
// source has none.
var ErrNoPages = errors.New("content: no pages loaded")

// ErrNotFound is returned when no page has the requested name. It is an
// expected outcome, not a fault; handlers translate it into a 404.
var ErrNotFound = errors.New("content: page not found")

// MetadataError reports a front matter value that cannot be used, such as
// a "date" that is not a date. It points at a content-authoring mistake
// and should be surfaced loudly rather than dropped.
type MetadataError struct {
	Page  string // page name
	Key   string // offending front matter key
	Value any    // the value found
}

func (e *MetadataError) Error() string {
	return fmt.Sprintf("content: page %q has invalid %s: %v (%T)", e.Page, e.Key, e.Value, e.Value)
}

package content

import (
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/inkwell-sh/inkwell/flatpages"
)

// dateLayouts are the string forms accepted for a "date" value.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02 15:04:05",
}

// pageDate reads the "date" front matter key. ok is false when the page
// has no date at all. A date that is present but unreadable yields a
// *MetadataError.
func pageDate(p *flatpages.Page) (t time.Time, ok bool, err error) {
	raw, present := p.Meta["date"]
	if !present {
		return time.Time{}, false, nil
	}
	switch v := raw.(type) {
	case time.Time:
		return v, true, nil
	case toml.LocalDate:
		return v.AsTime(time.UTC), true, nil
	case toml.LocalDateTime:
		return v.AsTime(time.UTC), true, nil
	case string:
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, v); err == nil {
				return t, true, nil
			}
		}
	}
	return time.Time{}, false, &MetadataError{Page: p.Name, Key: "date", Value: raw}
}

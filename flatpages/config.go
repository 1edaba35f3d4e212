package flatpages

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// ConfigFile is the name of the site configuration file at the content root.
// It is never served or loaded as a page.
const ConfigFile = "site.cfg"

// Config contains site-wide settings from the site.cfg file.
type Config struct {
	Title         string            `toml:"title"`         // site title, available to templates
	Expires       Duration          `toml:"expires"`       // Expires header for rendered pages
	StaticExpires Duration          `toml:"staticexpires"` // Expires header for static assets
	Headers       map[string]string `toml:"headers"`       // extra response headers
}

// Config reads the site configuration. A missing file is not an error; the
// zero Config is returned.
func (s *Store) Config() (Config, error) {
	var cfg Config
	b, err := fs.ReadFile(s.fsys, ConfigFile)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config file: %w", err)
	}
	if err := toml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("cannot parse config file: %w", err)
	}
	return cfg, nil
}

// Duration is a time.Duration that unmarshals from strings like "12h".
type Duration time.Duration

func (d Duration) String() string {
	return time.Duration(d).String()
}

func (d Duration) MarshalText() (text []byte, err error) {
	return []byte(time.Duration(d).String()), nil
}

func (d *Duration) UnmarshalText(text []byte) error {
	p, err := time.ParseDuration(string(text))
	*d = Duration(p)
	return err
}

package flatpages

import (
	"os"
	"strings"
	"testing"
	"testing/fstest"
	"time"
)

func TestLoadExample(t *testing.T) {
	s := New(os.DirFS("../example"))
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	want := []string{"about", "articles/hello-world", "comics", "first-post", "second-post"}
	pages := s.Pages()
	if len(pages) != len(want) {
		t.Fatalf("Expected %d pages but got %d", len(want), len(pages))
	}
	for i, p := range pages {
		if p.Name != want[i] {
			t.Errorf("Page %d: expected %q but got %q", i, want[i], p.Name)
		}
	}

	p, ok := s.Page("first-post")
	if !ok {
		t.Fatal("Expected to find first-post")
	}
	if p.Title() != "First post" {
		t.Errorf("Expected title %q but got %q", "First post", p.Title())
	}
	if !strings.Contains(string(p.Content), "First post</h1>") {
		t.Errorf("Expected rendered heading, got %q", p.Content)
	}
	if tags := p.Tags(); len(tags) != 1 || tags[0] != "hello" {
		t.Errorf("Expected tags [hello] but got %v", tags)
	}

	if _, ok := s.Page("template/page"); ok {
		t.Error("Template folder should not be loaded as pages")
	}
}

func TestLoadHiddenAndSpecial(t *testing.T) {
	fsys := fstest.MapFS{
		"visible.md":       {Data: []byte("# Visible")},
		".hidden.md":       {Data: []byte("# Hidden")},
		".git/config.md":   {Data: []byte("# Not a page")},
		"static/a.md":      {Data: []byte("# Asset")},
		"template/x.md":    {Data: []byte("# Template")},
		"notes/a-note.md":  {Data: []byte("# Note")},
		"notes/.secret.md": {Data: []byte("# Secret")},
		"plain.txt":        {Data: []byte("not markdown")},
	}
	s := New(fsys)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	want := []string{"notes/a-note", "visible"}
	pages := s.Pages()
	if len(pages) != len(want) {
		t.Fatalf("Expected pages %v but got %d pages", want, len(pages))
	}
	for i, p := range pages {
		if p.Name != want[i] {
			t.Errorf("Page %d: expected %q but got %q", i, want[i], p.Name)
		}
	}
}

func TestReloadKeepsOrder(t *testing.T) {
	fsys := fstest.MapFS{
		"b.md": {Data: []byte("# B")},
		"a.md": {Data: []byte("# A")},
		"c.md": {Data: []byte("# C")},
	}
	s := New(fsys)
	if err := s.Load(); err != nil {
		t.Fatal(err)
	}
	first := s.Pages()
	if err := s.Reload(); err != nil {
		t.Fatal(err)
	}
	second := s.Pages()
	if len(first) != len(second) {
		t.Fatalf("Expected %d pages after reload but got %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Name != second[i].Name {
			t.Errorf("Page %d: order changed across reloads: %q vs %q", i, first[i].Name, second[i].Name)
		}
	}
}

func TestConfig(t *testing.T) {
	s := New(os.DirFS("../example"))
	cfg, err := s.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "Inkwell Example" {
		t.Errorf("Expected title %q but got %q", "Inkwell Example", cfg.Title)
	}
	if time.Duration(cfg.Expires) != time.Hour {
		t.Errorf("Expected expires 1h but got %s", cfg.Expires)
	}
	if cfg.Headers["X-Frame-Options"] != "DENY" {
		t.Errorf("Expected X-Frame-Options header, got %v", cfg.Headers)
	}
}

func TestConfigMissing(t *testing.T) {
	s := New(fstest.MapFS{})
	cfg, err := s.Config()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Title != "" || len(cfg.Headers) != 0 {
		t.Errorf("Expected zero config but got %+v", cfg)
	}
}

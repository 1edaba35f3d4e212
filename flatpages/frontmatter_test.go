package flatpages

import (
	"bytes"
	"testing"
	"time"
)

func TestSplitFrontMatter(t *testing.T) {
	var (
		tests = []string{
			``,
			`
		+++
		x = 2
		+++`,
			` ++++++ `,
			`  +++
		 x = "+++"
		 +++
		 hello`,
		}
		expect = [][]string{
			{``, ``},
			{`x = 2`, ``},
			{``, `++++++`},
			{`x = "+++"`, `hello`},
		}
	)
	for i := range tests {
		fm, body := splitFrontMatter([]byte(tests[i]))
		fm = bytes.TrimSpace(fm)
		body = bytes.TrimSpace(body)
		if string(fm) != expect[i][0] || string(body) != expect[i][1] {
			t.Errorf("Expected %#v but got %#v", expect[i], []string{string(fm), string(body)})
		}
	}
}

func TestParseFrontMatter(t *testing.T) {
	src := []byte(`+++
title = "A page"
date = 2024-05-01T10:00:00Z
+++
# Hello`)
	meta, body, err := parseFrontMatter(src)
	if err != nil {
		t.Fatal(err)
	}
	if meta["title"] != "A page" {
		t.Errorf("Expected title %q but got %v", "A page", meta["title"])
	}
	d, ok := meta["date"].(time.Time)
	if !ok {
		t.Fatalf("Expected date to be a time.Time but got %T", meta["date"])
	}
	if d.Year() != 2024 || d.Month() != time.May {
		t.Errorf("Unexpected date %v", d)
	}
	if string(body) != "# Hello" {
		t.Errorf("Expected body %q but got %q", "# Hello", body)
	}
}

func TestParseFrontMatterNoFence(t *testing.T) {
	meta, body, err := parseFrontMatter([]byte("# Just Markdown"))
	if err != nil {
		t.Fatal(err)
	}
	if len(meta) != 0 {
		t.Errorf("Expected empty meta but got %v", meta)
	}
	if string(body) != "# Just Markdown" {
		t.Errorf("Expected body unchanged but got %q", body)
	}
}

func TestParseFrontMatterBadTOML(t *testing.T) {
	_, _, err := parseFrontMatter([]byte("+++\ntitle =\n+++\nbody"))
	if err == nil {
		t.Error("Expected an error for bad front matter")
	}
}

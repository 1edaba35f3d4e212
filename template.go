package main

import (
	"errors"
	"fmt"
	"html/template"
	"log"
	"os"
	"path"
	"strings"
	"time"

	"github.com/inkwell-sh/inkwell/flatpages"
)

// data is what is passed to page templates.
type data struct {
	Site    flatpages.Config  // site-wide settings from site.cfg
	Page    *flatpages.Page   // page for this view; may be nil on fixed pages
	Pages   []*flatpages.Page // listing for archive-style views
	Path    string            // request path
	Message string            // passed to the error template
}

// tpl stores the site's HTML templates.
var tpl *template.Template

// templateFuncs returns the helper functions available to site templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"join":       path.Join,
		"ext":        path.Ext,
		"reverse":    reversePages,
		"trimsuffix": strings.TrimSuffix,
		"trimprefix": strings.TrimPrefix,
		"trimspace":  strings.TrimSpace,
		"meta":       pageMeta,
		"now":        time.Now,
	}
}

// loadTemplates loads and parses the HTML templates.
func loadTemplates() error {
	var err error
	funcMap := templateFuncs()
	fi, err := os.Stat("template")
	if errors.Is(err, os.ErrNotExist) || (err == nil && !fi.IsDir()) {
		log.Print("ERROR: No template folder found; using default templates.")
		tpl, err = template.New("inkwell").Funcs(funcMap).Parse(defaultTemplate)
	} else {
		tpl, err = template.New("inkwell").Funcs(funcMap).ParseGlob("template/*.html")
	}
	if err != nil {
		return fmt.Errorf("loadTemplates: %w", err)
	}
	return nil
}

// reversePages reverses the order of a page list.
func reversePages(pages []*flatpages.Page) []*flatpages.Page {
	j := len(pages) - 1
	for i := 0; i < len(pages)/2; i++ {
		pages[i], pages[j] = pages[j], pages[i]
		j--
	}
	return pages
}

// pageMeta reads a front matter key, for templates.
func pageMeta(p *flatpages.Page, key string) any {
	if p == nil {
		return nil
	}
	return p.Meta[key]
}

const (
	defaultTemplate = `{{define "page"}}<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<title>{{with .Page}}{{.Title}}{{else}}{{.Site.Title}}{{end}}</title>
	</head>
	<body>
		{{with .Page}}{{.Content}}{{end}}
		<hr/>
		<a href="/">Home</a> | <a href="/archive/">Archive</a> | <a href="/about/">About</a>
	</body>
</html>
{{end}}{{define "archive"}}<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<title>Archive &mdash; {{.Site.Title}}</title>
	</head>
	<body>
		<h1>Archive</h1>
		<ul>{{range .Pages}}
			<li><a href="/{{.Name}}/">{{.Title}}</a> {{meta . "date"}}</li>
		{{end}}</ul>
		<hr/>
		<a href="/">Home</a>
	</body>
</html>
{{end}}{{define "comics"}}<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<title>Comics &mdash; {{.Site.Title}}</title>
	</head>
	<body>
		{{with .Page}}{{.Content}}{{else}}<h1>Comics</h1>{{end}}
		<hr/>
		<a href="/">Home</a>
	</body>
</html>
{{end}}{{define "about"}}<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<title>About &mdash; {{.Site.Title}}</title>
	</head>
	<body>
		{{with .Page}}{{.Content}}{{else}}<h1>About</h1>{{end}}
		<hr/>
		<a href="/">Home</a>
	</body>
</html>
{{end}}{{define "notfound"}}<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<title>Not Found</title>
	</head>
	<body>
		<h1>Page not found</h1>
		<p>The page you were looking for is not here.</p>
		<a href="/">Home</a>
	</body>
</html>
{{end}}{{define "error"}}<!DOCTYPE html>
<html lang="en">
	<head>
		<meta charset="utf-8">
		<title>Server Error</title>
	</head>
	<body>
		<h1>Server error</h1>
		<p>{{.Message}}</p>
		<a href="/">Home</a>
	</body>
</html>
{{end}}`
)

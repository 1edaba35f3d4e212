package main

import (
	"bytes"
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/inkwell-sh/inkwell/content"
	"github.com/inkwell-sh/inkwell/flatpages"
)

// rootPage serves "/" as the home page and everything else as a lookup of
// the page whose name is the URL path.
func rootPage(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/" {
		home(w, r)
		return
	}
	pageByName(w, r)
}

// home renders the first page of the store.
func home(w http.ResponseWriter, r *http.Request) {
	p, err := idx.Home()
	if err != nil {
		if errors.Is(err, content.ErrNoPages) {
			notFound(w, r)
			return
		}
		log.Printf("home: %s", err)
		serverError(w, r, err.Error())
		return
	}
	render(w, r, pageTemplate(p), data{Site: siteCfg, Page: p, Path: r.URL.Path})
}

// archive renders the dated pages, most recent first.
func archive(w http.ResponseWriter, r *http.Request) {
	pages, err := idx.Archive()
	if err != nil {
		// A bad date is a content-authoring mistake; fail the request
		// loudly instead of quietly dropping pages.
		log.Printf("archive: %s", err)
		serverError(w, r, err.Error())
		return
	}
	render(w, r, "archive", data{Site: siteCfg, Pages: pages, Path: r.URL.Path})
}

// pageByName renders the page named by the URL path, e.g. "/first-post/".
func pageByName(w http.ResponseWriter, r *http.Request) {
	name := strings.Trim(r.URL.Path, "/")
	p, err := idx.ByName(name)
	if err != nil {
		if errors.Is(err, content.ErrNotFound) {
			notFound(w, r)
			return
		}
		log.Printf("pageByName: %s", err)
		serverError(w, r, err.Error())
		return
	}
	render(w, r, pageTemplate(p), data{Site: siteCfg, Page: p, Path: r.URL.Path})
}

// fixedPage returns a handler rendering the named template. The page with
// the matching name is passed to the template when it exists.
func fixedPage(name, templateName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// the content file is optional for fixed pages
		p, _ := idx.ByName(name)
		render(w, r, templateName, data{Site: siteCfg, Page: p, Path: r.URL.Path})
	}
}

// pageTemplate picks the template for a page, honoring the front matter
// override.
func pageTemplate(p *flatpages.Page) string {
	if t := p.Template(); t != "" {
		return t
	}
	return "page"
}

// render executes the named template through the render cache and writes
// the result.
func render(w http.ResponseWriter, r *http.Request, templateName string, d data) {
	out, err := cachedRender(r.URL.Path, templateName, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := tpl.ExecuteTemplate(&buf, templateName, d); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		log.Printf("render: %s", err)
		serverError(w, r, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write(out); err != nil {
		log.Printf("render: %s", err)
	}
}

package main

import (
	"bytes"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"text/template"
)

var sitemapTpl *template.Template

// loadSitemapTemplate loads the /sitemap.txt template,
// returning true if it exists.
func loadSitemapTemplate() (bool, error) {
	var err error
	sitemapTpl, err = template.New("sitemap").ParseFiles("./sitemap.txt")
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return false, err
		}
		sitemapTpl = nil
		return false, nil
	}
	return true, nil
}

// sitemap is an http.HandlerFunc that renders the site map from the loaded
// pages. With no sitemap.txt template, one path per line is written.
func sitemap(w http.ResponseWriter, r *http.Request) {
	paths := sitemapPaths()
	var out bytes.Buffer
	if sitemapTpl != nil {
		err := sitemapTpl.ExecuteTemplate(&out, "sitemap", paths)
		if err != nil {
			log.Printf("sitemap: %s", err)
			serverError(w, r, err.Error())
			return
		}
	} else {
		for _, p := range paths {
			fmt.Fprintln(&out, p)
		}
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	if _, err := w.Write(out.Bytes()); err != nil {
		log.Printf("sitemap: %s", err)
	}
}

// sitemapPaths lists the URL paths of all loaded pages, in store order.
func sitemapPaths() []string {
	pages := store.Pages()
	paths := make([]string, 0, len(pages)+2)
	paths = append(paths, "/", "/archive/")
	for _, p := range pages {
		paths = append(paths, "/"+p.Name+"/")
	}
	return paths
}

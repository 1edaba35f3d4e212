package main

import (
	"fmt"
	"net/http"
)

// notFound is a handler for rendering our 404 page.
func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusNotFound)
	err := tpl.ExecuteTemplate(w, "notfound", data{Site: siteCfg, Path: r.URL.Path})
	if err != nil {
		fmt.Fprintln(w, http.StatusText(http.StatusNotFound))
	}
}

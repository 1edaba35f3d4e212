package main

import (
	"net/http"
	"os"
	"path"
)

// fixed serves a single file from the static folder regardless of the
// request path, used for well-known files like robots.txt.
func fixed(filename string) http.HandlerFunc {
	return http.FileServer(singleFileSystem(filename)).ServeHTTP
}

type singleFileSystem string

func (sfs singleFileSystem) Open(name string) (http.File, error) {
	_, name = path.Split(name)
	if name != string(sfs) {
		return nil, os.ErrNotExist
	}
	f, err := os.Open(path.Join("static", name))
	if err != nil {
		return nil, err
	}
	return f, nil
}

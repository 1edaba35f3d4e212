package main

import (
	"bytes"
	"io/fs"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/ancientlore/cachefs"

	"github.com/inkwell-sh/inkwell/web"
)

// staticHandler serves files from the static folder through a groupcache-
// backed file system. Misses render the site 404 page.
func staticHandler(cacheBytes int64, cacheDuration time.Duration) http.Handler {
	cached := cachefs.New(
		specialFileHidingFS{os.DirFS("static")},
		&cachefs.Config{GroupName: "static", SizeInBytes: cacheBytes, Duration: cacheDuration})
	return http.StripPrefix("/static/",
		web.ErrorHandler(http.FileServer(http.FS(cached)), errorPage))
}

// errorPage renders the error body substituted for 404 and 500 responses
// from the static file server.
func errorPage(statusCode int) ([]byte, bool) {
	name := ""
	switch statusCode {
	case http.StatusNotFound:
		name = "notfound"
	case http.StatusInternalServerError:
		name = "error"
	}
	if name == "" || tpl.Lookup(name) == nil {
		return nil, false
	}
	out, err := cachedRender("/"+name, name, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := tpl.ExecuteTemplate(&buf, name, data{Site: siteCfg}); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
	if err != nil {
		return nil, false
	}
	return out, true
}

// specialFileHidingFS hides hidden files and folders from the wrapped
// file system.
type specialFileHidingFS struct {
	fs.FS
}

func (sfs specialFileHidingFS) Open(name string) (fs.File, error) {
	if containsSpecialFile(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return sfs.FS.Open(name)
}

// containsSpecialFile reports whether name contains a path element starting
// with a period. The name is assumed to be delimited by forward slashes, as
// guaranteed by the fs.FS interface.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

package main

import (
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/inkwell-sh/inkwell/flatpages"
)

// watchDebounce is how long to wait after the last change before reloading.
const watchDebounce = 500 * time.Millisecond

// watchPages watches the site folder and reloads the page store when
// content changes. The returned function stops the watcher.
func watchPages(root string, store *flatpages.Store) (stop func(), err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// fsnotify is not recursive; watch every folder below the root.
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() {
			return nil
		}
		name := filepath.ToSlash(path)
		if path != root && (containsSpecialFile(name) || d.Name() == "template" || d.Name() == "static") {
			return filepath.SkipDir
		}
		return watcher.Add(path)
	})
	if err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		var reload *time.Timer
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) &&
					!event.Has(fsnotify.Remove) && !event.Has(fsnotify.Rename) {
					continue
				}
				log.Printf("watch: change detected: %s (%s)", event.Name, event.Op)
				if event.Has(fsnotify.Create) && isDir(event.Name) {
					if err := watcher.Add(event.Name); err != nil {
						log.Printf("watch: cannot watch %s: %s", event.Name, err)
					}
				}
				if reload != nil {
					reload.Stop()
				}
				reload = time.AfterFunc(watchDebounce, func() {
					if err := store.Reload(); err != nil {
						log.Printf("watch: reload failed: %s", err)
					}
				})
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Printf("watch: %s", err)
			}
		}
	}()
	return func() { watcher.Close() }, nil
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	if err != nil {
		return false
	}
	return fi.IsDir()
}

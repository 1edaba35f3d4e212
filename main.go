package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"

	"github.com/inkwell-sh/inkwell/content"
	"github.com/inkwell-sh/inkwell/flatpages"
	"github.com/inkwell-sh/inkwell/web"
)

var (
	store   *flatpages.Store
	idx     content.Index
	siteCfg flatpages.Config
)

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of web site.")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of render and static caches, in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "Expiration of cached entries.")
		fWatch             = flag.Bool("watch", false, "Watch the site folder and reload pages on change.")
	)
	flag.Parse()
	flagenv.Parse()

	// Create HTTP server
	var srv = http.Server{
		Addr:              fmt.Sprintf(":%d", *fPort),
		ReadTimeout:       *fReadTimeout,
		WriteTimeout:      *fWriteTimeout,
		ReadHeaderTimeout: *fReadHeaderTimeout,
	}

	// Switch to site folder
	err := os.Chdir(*fRoot)
	if err != nil {
		log.Printf("Cannot switch to root %q: %s", *fRoot, err)
		os.Exit(1)
	}
	log.Printf("Changed to %q directory", *fRoot)

	// Setup groupcache (no peers)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })

	// Load pages
	store = flatpages.New(os.DirFS("."))
	if err := store.Load(); err != nil {
		log.Printf("Cannot load pages: %s", err)
		os.Exit(2)
	}
	idx = content.NewIndex(store)

	// Read site config
	siteCfg, err = store.Config()
	if err != nil {
		log.Printf("Cannot read %s: %s", flatpages.ConfigFile, err)
		os.Exit(3)
	}

	// Parse templates
	err = loadTemplates()
	if err != nil {
		log.Printf("Cannot parse templates: %s", err)
		os.Exit(4)
	}
	log.Printf("Loaded templates: %s", tpl.DefinedTemplates())

	// Parse sitemap template
	ok, err := loadSitemapTemplate()
	if err != nil {
		log.Printf("Unable to load sitemap.txt template: %s", err)
		os.Exit(5)
	}
	if !ok {
		log.Print("No sitemap.txt template found; using built-in format.")
	}

	// Setup render cache
	initRenderCache(*fCacheSize, *fCacheDuration)

	// Setup handlers
	mux := http.NewServeMux()
	mux.Handle("/template/", http.HandlerFunc(notFound))
	mux.Handle("/archive/", gziphandler.GzipHandler(http.HandlerFunc(archive)))
	mux.Handle("/comics/", gziphandler.GzipHandler(fixedPage("comics", "comics")))
	mux.Handle("/about/", gziphandler.GzipHandler(fixedPage("about", "about")))
	mux.Handle("/sitemap.txt", gziphandler.GzipHandler(http.HandlerFunc(sitemap)))
	mux.Handle("/static/", gziphandler.GzipHandler(staticHandler(*fCacheSize, *fCacheDuration)))
	mux.Handle("/favicon.ico", http.HandlerFunc(favicon))
	mux.Handle("/robots.txt", fixed("robots.txt"))
	mux.Handle("/", gziphandler.GzipHandler(http.HandlerFunc(rootPage)))
	srv.Handler = web.HeaderHandler(
		web.ExpiresHandler(mux,
			time.Duration(siteCfg.Expires),
			time.Duration(siteCfg.StaticExpires)),
		siteCfg.Headers)
	log.Print("Created handlers")

	// Watch for content changes
	if *fWatch {
		stop, err := watchPages(".", store)
		if err != nil {
			log.Printf("Cannot watch site folder: %s", err)
			os.Exit(6)
		}
		defer stop()
		log.Print("Watching site folder for changes")
	}

	// Create signal handler for graceful shutdown
	go func() {
		sigint := make(chan os.Signal, 1)

		// interrupt signal sent from terminal
		signal.Notify(sigint, os.Interrupt)
		// sigterm signal sent from kubernetes
		signal.Notify(sigint, syscall.SIGTERM)

		<-sigint

		// We received an interrupt signal, shut down.
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			// Error from closing listeners, or context timeout:
			log.Printf("HTTP server Shutdown: %v", err)
		}
	}()

	// Listen for requests
	log.Print("Listening for requests")
	if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		log.Printf("HTTP server: %v", err)
	} else {
		log.Print("Goodbye.")
	}
}

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/ancientlore/cachefs"
	"github.com/facebookgo/flagenv"
	"github.com/golang/groupcache"

	"github.com/jlafferty/inkwell/content"
	"github.com/jlafferty/inkwell/site"
	"github.com/jlafferty/inkwell/web"
)

var (
	lib      *content.Library
	renderer *site.Renderer
)

// newMux registers the site handlers. Every route goes through the same
// header and Expires chain, so static responses carry the configured
// headers too.
func newMux(cfg site.Config, staticFS fs.FS) *http.ServeMux {
	wrap := func(h http.Handler) http.Handler {
		return web.HeaderHandler(
			web.ExpiresHandler(h,
				time.Duration(cfg.Expires),
				time.Duration(cfg.StaticExpires)),
			cfg.Headers)
	}
	mux := http.NewServeMux()
	mux.Handle("/static/", wrap(http.StripPrefix("/static/",
		gziphandler.GzipHandler(web.ErrorHandler(http.FileServer(http.FS(staticFS)), renderer)))))
	mux.Handle("/favicon.ico", wrap(http.HandlerFunc(favicon)))
	mux.Handle("/", wrap(gziphandler.GzipHandler(http.HandlerFunc(pageHandler))))
	return mux
}

// main is where it all begins. 😀
func main() {
	// Setup flags
	var (
		fPort              = flag.Int("port", 8080, "Port to listen on.")
		fReadTimeout       = flag.Duration("readtimeout", 10*time.Second, "HTTP server read timeout.")
		fReadHeaderTimeout = flag.Duration("readheadertimeout", 5*time.Second, "HTTP server read header timeout.")
		fWriteTimeout      = flag.Duration("writetimeout", 30*time.Second, "HTTP server write timeout.")
		fRoot              = flag.String("root", ".", "Root of the site content.")
		fDrafts            = flag.Bool("drafts", false, "Include draft posts (local preview).")
		fCacheSize         = flag.Int64("cachesize", 10*1024*1024, "Size of each cache in bytes.")
		fCacheDuration     = flag.Duration("cacheduration", 10*time.Second, "How long cached pages remain valid.")
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

	// Load site configuration
	cfg, err := site.LoadConfig(os.DirFS("."))
	if err != nil {
		log.Printf("Cannot load site config: %s", err)
		os.Exit(2)
	}

	// Create the content library
	var opts []content.Option
	if *fDrafts {
		log.Print("Including draft posts")
		opts = append(opts, content.WithDrafts())
	}
	lib = content.New(os.DirFS("."), opts...)
	if conflicts := lib.SlugConflicts(); len(conflicts) > 0 {
		log.Printf("WARNING: duplicate slugs resolve by module precedence: %v", conflicts)
	}

	// Parse templates
	renderer, err = site.NewRenderer(cfg, os.DirFS("."))
	if err != nil {
		log.Printf("Cannot parse templates: %s", err)
		os.Exit(3)
	}
	log.Print("Loaded templates")

	// Setup caches (no peers; one process serves the site)
	groupcache.RegisterPeerPicker(func() groupcache.PeerPicker { return groupcache.NoPeers{} })
	initSnapshotCache(*fCacheSize, *fCacheDuration)
	initPageCache(*fCacheSize, *fCacheDuration)

	// Setup handlers
	staticFS := cachefs.New(os.DirFS("static"), &cachefs.Config{GroupName: "static", SizeInBytes: *fCacheSize, Duration: *fCacheDuration})
	srv.Handler = newMux(cfg, staticFS)
	log.Print("Created handlers")

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

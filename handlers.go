package main

import (
	"errors"
	"io/fs"
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/jlafferty/inkwell/site"
)

// pageHandler serves every dynamic page of the site from the render cache.
func pageHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodHead {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}
	if containsSpecialFile(r.URL.Path) {
		notFound(w, r)
		return
	}
	b, err := cachedPage(r.URL.Path)
	if errors.Is(err, fs.ErrNotExist) {
		notFound(w, r)
		return
	} else if err != nil {
		log.Printf("pageHandler: %s", err)
		serverError(w, r, err.Error())
		return
	}
	w.Header().Set("Content-Type", site.ContentType(r.URL.Path))
	w.Header().Set("X-Content-Type-Options", "nosniff")
	_, err = w.Write(b)
	if err != nil {
		log.Printf("pageHandler: %s", err)
	}
}

// notFound renders our 404 page.
func notFound(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusNotFound)
	err := renderer.NotFound(w)
	if err != nil {
		log.Printf("notFound: %s", err)
	}
}

// serverError renders our error page.
func serverError(w http.ResponseWriter, r *http.Request, errMsg string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusInternalServerError)
	err := renderer.Error(w, errMsg)
	if err != nil {
		log.Printf("serverError: %s", err)
	}
}

// favicon redirects to the favicon in the static folder, if there is one.
func favicon(w http.ResponseWriter, r *http.Request) {
	_, err := os.Stat("static/favicon.ico")
	if errors.Is(err, os.ErrNotExist) {
		notFound(w, r)
		return
	} else if err != nil {
		serverError(w, r, err.Error())
		return
	}
	http.Redirect(w, r, "/static/favicon.ico", http.StatusPermanentRedirect)
}

// containsSpecialFile reports whether name contains a path element starting
// with a period. Hidden files never render as pages.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

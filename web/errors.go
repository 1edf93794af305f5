package web

import (
	"io"
	"net/http"
)

// ErrorPages renders themed 404 and 500 bodies.
type ErrorPages interface {
	NotFound(w io.Writer) error
	Error(w io.Writer, msg string) error
}

// ErrorHandler captures 404 and 500 responses from h and renders the site's
// themed error pages instead of the wrapped handler's plain-text bodies.
func ErrorHandler(h http.Handler, pages ErrorPages) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writer := &responseWriter{
			ResponseWriter: w,
			pages:          pages,
		}
		h.ServeHTTP(writer, r)
	})
}

type responseWriter struct {
	http.ResponseWriter
	pages   ErrorPages
	noWrite bool
	err     error
}

func (w *responseWriter) Write(b []byte) (int, error) {
	if w.noWrite {
		return len(b), w.err
	}
	return w.ResponseWriter.Write(b)
}

func (w *responseWriter) WriteHeader(statusCode int) {
	var render func(io.Writer) error
	if statusCode == http.StatusNotFound {
		render = w.pages.NotFound
	} else if statusCode == http.StatusInternalServerError {
		render = func(out io.Writer) error { return w.pages.Error(out, http.StatusText(statusCode)) }
	}
	if render != nil {
		// replace the wrapped handler's body with the themed page
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Header().Del("X-Content-Type-Options")
		w.Header().Del("Content-Length")
		w.ResponseWriter.WriteHeader(statusCode)
		w.noWrite = true
		w.err = render(w.ResponseWriter)
		return
	}
	// normal processing
	w.ResponseWriter.WriteHeader(statusCode)
}

package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

const (
	rootPath   = "/"
	healthPath = "/api/v1/health"
)

// NewRouter returns the handler answering every request of the server.
// Only GET on the two literal request targets succeeds, anything else
// (query strings included) is a 404.
func NewRouter(serverName string) http.Handler {
	r := chi.NewRouter()
	r.Use(serverHeader(serverName))
	r.Use(exactTarget)

	r.Get(rootPath, rootHandler)
	r.Get(healthPath, healthHandler)

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(notFoundHandler)

	return r
}

// exactTarget answers 404 unless the raw request target is the bare path,
// chi alone would route "/?x=1" or "/%61pi/v1/health" like their decoded path.
func exactTarget(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		target := r.RequestURI
		if target == "" {
			target = r.URL.RequestURI()
		}

		if target != r.URL.Path {
			notFoundHandler(w, r)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func serverHeader(name string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Server", name)
			next.ServeHTTP(w, r)
		})
	}
}

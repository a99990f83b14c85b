package server

import (
	"errors"
	"net"
	"net/http"
	"strconv"
	"syscall"

	"github.com/internetarchive/vegeta-test-server/internal/pkg/log"
)

const (
	contentTypeText = "text/plain"
	contentTypeJSON = "application/json"
)

var logger = log.NewFieldedLogger(&log.Fields{
	"component": "server.handlers",
})

var (
	rootBody     = []byte("Vegeta test server\n")
	healthBody   = []byte("{\"status\": \"ok\"}\n")
	notFoundBody = []byte("Not Found\n")
)

// GET /
func rootHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, contentTypeText, rootBody)
}

// GET /api/v1/health
func healthHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusOK, contentTypeJSON, healthBody)
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respond(w, http.StatusNotFound, contentTypeText, notFoundBody)
}

func respond(w http.ResponseWriter, status int, contentType string, body []byte) {
	header := w.Header()
	header.Set("Content-Type", contentType)
	header.Set("Content-Length", strconv.Itoa(len(body)))
	w.WriteHeader(status)

	if _, err := w.Write(body); err != nil && !isClientGone(err) {
		logger.Warn("unable to write response", "status", status, "err", err.Error())
	}
}

// isClientGone reports whether a write failed because the peer went away,
// or because the request (HEAD) doesn't allow a body.
func isClientGone(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, net.ErrClosed) ||
		errors.Is(err, http.ErrBodyNotAllowed)
}

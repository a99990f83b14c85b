package server

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"strconv"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testServerName = "VegetaTestServer/1.0"

func TestRouter(t *testing.T) {
	tests := []struct {
		name        string
		method      string
		target      string
		status      int
		contentType string
		body        string
	}{
		{"root", http.MethodGet, "/", http.StatusOK, "text/plain", "Vegeta test server\n"},
		{"root with query", http.MethodGet, "/?rate=100", http.StatusNotFound, "text/plain", "Not Found\n"},
		{"root with empty query", http.MethodGet, "/?", http.StatusNotFound, "text/plain", "Not Found\n"},
		{"health", http.MethodGet, "/api/v1/health", http.StatusOK, "application/json", "{\"status\": \"ok\"}\n"},
		{"health with query", http.MethodGet, "/api/v1/health?x=1", http.StatusNotFound, "text/plain", "Not Found\n"},
		{"health escaped", http.MethodGet, "/%61pi/v1/health", http.StatusNotFound, "text/plain", "Not Found\n"},
		{"unknown path", http.MethodGet, "/nope", http.StatusNotFound, "text/plain", "Not Found\n"},
		{"health trailing slash", http.MethodGet, "/api/v1/health/", http.StatusNotFound, "text/plain", "Not Found\n"},
		{"health prefix", http.MethodGet, "/api/v1", http.StatusNotFound, "text/plain", "Not Found\n"},
		{"post root", http.MethodPost, "/", http.StatusNotFound, "text/plain", "Not Found\n"},
		{"delete health", http.MethodDelete, "/api/v1/health", http.StatusNotFound, "text/plain", "Not Found\n"},
	}

	router := NewRouter(testServerName)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.contentType, rec.Header().Get("Content-Type"))
			assert.Equal(t, tt.body, rec.Body.String())
			assert.Equal(t, strconv.Itoa(len(tt.body)), rec.Header().Get("Content-Length"))
			assert.Equal(t, testServerName, rec.Header().Get("Server"))
		})
	}
}

func TestHealthBodyIsJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(testServerName).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health", nil))

	var payload map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.Equal(t, map[string]string{"status": "ok"}, payload)
}

func TestHeadIsNotFound(t *testing.T) {
	rec := httptest.NewRecorder()
	NewRouter(testServerName).ServeHTTP(rec, httptest.NewRequest(http.MethodHead, "/", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestIsClientGone(t *testing.T) {
	opErr := func(errno syscall.Errno) error {
		return &net.OpError{Op: "write", Net: "tcp", Err: os.NewSyscallError("write", errno)}
	}

	assert.True(t, isClientGone(opErr(syscall.EPIPE)))
	assert.True(t, isClientGone(opErr(syscall.ECONNRESET)))
	assert.True(t, isClientGone(net.ErrClosed))
	assert.True(t, isClientGone(http.ErrBodyNotAllowed))

	assert.False(t, isClientGone(errors.New("disk on fire")))
	assert.False(t, isClientGone(opErr(syscall.EINVAL)))
}

type brokenPipeWriter struct {
	header http.Header
	status int
}

func (w *brokenPipeWriter) Header() http.Header { return w.header }

func (w *brokenPipeWriter) WriteHeader(status int) { w.status = status }

func (w *brokenPipeWriter) Write([]byte) (int, error) {
	return 0, &net.OpError{Op: "write", Net: "tcp", Err: os.NewSyscallError("write", syscall.EPIPE)}
}

func TestRespondDiscardsBrokenPipe(t *testing.T) {
	w := &brokenPipeWriter{header: http.Header{}}

	assert.NotPanics(t, func() {
		respond(w, http.StatusOK, contentTypeText, rootBody)
	})
	assert.Equal(t, http.StatusOK, w.status)
	assert.Equal(t, "19", w.header.Get("Content-Length"))
}

// Package server is the HTTP target hit by the load tests. It answers two
// static endpoints and a 404 for anything else.
package server

import (
	"context"
	"errors"
	"io"
	stdliblog "log"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/internetarchive/vegeta-test-server/internal/pkg/log"
)

// Server owns the listening socket and the HTTP server serving it.
// A stopped Server can be started again.
type Server struct {
	addr   string
	name   string
	logger *log.FieldedLogger

	mu      sync.Mutex
	running bool
	run     *run
}

// run is a single Start/Stop cycle of a Server.
type run struct {
	httpServer *http.Server
	listener   net.Listener
	done       chan struct{}
	err        error // written before done is closed
}

// New returns a Server that will listen on addr and announce itself as name
// in the Server header.
func New(addr, name string) *Server {
	return &Server{
		addr: addr,
		name: name,
		logger: log.NewFieldedLogger(&log.Fields{
			"component": "server",
			"instance":  uuid.NewString(),
		}),
	}
}

// Start binds the listening socket and begins serving HTTP requests in a
// separate goroutine. Once Start returns without error, the server accepts
// connections.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return ErrServerAlreadyStarted
	}

	ln, err := listen(s.addr)
	if err != nil {
		return err
	}

	r := &run{
		httpServer: &http.Server{
			Handler:           NewRouter(s.name),
			ReadHeaderTimeout: 10 * time.Second,
			// net/http diagnostics are per connection, they are dropped like the access log
			ErrorLog: stdliblog.New(io.Discard, "", 0),
		},
		listener: ln,
		done:     make(chan struct{}),
	}

	go s.serve(r)

	s.run = r
	s.running = true

	s.logger.Info("server started", "addr", ln.Addr().String())

	return nil
}

func (s *Server) serve(r *run) {
	defer close(r.done)

	// Serve returns http.ErrServerClosed when Shutdown or Close is called.
	if err := r.httpServer.Serve(r.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("server stopped unexpectedly", "err", err.Error())
		r.err = err
	}
}

// Addr returns the address the server is bound to, or the configured
// address if it was never started.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil {
		return s.addr
	}
	return s.run.listener.Addr().String()
}

// Done is closed when the serve loop of the last Start returns.
// It is nil if the server was never started.
func (s *Server) Done() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run == nil {
		return nil
	}
	return s.run.done
}

// Err returns the error that ended the serve loop, nil while serving or
// after a regular Stop.
func (s *Server) Err() error {
	s.mu.Lock()
	r := s.run
	s.mu.Unlock()

	if r == nil {
		return nil
	}

	select {
	case <-r.done:
		return r.err
	default:
		return nil
	}
}

// Stop stops accepting connections and gives in-flight requests up to
// timeout to complete before closing the remaining connections.
func (s *Server) Stop(timeout time.Duration) error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return ErrServerNotStarted
	}
	s.running = false
	r := s.run
	s.mu.Unlock()

	addr := r.listener.Addr().String()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	err := r.httpServer.Shutdown(ctx)
	if errors.Is(err, context.DeadlineExceeded) {
		s.logger.Warn("in-flight requests did not complete, closing connections", "timeout", timeout.String())
		err = r.httpServer.Close()
	}

	<-r.done

	s.logger.Info("server stopped", "addr", addr)

	return err
}

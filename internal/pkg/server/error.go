package server

import "errors"

var (
	// ErrServerAlreadyStarted is returned when Start is called on a running server.
	ErrServerAlreadyStarted = errors.New("server already started")
	// ErrServerNotStarted is returned when Stop is called on a server that isn't running.
	ErrServerNotStarted = errors.New("server not started")
)

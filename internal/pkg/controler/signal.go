// Package controler drives the lifecycle of the server from OS signals.
package controler

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/internetarchive/vegeta-test-server/internal/pkg/log"
)

// SignalChan receives the shutdown signals, tests may send to it directly.
var SignalChan = make(chan os.Signal, 1)

// ListenSignals relays SIGINT and SIGTERM to SignalChan instead of letting
// them kill the process. The returned function restores the default behavior.
func ListenSignals() (stop func()) {
	signal.Notify(SignalChan, syscall.SIGINT, syscall.SIGTERM)
	return func() {
		signal.Stop(SignalChan)
	}
}

// WatchSignals blocks until a shutdown signal is received, then calls stop.
// It returns without calling stop if ctx is done first.
func WatchSignals(ctx context.Context, stop func()) {
	logger := log.NewFieldedLogger(&log.Fields{
		"component": "controler.signalWatcher",
	})

	select {
	case <-ctx.Done():
		return
	case sig := <-SignalChan:
		logger.Info("received shutdown signal, stopping server...", "signal", sig.String())
		stop()
	}
}

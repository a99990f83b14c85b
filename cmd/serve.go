package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/internetarchive/vegeta-test-server/internal/pkg/config"
	"github.com/internetarchive/vegeta-test-server/internal/pkg/controler"
	"github.com/internetarchive/vegeta-test-server/internal/pkg/server"
)

// serve runs the server until a shutdown signal is received or the server
// fails on its own. The only line ever written to stdout is the startup one.
func serve(ctx context.Context, stdout io.Writer, cfg *config.Config) error {
	// Relay signals before announcing the address, a client reacting to the
	// startup line may signal right away.
	defer controler.ListenSignals()()

	srv := server.New(cfg.Addr(), cfg.ServerName)
	if err := srv.Start(); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Test server listening on http://%s\n", srv.Addr())

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Stop watching signals if the serve loop dies
	go func() {
		select {
		case <-srv.Done():
			cancel()
		case <-ctx.Done():
		}
	}()

	var stopErr error
	controler.WatchSignals(ctx, func() {
		stopErr = srv.Stop(cfg.ShutdownTimeout)
	})

	if err := srv.Err(); err != nil {
		_ = srv.Stop(cfg.ShutdownTimeout)
		return fmt.Errorf("server failed: %w", err)
	}

	return stopErr
}

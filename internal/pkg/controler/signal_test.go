package controler

import (
	"context"
	"syscall"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWatchSignals_Signal(t *testing.T) {
	for _, sig := range []syscall.Signal{syscall.SIGINT, syscall.SIGTERM} {
		t.Run(sig.String(), func(t *testing.T) {
			stopped := make(chan struct{})
			returned := make(chan struct{})

			go func() {
				defer close(returned)
				WatchSignals(context.Background(), func() { close(stopped) })
			}()

			SignalChan <- sig

			select {
			case <-stopped:
			case <-time.After(time.Second):
				t.Fatal("stop wasn't called after signal")
			}

			select {
			case <-returned:
			case <-time.After(time.Second):
				t.Fatal("WatchSignals didn't return after stop")
			}
		})
	}
}

func TestWatchSignals_ContextDone(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	called := false
	returned := make(chan struct{})

	go func() {
		defer close(returned)
		WatchSignals(ctx, func() { called = true })
	}()

	cancel()

	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("WatchSignals didn't return after cancel")
	}
	assert.False(t, called)
}

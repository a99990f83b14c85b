// Package log is the slog-based logger of the server. Records are routed to
// stdout and stderr depending on their level, see makeMultiLogger.
package log

import (
	"context"
	"log/slog"
	"runtime"
	"sync"
	"sync/atomic"
	"time"
)

var (
	multiLogger atomic.Pointer[slog.Logger]
	once        sync.Once
	onceMu      sync.Mutex
)

// Start initializes the logging package from the global configuration.
// If the configuration isn't initialized yet, it uses the default configuration.
func Start() error {
	return start(makeConfig())
}

func start(c *logConfig) error {
	var done = false

	onceMu.Lock()
	defer onceMu.Unlock()

	once.Do(func() {
		multiLogger.Store(c.makeMultiLogger())
		done = true
	})

	if !done {
		return ErrLoggerAlreadyInitialized
	}

	return nil
}

// Stop shuts down the logging system, records logged afterwards are dropped.
func Stop() {
	onceMu.Lock()
	defer onceMu.Unlock()

	multiLogger.Store(nil)
	once = sync.Once{}
}

// Public logging methods
func Debug(msg string, args ...any) {
	logWithLevel(context.Background(), slog.LevelDebug, msg, args...)
}

func Info(msg string, args ...any) {
	logWithLevel(context.Background(), slog.LevelInfo, msg, args...)
}

func Warn(msg string, args ...any) {
	logWithLevel(context.Background(), slog.LevelWarn, msg, args...)
}

func Error(msg string, args ...any) {
	logWithLevel(context.Background(), slog.LevelError, msg, args...)
}

// logWithLevel must be called directly by the exported logging methods,
// the caller frame is computed from that assumption.
func logWithLevel(ctx context.Context, level slog.Level, msg string, args ...any) {
	logger := multiLogger.Load()
	if logger == nil || !logger.Enabled(ctx, level) {
		return
	}

	// Code copy from [slog.Logger:log()]
	//
	// This is needed to feed the correct caller frame PC to the Record
	// since we wrapped the [slog.Logger] with our own methods.
	// https://github.com/golang/go/issues/73707#issuecomment-2878940561
	var pcs [1]uintptr
	// skip [runtime.Callers, this function, this function's caller]
	runtime.Callers(3, pcs[:])

	record := slog.NewRecord(time.Now(), level, msg, pcs[0])
	record.Add(args...)
	_ = logger.Handler().Handle(ctx, record)
}

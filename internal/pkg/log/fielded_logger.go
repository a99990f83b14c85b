package log

import (
	"context"
	"log/slog"
	"maps"
	"slices"
)

// Fields defines the predefined fields of a FieldedLogger
type Fields map[string]any

// FieldedLogger allows adding predefined fields to log entries
type FieldedLogger struct {
	ctx    context.Context
	fields *[]any
}

// NewFieldedLogger creates a new FieldedLogger with the given fields
func NewFieldedLogger(args *Fields) *FieldedLogger {
	sortedArgs := make([]any, 0, len(*args)*2)
	for _, k := range slices.Sorted(maps.Keys(*args)) {
		sortedArgs = append(sortedArgs, k, (*args)[k])
	}
	return &FieldedLogger{
		ctx:    context.Background(),
		fields: &sortedArgs,
	}
}

// Debug logs a message at the debug level with the predefined fields
func (fl *FieldedLogger) Debug(msg string, args ...any) {
	logWithLevel(fl.ctx, slog.LevelDebug, msg, fl.combine(args)...)
}

// Info logs a message at the info level with the predefined fields
func (fl *FieldedLogger) Info(msg string, args ...any) {
	logWithLevel(fl.ctx, slog.LevelInfo, msg, fl.combine(args)...)
}

// Warn logs a message at the warn level with the predefined fields
func (fl *FieldedLogger) Warn(msg string, args ...any) {
	logWithLevel(fl.ctx, slog.LevelWarn, msg, fl.combine(args)...)
}

// Error logs a message at the error level with the predefined fields
func (fl *FieldedLogger) Error(msg string, args ...any) {
	logWithLevel(fl.ctx, slog.LevelError, msg, fl.combine(args)...)
}

func (fl *FieldedLogger) combine(args []any) []any {
	combinedArgs := make([]any, 0, len(*fl.fields)+len(args))

	combinedArgs = append(combinedArgs, *fl.fields...)
	combinedArgs = append(combinedArgs, args...)

	return combinedArgs
}

package log

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/MatusOllah/slogcolor"
	"github.com/fatih/color"
	"github.com/internetarchive/vegeta-test-server/internal/pkg/config"
	slogmulti "github.com/samber/slog-multi"
)

type logConfig struct {
	StdoutEnabled bool
	StdoutLevel   slog.Level
	StderrEnabled bool
	StderrLevel   slog.Level
	NoColor       bool

	stdout io.Writer
	stderr io.Writer
}

// makeConfig returns the logging configuration derived from the global one.
// Stdout is reserved for the startup line unless stdout logging is turned on,
// in which case it receives everything below the error level.
func makeConfig() *logConfig {
	if config.Get() == nil {
		return &logConfig{
			StdoutEnabled: false,
			StdoutLevel:   slog.LevelInfo,
			StderrEnabled: true,
			StderrLevel:   slog.LevelInfo,
			stdout:        os.Stdout,
			stderr:        os.Stderr,
		}
	}

	level := parseLevel(config.Get().LogLevel)

	stderrLevel := level
	if config.Get().StdoutLogging {
		stderrLevel = max(level, slog.LevelError)
	}

	return &logConfig{
		StdoutEnabled: config.Get().StdoutLogging,
		StdoutLevel:   level,
		StderrEnabled: true,
		StderrLevel:   stderrLevel,
		NoColor:       config.Get().NoColorLogging,
		stdout:        os.Stdout,
		stderr:        os.Stderr,
	}
}

func parseLevel(level string) slog.Level {
	lowercaseLevel := strings.ToLower(level)
	switch lowercaseLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func newColorOptions(Level slog.Level) *slogcolor.Options {
	return &slogcolor.Options{
		Level:         Level,
		TimeFormat:    time.RFC3339,
		SrcFileMode:   slogcolor.ShortFile,
		SrcFileLength: 20,
		MsgPrefix:     color.HiWhiteString("| "),
		MsgColor:      color.New().Add(color.FgYellow),
		LevelTags:     slogcolor.DefaultLevelTags,
	}
}

func (c *logConfig) newHandler(out io.Writer, Level slog.Level) slog.Handler {
	if c.NoColor {
		return slog.NewTextHandler(out, &slog.HandlerOptions{Level: Level})
	}
	return slogcolor.NewHandler(out, newColorOptions(Level))
}

func (c *logConfig) makeMultiLogger() *slog.Logger {
	baseRouter := slogmulti.Router()

	// If Stdout and Stderr are both enabled we log every level below stderr level to stdout and the rest (above) to stderr
	if c.StdoutEnabled && c.StderrEnabled {
		stderrHandler := c.newHandler(c.stderr, c.StderrLevel)
		baseRouter = baseRouter.Add(stderrHandler, func(_ context.Context, r slog.Record) bool {
			return r.Level >= c.StderrLevel
		})

		stdoutHandler := c.newHandler(c.stdout, c.StdoutLevel)
		baseRouter = baseRouter.Add(stdoutHandler, func(_ context.Context, r slog.Record) bool {
			return r.Level >= c.StdoutLevel && r.Level < c.StderrLevel
		})
	} else if c.StdoutEnabled {
		stdoutHandler := c.newHandler(c.stdout, c.StdoutLevel)
		baseRouter = baseRouter.Add(stdoutHandler, func(_ context.Context, r slog.Record) bool {
			return r.Level >= c.StdoutLevel
		})
	} else if c.StderrEnabled {
		stderrHandler := c.newHandler(c.stderr, c.StderrLevel)
		baseRouter = baseRouter.Add(stderrHandler, func(_ context.Context, r slog.Record) bool {
			return r.Level >= c.StderrLevel
		})
	}

	return slog.New(baseRouter.Handler())
}

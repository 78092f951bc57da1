package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"

	"github.com/grindlemire/go-flex/internal/config"
)

// newLogger creates a logger writing to w at level, with timestamps
// formatted as "HH:MM:SS.ms".
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

type ctxKey int

const (
	loggerKey ctxKey = iota
	configKey
)

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached to ctx, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

func withConfig(ctx context.Context, c *config.Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

// configFromContext returns the configuration attached to ctx, or the
// defaults.
func configFromContext(ctx context.Context) *config.Config {
	if c, ok := ctx.Value(configKey).(*config.Config); ok {
		return c
	}
	return config.Default()
}

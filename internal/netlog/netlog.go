// Package netlog wires a charmbracelet/log logger through context.Context
// so handlers and the packages they call can log without threading a
// logger argument through every signature.
package netlog

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

type ctxKey int

const loggerKey ctxKey = 0

// New creates a logger writing to w at level, with timestamps enabled.
func New(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "2006-01-02T15:04:05.000Z07:00",
		Level:           level,
	})
}

// WithLogger attaches l to ctx.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// FromContext retrieves the logger attached to ctx, falling back to
// log.Default() so every call site has a usable logger even when none was
// attached.
func FromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

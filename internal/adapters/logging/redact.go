package logging

import (
	"context"
	"fmt"

	"github.com/tedd-an/rigup/internal/ports"
)

// RedactedLogger decorates another logger, passing every message and
// every field value through a scrub function before forwarding. Wiring
// all log output through this decorator is what guarantees credential
// material never reaches a sink, regardless of who logs what.
type RedactedLogger struct {
	inner ports.Logger
	scrub func(string) string
}

// NewRedacted wraps inner so that scrub is applied to all output.
func NewRedacted(inner ports.Logger, scrub func(string) string) *RedactedLogger {
	return &RedactedLogger{inner: inner, scrub: scrub}
}

// Debug logs a scrubbed debug message.
func (l *RedactedLogger) Debug(ctx context.Context, msg string, fields ...ports.Field) {
	l.inner.Debug(ctx, l.scrub(msg), l.scrubFields(fields)...)
}

// Info logs a scrubbed informational message.
func (l *RedactedLogger) Info(ctx context.Context, msg string, fields ...ports.Field) {
	l.inner.Info(ctx, l.scrub(msg), l.scrubFields(fields)...)
}

// Warn logs a scrubbed warning message.
func (l *RedactedLogger) Warn(ctx context.Context, msg string, fields ...ports.Field) {
	l.inner.Warn(ctx, l.scrub(msg), l.scrubFields(fields)...)
}

// Error logs a scrubbed error message.
func (l *RedactedLogger) Error(ctx context.Context, msg string, fields ...ports.Field) {
	l.inner.Error(ctx, l.scrub(msg), l.scrubFields(fields)...)
}

// With returns a new redacted logger with additional (scrubbed) fields.
func (l *RedactedLogger) With(fields ...ports.Field) ports.Logger {
	return &RedactedLogger{
		inner: l.inner.With(l.scrubFields(fields)...),
		scrub: l.scrub,
	}
}

// Level returns the inner logger's level.
func (l *RedactedLogger) Level() ports.Level {
	return l.inner.Level()
}

// SetLevel sets the inner logger's level.
func (l *RedactedLogger) SetLevel(level ports.Level) {
	l.inner.SetLevel(level)
}

// scrubFields scrubs every field value. Non-string values are formatted
// first; a secret hiding inside an error or a stringer must not survive.
func (l *RedactedLogger) scrubFields(fields []ports.Field) []ports.Field {
	if len(fields) == 0 {
		return nil
	}
	out := make([]ports.Field, len(fields))
	for i, f := range fields {
		switch v := f.Value.(type) {
		case string:
			out[i] = ports.F(f.Key, l.scrub(v))
		case error:
			out[i] = ports.F(f.Key, l.scrub(v.Error()))
		case fmt.Stringer:
			out[i] = ports.F(f.Key, l.scrub(v.String()))
		default:
			out[i] = f
		}
	}
	return out
}

// Ensure RedactedLogger implements Logger.
var _ ports.Logger = (*RedactedLogger)(nil)

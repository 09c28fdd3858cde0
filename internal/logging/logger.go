// Package logging defines the minimal structured-logging contract used by the
// service and transport layers. The production implementation wraps slog.
package logging

import "context"

// Logger is a context-aware structured logger. Variadic args are key-value
// pairs, e.g. log.Info(ctx, "sample created", "id", id).
type Logger interface {
	// Debug logs diagnostic detail that is normally suppressed.
	Debug(ctx context.Context, msg string, args ...any)

	// Info logs an informational message.
	Info(ctx context.Context, msg string, args ...any)

	// Warn logs unusual but non-fatal conditions.
	Warn(ctx context.Context, msg string, args ...any)

	// Error logs failures.
	Error(ctx context.Context, msg string, args ...any)

	// With returns a child logger that always includes the given key-value pairs.
	With(args ...any) Logger
}

// Package log wraps zap behind a context-aware Logger interface so callers
// never depend on the zap API directly.
package log

import "context"

// Logger is the logging interface used across the service. Every method
// accepts a context first so request-scoped fields can be attached later
// without changing call sites.
type Logger interface {
	Debug(ctx context.Context, args ...any)
	Debugf(ctx context.Context, format string, args ...any)
	Info(ctx context.Context, args ...any)
	Infof(ctx context.Context, format string, args ...any)
	Warn(ctx context.Context, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Error(ctx context.Context, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
	DPanic(ctx context.Context, args ...any)
	DPanicf(ctx context.Context, format string, args ...any)
	Panic(ctx context.Context, args ...any)
	Panicf(ctx context.Context, format string, args ...any)
	Fatal(ctx context.Context, args ...any)
	Fatalf(ctx context.Context, format string, args ...any)
}

package logger

import (
	"context"

	"go.uber.org/zap"
)

type contextKey struct{}

// FromContext retrieves the request-scoped logger from the context,
// falling back to the global logger.
func FromContext(ctx context.Context) *zap.Logger {
	if l, ok := ctx.Value(contextKey{}).(*zap.Logger); ok {
		return l
	}
	return Get()
}

// WithContext returns a context carrying the given logger.
func WithContext(ctx context.Context, l *zap.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

package logging

import (
	"context"

	"go.uber.org/zap"
)

type requestCtxKey struct{}

// WithRequestID returns a context carrying a request correlation id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestCtxKey{}, id)
}

// RequestIDFromContext returns the request id, or "" if none is set.
func RequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestCtxKey{}).(string)
	return id
}

// ContextFields extracts correlation data from context.
func ContextFields(ctx context.Context) []zap.Field {
	if id := RequestIDFromContext(ctx); id != "" {
		return []zap.Field{zap.String("request.id", id)}
	}
	return nil
}

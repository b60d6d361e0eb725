package logger

import (
	"context"

	"go.uber.org/zap"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	cartIDKey    ctxKey = "cart_id"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(requestIDKey).(string); ok {
		return v
	}
	return ""
}

// WithCartID tags the context with the shopper's cart session.
func WithCartID(ctx context.Context, cartID string) context.Context {
	return context.WithValue(ctx, cartIDKey, cartID)
}

func CartIDFrom(ctx context.Context) string {
	if v, ok := ctx.Value(cartIDKey).(string); ok {
		return v
	}
	return ""
}

// FromCtx returns the global logger enriched with request_id and cart_id when present.
func FromCtx(ctx context.Context) *zap.Logger {
	l := L()
	if reqID := RequestIDFrom(ctx); reqID != "" {
		l = l.With(zap.String("request_id", reqID))
	}
	if cartID := CartIDFrom(ctx); cartID != "" {
		l = l.With(zap.String("cart_id", cartID))
	}
	return l
}

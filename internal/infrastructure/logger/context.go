package logger

import (
	"context"

	"go.uber.org/zap"
)

// contextKey is a type for context keys used by the logger package
type contextKey string

const (
	// LoggerKey is the context key for the logger
	LoggerKey contextKey = "logger"
	// RequestIDKey is the context key for request ID
	RequestIDKey contextKey = "request_id"
	// PersonIDKey is the context key for the authenticated person ID
	PersonIDKey contextKey = "person_id"
)

// WithContext returns a new context with the logger attached
func WithContext(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, LoggerKey, logger)
}

// FromContext retrieves the logger from context, returns a no-op logger if not found
func FromContext(ctx context.Context) *zap.Logger {
	if logger, ok := ctx.Value(LoggerKey).(*zap.Logger); ok {
		return logger
	}
	return zap.NewNop()
}

// WithRequestID adds request ID to context and returns enriched logger
func WithRequestID(ctx context.Context, logger *zap.Logger, requestID string) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, RequestIDKey, requestID)
	enrichedLogger := logger.With(zap.String("request_id", requestID))
	return WithContext(ctx, enrichedLogger), enrichedLogger
}

// WithPersonID adds the authenticated person ID to context and returns enriched logger
func WithPersonID(ctx context.Context, logger *zap.Logger, personID int64) (context.Context, *zap.Logger) {
	ctx = context.WithValue(ctx, PersonIDKey, personID)
	enrichedLogger := logger.With(zap.Int64("person_id", personID))
	return WithContext(ctx, enrichedLogger), enrichedLogger
}

// GetRequestID retrieves request ID from context
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

// GetPersonID retrieves the authenticated person ID from context.
// Returns 0 when no person is attached.
func GetPersonID(ctx context.Context) int64 {
	if personID, ok := ctx.Value(PersonIDKey).(int64); ok {
		return personID
	}
	return 0
}

// L returns a logger from the given context enriched with request and
// person fields when present.
// Usage: logger.L(ctx).Info("message", zap.String("key", "value"))
func L(ctx context.Context) *zap.Logger {
	l := FromContext(ctx)

	if requestID := GetRequestID(ctx); requestID != "" {
		l = l.With(zap.String("request_id", requestID))
	}
	if personID := GetPersonID(ctx); personID != 0 {
		l = l.With(zap.Int64("person_id", personID))
	}

	return l
}

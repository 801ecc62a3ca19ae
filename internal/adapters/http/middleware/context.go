package middleware

import "context"

// idKey identifies an ID stored in a request's context.Context. Handlers
// outside gin (services, clients) read the IDs through these helpers.
type idKey int

const (
	requestIDKey idKey = iota
	correlationIDKey
)

func idFrom(ctx context.Context, key idKey) string {
	if ctx == nil {
		return ""
	}

	id, _ := ctx.Value(key).(string)

	return id
}

// RequestIDFromContext returns the request ID, or "" when unset or ctx is nil.
func RequestIDFromContext(ctx context.Context) string {
	return idFrom(ctx, requestIDKey)
}

// CorrelationIDFromContext returns the correlation ID, or "" when unset or ctx is nil.
func CorrelationIDFromContext(ctx context.Context) string {
	return idFrom(ctx, correlationIDKey)
}

// ContextWithRequestID stores a request ID in the context.
func ContextWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// ContextWithCorrelationID stores a correlation ID in the context.
func ContextWithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, correlationIDKey, id)
}

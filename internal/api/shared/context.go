package shared

import (
	"context"
	"crypto/rand"
	"encoding/hex"
)

// ContextKey is the type for context values set by the API layer.
type ContextKey string

const (
	// PrincipalContextKey is the context key under which the authentication
	// middleware stores the acting principal's username.
	PrincipalContextKey ContextKey = "principal"

	// TraceIDKey is the key for the trace ID in the request context.
	TraceIDKey ContextKey = "traceID"

	// traceIDLength is the number of random bytes in a trace ID.
	traceIDLength = 16 // 32 hex characters
)

// SetTraceID adds a freshly generated trace ID to the context, used to
// correlate logs and error responses for one request.
func SetTraceID(ctx context.Context) context.Context {
	b := make([]byte, traceIDLength)
	// rand.Read on crypto/rand never fails on supported platforms.
	_, _ = rand.Read(b)
	return context.WithValue(ctx, TraceIDKey, hex.EncodeToString(b))
}

// GetTraceID retrieves the trace ID from the context, or "" if absent.
func GetTraceID(ctx context.Context) string {
	traceID, ok := ctx.Value(TraceIDKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SetPrincipal returns a copy of ctx carrying the acting principal's
// username.
func SetPrincipal(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, PrincipalContextKey, username)
}

// GetPrincipal retrieves the acting principal's username from the context.
// Returns "" and false when no principal was authenticated.
func GetPrincipal(ctx context.Context) (string, bool) {
	principal, ok := ctx.Value(PrincipalContextKey).(string)
	if !ok || principal == "" {
		return "", false
	}
	return principal, true
}

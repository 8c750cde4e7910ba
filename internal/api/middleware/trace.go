// Package middleware provides HTTP middleware for the accounts API.
package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jsvoboda/accounts-api/internal/api/shared"
	"github.com/jsvoboda/accounts-api/internal/platform/logger"
)

// Trace adds a trace ID to the request context and stores a logger enriched
// with it, so every log line produced while serving the request can be
// correlated. Apply it early in the middleware chain.
func Trace(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := shared.SetTraceID(r.Context())
		traceID := shared.GetTraceID(ctx)

		log := slog.With(slog.String("trace_id", traceID))
		ctx = logger.WithLogger(ctx, log)

		log.Debug("request started",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("remote_addr", r.RemoteAddr))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

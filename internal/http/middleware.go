package http

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
)

// Middleware defines the standard signature for an HTTP middleware.
type Middleware func(http.Handler) http.Handler

// Chain combines multiple middlewares into a single handler.
// The middlewares are applied in the order they are passed.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}
	return h
}

// contextKey is a custom type to avoid key collisions in context.
type contextKey string

const (
	dryRunKey contextKey = "dryRun"
	loggerKey contextKey = "logger"
)

// paramsMiddleware handles common query parameters like 'verbose' and 'dry_run'.
func paramsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Info("incoming request", "method", r.Method, "url", r.URL.String())

		ctx := r.Context()

		// Handle 'verbose' with a request-scoped logger. The process-global
		// level stays untouched, so concurrent requests cannot observe each
		// other's verbosity.
		if r.URL.Query().Get("verbose") == "true" {
			logger := log.With()
			logger.SetLevel(log.DebugLevel)
			ctx = context.WithValue(ctx, loggerKey, logger)
		}

		// Handle 'dry_run' and add it to the request context.
		isDryRun := r.URL.Query().Get("dry_run") == "true"
		ctx = context.WithValue(ctx, dryRunKey, isDryRun)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// isDryRunFromContext is a helper to safely retrieve the dry_run flag from the request context.
func isDryRunFromContext(r *http.Request) bool {
	dryRun, ok := r.Context().Value(dryRunKey).(bool)
	return ok && dryRun
}

// loggerFromContext returns the request's logger, falling back to the
// default one when no verbose logger was installed.
func loggerFromContext(r *http.Request) *log.Logger {
	if logger, ok := r.Context().Value(loggerKey).(*log.Logger); ok {
		return logger
	}
	return log.Default()
}

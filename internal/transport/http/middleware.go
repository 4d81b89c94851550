package http

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"
)

// Middleware struct holds dependencies for middleware functions
type Middleware struct {
	Logger hclog.Logger
}

// NewMiddleware creates a new Middleware instance
func NewMiddleware(logger hclog.Logger) *Middleware {
	return &Middleware{Logger: logger}
}

// LoggingMiddleware logs the incoming requests and responses
func (m *Middleware) LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.New().String()

		m.Logger.Info("Incoming request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
		)

		// Add the request ID to the response header
		w.Header().Set("X-Request-ID", requestID)

		next.ServeHTTP(w, r)

		duration := time.Since(start)
		m.Logger.Info("Completed request",
			"method", r.Method,
			"url", r.URL.Path,
			"request_id", requestID,
			"duration", duration,
		)
	})
}

// RecoveryMiddleware converts panics anywhere below it into the generic
// internal error response. The handler pipeline must never take the
// process down; the detail is logged server-side only.
func (m *Middleware) RecoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.Logger.Error("Panic while handling request",
					"method", r.Method,
					"url", r.URL.Path,
					"panic", rec,
				)
				writeJSON(w, http.StatusInternalServerError, RelayResponse{OK: false, Error: internalErrorMessage})
			}
		}()

		next.ServeHTTP(w, r)
	})
}

// ContentTypeMiddleware sets the Content-Type header to application/json
func (m *Middleware) ContentTypeMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		next.ServeHTTP(w, r)
	})
}

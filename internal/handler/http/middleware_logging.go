package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-ledger-keeper/internal/logger"
)

// withLogging writes one access log entry per request. Server errors are
// logged at error level, everything else at info.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uri, method := r.RequestURI, r.Method
		rw := &responseWriter{ResponseWriter: w}

		start := time.Now()
		next.ServeHTTP(rw, r)
		elapsed := time.Since(start)

		level := zerolog.InfoLevel
		if rw.Status() >= http.StatusInternalServerError {
			level = zerolog.ErrorLevel
		}

		logger.FromRequest(r).Logger.WithLevel(level).
			Str("uri", uri).
			Str("method", method).
			Str("route", routePattern(r)).
			Int("status", rw.Status()).
			Int("size", rw.size).
			Dur("duration", elapsed).
			Send()
	})
}

// routePattern returns the matched chi pattern, or "" before routing or when
// nothing matched.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		return rctx.RoutePattern()
	}
	return ""
}

package http

import (
	"net/http"
	"time"
)

// withMetrics records request count and latency per route pattern. It is a
// pass-through when metrics are disabled.
func (h *Handler) withMetrics(next http.Handler) http.Handler {
	if h.metrics == nil {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		done := h.metrics.Started()
		defer done()

		start := time.Now()
		mw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(mw, r)

		h.metrics.Observe(r.Method, routePattern(r), mw.Status(), time.Since(start))
	})
}

package http

import (
	"net/http"

	"github.com/rs/zerolog"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID tags every request with a trace id. A caller supplied
// X-Trace-ID is kept as is. The id is echoed back and attached to the
// request-scoped logger as trace_id.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(traceIDHeader)
		if id == "" {
			id = h.traceIDs.Generate()
		}
		w.Header().Set(traceIDHeader, id)

		reqLog := h.logger.GetChildLogger()
		reqLog.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", id)
		})

		next.ServeHTTP(w, r.WithContext(reqLog.WithContext(r.Context())))
	})
}

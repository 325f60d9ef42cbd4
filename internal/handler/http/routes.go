package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Middleware order matters: tracing comes first so
// every later log line carries the trace id, and CORS runs before routing so
// preflight requests never reach the password check.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	router.Use(h.withCORS())
	router.Use(withGZip)
	router.Use(withBodyLimit(h.cfg.MaxBodyBytes))
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/ping", h.ping)
		r.Get("/version", h.getServerVersion)
		r.Get("/healthz", h.healthz)
		if h.metrics != nil {
			r.Method(http.MethodGet, "/metrics", h.metrics.Handler())
		}
	})

	// routes guarded by the shared password
	router.Group(func(r chi.Router) {
		r.Use(h.withPassword)
		r.Get("/data", h.getData)
		r.Put("/data", h.putData)
	})

	router.NotFound(notFound)
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

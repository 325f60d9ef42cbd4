package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured browser origins with credentials and any
// method or header.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPut, http.MethodPost, http.MethodPatch,
			http.MethodDelete, http.MethodHead, http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{traceIDHeader, "ETag"},
		AllowCredentials: true,
		MaxAge:           600,
	})
}

package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

// withCORS allows the configured origins to call the JSON API from a
// browser. The checkout page served from StaticDir is same-origin and does
// not need it.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: h.cfg.AllowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", traceIDHeader},
		ExposedHeaders: []string{traceIDHeader},
		MaxAge:         300,
	})
}

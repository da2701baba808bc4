package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}
	router.Use(h.withTraceID, h.withLogging, middleware.Recoverer, withGZip)
	if len(h.cfg.AllowedOrigins) > 0 {
		router.Use(h.withCORS())
	}

	router.Group(func(r chi.Router) {
		r.Get("/api/health", h.health)
		r.Get("/api/version", h.getServerVersion)
		r.Get("/api/locations", h.listLocations)
		r.Get("/api/catalog", h.listCatalog)
		r.Post("/api/payments", h.createPayment)
		r.Get("/api/payments", h.listPayments)
		r.Get("/api/payments/{key}", h.getPayment)
	})

	if h.cfg.StaticDir != "" {
		router.Handle("/*", http.FileServer(http.Dir(h.cfg.StaticDir)))
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

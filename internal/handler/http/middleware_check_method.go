// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-square/internal/logger"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is registered as the router's MethodNotAllowed handler.
// The example server answers 404 for a known path requested with a method
// it does not serve, so probing with OPTIONS or DELETE reveals nothing about
// the payment routes.
//
// Parameterised routes such as /api/payments/{key} are resolved through
// [chi.Mux.Match], so the check works for them too.
func CheckHTTPMethod(router *chi.Mux) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !router.Match(chi.NewRouteContext(), r.Method, r.URL.Path) {
			logger.FromRequest(r).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Msg("method not served on path")
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-sync-hub/internal/utils"
	"github.com/MKhiriev/go-sync-hub/models"
	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod is meant for [chi.Mux.MethodNotAllowed]. A path that is
// registered, but not for the requested method, is answered with a JSON
// 404 like any unknown path, so callers cannot discover which methods exist.
//
// Only exact patterns are compared. If the method turns out to be
// registered after all, the request goes back through router.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, route := range router.Routes() {
			if route.Pattern != r.URL.Path {
				continue
			}
			if _, ok := route.Handlers[r.Method]; ok {
				router.ServeHTTP(w, r)
				return
			}
			break
		}

		_, _ = utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusNotFound)}, http.StatusNotFound)
	}
}

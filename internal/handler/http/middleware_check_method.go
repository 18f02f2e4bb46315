// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-equip-keeper/internal/utils"
)

// CheckHTTPMethod returns a handler for chi's MethodNotAllowed hook.
//
// Behavior:
//   - Looks up the route whose pattern equals the request path exactly
//   - If the route has a handler for the request method, re-dispatches the
//     request through router
//   - Otherwise responds with 404 and {"message": "Route not found"}
//     instead of chi's 405, so unsupported methods do not reveal which
//     routes exist
//
// Only exact patterns are compared; parameterised routes always fall through
// to 404.
//
// Parameters:
//
//	router - the mux the handler is installed on
//
// Example usage:
//
//	router.MethodNotAllowed(CheckHTTPMethod(router))
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var foundRoute chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				foundRoute = route
				break
			}
		}

		if _, ok := foundRoute.Handlers[r.Method]; !ok {
			utils.WriteMessage(w, "Route not found", http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}

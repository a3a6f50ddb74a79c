// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/MKhiriev/client-keeper/internal/app"
	"github.com/go-chi/chi/v5"
)

var allowCandidates = []string{
	http.MethodGet,
	http.MethodHead,
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
	http.MethodOptions,
}

// methodNotAllowed returns the router's MethodNotAllowed handler. A custom
// handler replaces chi's default one, so the Allow header is computed here by
// matching the request path against router for every candidate method.
//
// Usage:
//
//	router.MethodNotAllowed(h.methodNotAllowed(router))
func (h *Handler) methodNotAllowed(router chi.Routes) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if allowed := allowedMethods(router, routingPath(r)); len(allowed) > 0 {
			w.Header().Set("Allow", strings.Join(allowed, ", "))
		}
		writeMessage(w, r, http.StatusMethodNotAllowed, app.MsgMethodNotAllowed)
	}
}

func allowedMethods(router chi.Routes, path string) []string {
	var allowed []string
	for _, method := range allowCandidates {
		if router.Match(chi.NewRouteContext(), method, path) {
			allowed = append(allowed, method)
		}
	}
	return allowed
}

// routingPath is the path chi routes on.
func routingPath(r *http.Request) string {
	if r.URL.RawPath != "" {
		return r.URL.RawPath
	}
	return r.URL.Path
}

// routeNotFound is registered as the router's NotFound handler.
func (h *Handler) routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeMessage(w, r, http.StatusNotFound, app.MsgRouteNotFound)
}

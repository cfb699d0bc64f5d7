// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/go-chi/chi/v5"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()

	router.Use(
		h.withTraceID,
		h.withLogging,
		h.withRecover,
		h.withPusher,
		h.withOrigin,
		h.withCORS(),
		h.withSecurityHeaders(),
		h.withRateLimit(),
		h.withJSONBody,
		h.withStatic,
	)

	// set before mounting so chi sub-routers inherit them
	router.NotFound(h.notFound)
	router.MethodNotAllowed(h.notFound)

	router.Get("/", h.liveness)
	router.Head("/", h.liveness)

	for _, area := range Areas() {
		if collaborator, ok := h.collaborators[area]; ok {
			router.Mount(area.Prefix(), collaborator)
		}
	}

	return router
}

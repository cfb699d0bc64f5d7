// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/fantasy-league/league-server/internal/realtime"
)

// withPusher makes the realtime pusher reachable from collaborators through
// realtime.FromContext.
func (h *Handler) withPusher(next http.Handler) http.Handler {
	if h.pusher == nil {
		return next
	}
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(realtime.NewContext(r.Context(), h.pusher)))
	})
}

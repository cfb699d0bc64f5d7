// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/go-chi/cors"
)

const originHeader = "Origin"

// withOrigin stops requests whose Origin fails the policy. The rejection is
// logged at error and answered with the generic 500 body.
func (h *Handler) withOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := h.policy.Check(r.Header.Get(originHeader)); err != nil {
			fail(w, r, err, "Blocked by CORS")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// withCORS adds the CORS response headers for allowed origins and answers
// preflight requests.
func (h *Handler) withCORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowOriginFunc: func(_ *http.Request, origin string) bool {
			return h.policy.Allowed(origin)
		},
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodDelete, http.MethodPatch, http.MethodHead,
		},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{
			traceIDHeader,
			headerRateLimitLimit, headerRateLimitRemaining,
			headerRateLimitReset, headerRetryAfter,
		},
		AllowCredentials: true,
	})
}

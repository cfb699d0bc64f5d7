// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/fantasy-league/league-server/internal/app"
	"github.com/fantasy-league/league-server/internal/logger"
	"github.com/fantasy-league/league-server/internal/utils"
	"github.com/go-chi/httprate"
)

const (
	headerRateLimitLimit     = "RateLimit-Limit"
	headerRateLimitRemaining = "RateLimit-Remaining"
	headerRateLimitReset     = "RateLimit-Reset"
	headerRetryAfter         = "Retry-After"
)

// withRateLimit admits at most RateLimit.MaxRequests requests per client
// address within a sliding RateLimit.Window.
func (h *Handler) withRateLimit() func(http.Handler) http.Handler {
	return httprate.Limit(
		h.rateLimit.MaxRequests,
		h.rateLimit.Window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithResponseHeaders(httprate.ResponseHeaders{
			Limit:      headerRateLimitLimit,
			Remaining:  headerRateLimitRemaining,
			Reset:      headerRateLimitReset,
			RetryAfter: headerRetryAfter,
		}),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			logger.FromRequest(r).Warn().
				Str("remote_addr", r.RemoteAddr).
				Msg("rate limit exceeded")
			utils.WriteError(w, app.MsgTooManyRequests, http.StatusTooManyRequests)
		}),
	)
}

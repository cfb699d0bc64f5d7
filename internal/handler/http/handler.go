// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/fantasy-league/league-server/internal/app"
	"github.com/fantasy-league/league-server/internal/config"
	"github.com/fantasy-league/league-server/internal/logger"
	"github.com/fantasy-league/league-server/internal/origin"
	"github.com/fantasy-league/league-server/internal/realtime"
)

type Handler struct {
	collaborators Collaborators
	pusher        realtime.Pusher

	policy    origin.Policy
	rateLimit config.RateLimit
	staticDir string

	logger *logger.Logger
}

// NewHandler validates the collaborators and returns the edge handler. The
// pusher, if non-nil, is made available to collaborators through
// realtime.FromContext.
func NewHandler(collaborators Collaborators, pusher realtime.Pusher, cfg *config.StructuredConfig, logger *logger.Logger) (*Handler, error) {
	for area, handler := range collaborators {
		if !area.valid() {
			return nil, fmt.Errorf("%w: %q", ErrUnknownArea, area)
		}
		if handler == nil {
			return nil, fmt.Errorf("%w: %q", ErrNilCollaborator, area)
		}
	}

	logger.Info().Int("collaborators", len(collaborators)).Msg("http handler created")
	return &Handler{
		collaborators: collaborators,
		pusher:        pusher,
		policy:        origin.NewPolicy(cfg.CORS),
		rateLimit:     cfg.RateLimit,
		staticDir:     cfg.Static.Dir,
		logger:        logger,
	}, nil
}

// Pusher returns the outbound realtime channel handed to collaborators.
func (h *Handler) Pusher() realtime.Pusher {
	return h.pusher
}

func (h *Handler) liveness(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(app.MsgServerRunning))
}

package handler

import (
	"fmt"
	"net/http"

	"github.com/fantasy-league/league-server/internal/config"
	myHTTP "github.com/fantasy-league/league-server/internal/handler/http"
	"github.com/fantasy-league/league-server/internal/logger"
	"github.com/fantasy-league/league-server/internal/origin"
	"github.com/fantasy-league/league-server/internal/presence"
	"github.com/fantasy-league/league-server/internal/realtime"
	"github.com/fantasy-league/league-server/internal/utils"
	"github.com/go-chi/chi/v5"
)

type Handlers struct {
	HTTP     *myHTTP.Handler
	Realtime *realtime.Gateway

	realtimePath string
}

// NewHandlers builds the realtime gateway over a fresh presence registry and
// the HTTP edge that hands the gateway to collaborators.
func NewHandlers(collaborators myHTTP.Collaborators, cfg *config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	if cfg == nil {
		return nil, errNilConfig
	}
	logger.Info().Msg("creating new handlers...")

	gateway := realtime.NewGateway(
		presence.NewRegistry(),
		origin.NewPolicy(cfg.CORS),
		utils.NewUUIDGenerator(),
		cfg.Realtime,
		logger.GetChildLogger(),
	)

	edge, err := myHTTP.NewHandler(collaborators, gateway, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("creating http handler: %w", err)
	}

	return &Handlers{
		HTTP:         edge,
		Realtime:     gateway,
		realtimePath: cfg.Realtime.Path,
	}, nil
}

// Init returns the root router: the realtime endpoint, and the HTTP edge for
// everything else.
func (h *Handlers) Init() http.Handler {
	root := chi.NewRouter()
	root.Handle(h.realtimePath, h.Realtime)
	root.Mount("/", h.HTTP.Init())

	return root
}

package server

import (
	"context"
	"errors"
	"os/signal"
	"syscall"
	"time"

	"github.com/fantasy-league/league-server/internal/config"
	"github.com/fantasy-league/league-server/internal/handler"
	"github.com/fantasy-league/league-server/internal/logger"
)

type server struct {
	httpServer *httpServer
	realtime   shutdowner

	shutdownTimeout time.Duration
	ready           chan struct{}

	logger *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	if handlers == nil || handlers.HTTP == nil || handlers.Realtime == nil {
		return nil, errNoHandlers
	}
	logger.Info().Msg("creating new server...")

	return &server{
		httpServer:      newHTTPServer(handlers.Init(), cfg, logger),
		realtime:        handlers.Realtime,
		shutdownTimeout: cfg.ShutdownTimeout,
		ready:           make(chan struct{}),
		logger:          logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.run(ctx); err != nil {
		s.logger.Error().Err(err).Msg("Error running server")
	}
}

func (s *server) Shutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.shutdown(ctx); err != nil {
		s.logger.Error().Err(err).Msg("server Shutdown")
	}
}

// run serves until ctx is done or the listener fails, then drains within the shutdown timeout.
func (s *server) run(ctx context.Context) error {
	if err := s.httpServer.listen(); err != nil {
		return err
	}
	close(s.ready)

	served := make(chan struct{})
	go func() {
		defer close(served)
		s.httpServer.RunServer()
	}()

	select {
	case <-ctx.Done():
	case <-served:
	}

	// ctx is already cancelled, so the drain gets a fresh deadline
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.shutdown(shutdownCtx)
	<-served
	if err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

// shutdown stops accepting HTTP requests first, then closes the realtime
// connections, which http.Server.Shutdown does not track once hijacked.
func (s *server) shutdown(ctx context.Context) error {
	return errors.Join(
		s.httpServer.Shutdown(ctx),
		s.realtime.Shutdown(ctx),
	)
}

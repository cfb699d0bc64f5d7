// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"context"
	"net/http"
	"sync"

	"github.com/fantasy-league/league-server/internal/config"
	"github.com/fantasy-league/league-server/internal/logger"
	"github.com/fantasy-league/league-server/internal/origin"
	"github.com/fantasy-league/league-server/internal/presence"
	"github.com/gorilla/websocket"
)

// IDGenerator issues connection identifiers.
type IDGenerator interface {
	Generate() string
}

// Gateway accepts WebSocket connections, relays their lifecycle events into
// the presence registry, and pushes events to registered users.
type Gateway struct {
	registry *presence.Registry
	policy   origin.Policy
	ids      IDGenerator
	upgrader websocket.Upgrader

	maxMessageSize int64

	mu      sync.RWMutex
	conns   map[string]*Conn
	closing bool
	wg      sync.WaitGroup

	logger *logger.Logger
}

// NewGateway returns a Gateway that records registrations in registry and
// admits handshakes whose Origin passes policy.
func NewGateway(registry *presence.Registry, policy origin.Policy, ids IDGenerator, cfg config.Realtime, logger *logger.Logger) *Gateway {
	g := &Gateway{
		registry:       registry,
		policy:         policy,
		ids:            ids,
		maxMessageSize: cfg.MaxMessageSize,
		conns:          make(map[string]*Conn),
		logger:         logger,
	}
	g.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin:     g.checkOrigin,
	}

	logger.Info().Str("path", cfg.Path).Msg("realtime gateway created")
	return g
}

// Registry exposes the presence registry to route collaborators.
func (g *Gateway) Registry() *presence.Registry {
	return g.registry
}

// ServeHTTP upgrades the request to a WebSocket and starts the pumps of the
// new connection. Rejected handshakes are answered by the upgrader.
func (g *Gateway) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	g.mu.RLock()
	closing := g.closing
	g.mu.RUnlock()
	if closing {
		http.Error(w, http.StatusText(http.StatusServiceUnavailable), http.StatusServiceUnavailable)
		return
	}

	ws, err := g.upgrader.Upgrade(w, r, nil)
	if err != nil {
		g.logger.Warn().Err(err).Str("remote_addr", r.RemoteAddr).Msg("websocket upgrade failed")
		return
	}
	ws.SetReadLimit(g.maxMessageSize)

	c := newConn(g.ids.Generate(), ws, r.RemoteAddr, g)
	if !g.track(c) {
		_ = ws.Close()
		return
	}

	g.handle(c, Event{Kind: EventConnected})

	go func() {
		defer g.wg.Done()
		c.writePump()
	}()
	go func() {
		defer g.wg.Done()
		c.readPump()
	}()
}

// EmitTo queues event for the connection userID is registered on.
func (g *Gateway) EmitTo(userID, event string, data any) error {
	connID, ok := g.registry.Lookup(userID)
	if !ok {
		return ErrUserOffline
	}

	g.mu.RLock()
	c, ok := g.conns[connID]
	g.mu.RUnlock()
	if !ok {
		return ErrConnectionGone
	}

	payload, err := encodeEnvelope(event, data)
	if err != nil {
		return err
	}

	return c.enqueue(payload)
}

// Shutdown stops accepting handshakes, closes every live connection and
// waits for their pumps to finish or for ctx to expire.
func (g *Gateway) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("realtime gateway shutdown")

	g.mu.Lock()
	g.closing = true
	conns := make([]*Conn, 0, len(g.conns))
	for _, c := range g.conns {
		conns = append(conns, c)
	}
	g.mu.Unlock()

	for _, c := range conns {
		c.closeTransport()
	}

	done := make(chan struct{})
	go func() {
		g.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		g.logger.Info().Int("connections", len(conns)).Msg("realtime gateway closed all connections")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// handle applies one lifecycle event to c. All events of a connection are
// raised from its read pump (or before the pumps start), so they are applied
// in order.
func (g *Gateway) handle(c *Conn, ev Event) {
	log := g.logger.With().Str("socket_id", c.id).Logger()

	switch ev.Kind {
	case EventConnected:
		log.Info().Str("remote_addr", c.addr).Msgf("Usuario conectado: %s", c.id)

	case EventRegistered:
		if c.state == StateDisconnected {
			return
		}
		g.registry.Register(ev.UserID, c.id)
		c.state = StateRegistered
		log.Info().Str("user_id", ev.UserID).Msgf("Usuario ID %s registrado con socket ID %s", ev.UserID, c.id)

	case EventDisconnected:
		if c.state == StateDisconnected {
			return
		}
		c.state = StateDisconnected
		removed := g.registry.Disconnect(c.id)
		g.untrack(c)
		c.closeSend()
		log.Info().Strs("users", removed).Msgf("Usuario desconectado: %s", c.id)
	}
}

func (g *Gateway) checkOrigin(r *http.Request) bool {
	o := r.Header.Get("Origin")
	if err := g.policy.Check(o); err != nil {
		g.logger.Error().Err(err).Str("origin", o).Msg("Blocked by realtime CORS")
		return false
	}

	return true
}

// track registers c and reserves its two pumps in wg. It reports false once
// Shutdown has started.
func (g *Gateway) track(c *Conn) bool {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.closing {
		return false
	}
	g.conns[c.id] = c
	// counted under mu so that Shutdown never waits before the pumps exist
	g.wg.Add(2)
	return true
}

func (g *Gateway) untrack(c *Conn) {
	g.mu.Lock()
	defer g.mu.Unlock()

	delete(g.conns, c.id)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"encoding/json"
	"errors"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/fantasy-league/league-server/internal/logger"
	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = 54 * time.Second
	sendBufferSize = 256
)

// Conn is one live WebSocket connection.
type Conn struct {
	id   string
	ws   *websocket.Conn
	addr string
	g    *Gateway

	// state is only touched by Gateway.handle.
	state State

	mu     sync.Mutex
	send   chan []byte
	closed bool
}

func newConn(id string, ws *websocket.Conn, addr string, g *Gateway) *Conn {
	return &Conn{
		id:    id,
		ws:    ws,
		addr:  addr,
		g:     g,
		state: StateConnected,
		send:  make(chan []byte, sendBufferSize),
	}
}

// ID returns the connection identifier stored in the presence registry.
func (c *Conn) ID() string {
	return c.id
}

func (c *Conn) enqueue(payload []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return ErrConnectionGone
	}

	select {
	case c.send <- payload:
		return nil
	default:
		return ErrSendBufferFull
	}
}

func (c *Conn) closeSend() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return
	}
	c.closed = true
	close(c.send)
}

func (c *Conn) closeTransport() {
	if err := c.ws.Close(); err != nil && !isExpectedCloseError(err) {
		c.g.logger.Warn().Err(err).Str("socket_id", c.id).Msg("error closing websocket")
	}
}

func (c *Conn) readPump() {
	defer func() {
		c.g.handle(c, Event{Kind: EventDisconnected})
		c.closeTransport()
	}()

	c.setupReadConnection()

	for {
		_, raw, err := c.ws.ReadMessage()
		if err != nil {
			c.logReadError(err)
			return
		}

		c.processMessage(raw)
	}
}

func (c *Conn) setupReadConnection() {
	if err := c.ws.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		c.g.logger.Warn().Err(err).Str("socket_id", c.id).Msg("error setting read deadline")
	}
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})
}

func (c *Conn) processMessage(raw []byte) {
	var envelope Envelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		c.g.logger.Warn().Err(err).Str("socket_id", c.id).Msg("invalid realtime message")
		return
	}

	switch envelope.Event {
	case eventRegister:
		userID, err := parseUserID(envelope.Data)
		if err != nil {
			c.g.logger.Warn().Err(err).Str("socket_id", c.id).Msg("register ignored")
			return
		}
		c.g.handle(c, Event{Kind: EventRegistered, UserID: userID})
	default:
		c.g.logger.Debug().Str("socket_id", c.id).Str("event", envelope.Event).Msg("unknown realtime event ignored")
	}
}

func (c *Conn) logReadError(err error) {
	log := &logger.Logger{Logger: c.g.logger.With().Str("socket_id", c.id).Logger()}

	switch {
	case errors.Is(err, websocket.ErrReadLimit):
		log.Warn().Int64("limit", c.g.maxMessageSize).Msg("realtime message exceeded maximum size")
	case websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway, websocket.CloseNoStatusReceived),
		errors.Is(err, io.EOF), isExpectedCloseError(err):
		log.Debug().Err(err).Msg("realtime connection closed")
	default:
		log.Warn().Err(err).Msg("realtime read error")
	}
}

func (c *Conn) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.closeTransport()
	}()

	for {
		select {
		case message, ok := <-c.send:
			if !c.write(message, ok) {
				return
			}
		case <-ticker.C:
			if !c.ping() {
				return
			}
		}
	}
}

func (c *Conn) write(message []byte, ok bool) bool {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return false
	}

	if !ok {
		_ = c.ws.WriteMessage(websocket.CloseMessage, []byte{})
		return false
	}

	if err := c.ws.WriteMessage(websocket.TextMessage, message); err != nil {
		if !isExpectedCloseError(err) {
			c.g.logger.Warn().Err(err).Str("socket_id", c.id).Msg("error writing realtime message")
		}
		return false
	}

	return true
}

func (c *Conn) ping() bool {
	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return false
	}

	return c.ws.WriteMessage(websocket.PingMessage, nil) == nil
}

// isExpectedCloseError checks if an error is expected during connection closure.
func isExpectedCloseError(err error) bool {
	if err == nil {
		return true
	}
	errStr := err.Error()
	return strings.Contains(errStr, "use of closed network connection") ||
		strings.Contains(errStr, "websocket: close sent") ||
		strings.Contains(errStr, "broken pipe")
}

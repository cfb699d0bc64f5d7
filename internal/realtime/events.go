// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Inbound event names.
const (
	eventRegister = "register"
)

// EventKind enumerates the lifecycle events of a connection.
type EventKind int

const (
	// EventConnected is raised once the handshake succeeded.
	EventConnected EventKind = iota
	// EventRegistered is raised by a "register" message.
	EventRegistered
	// EventDisconnected is raised when the transport closes.
	EventDisconnected
)

func (k EventKind) String() string {
	switch k {
	case EventConnected:
		return "connected"
	case EventRegistered:
		return "registered"
	case EventDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Event is one step of a connection's state machine. UserID is set only for
// EventRegistered.
type Event struct {
	Kind   EventKind
	UserID string
}

// State is the position of a connection in its lifecycle.
type State int

const (
	StateConnected State = iota
	StateRegistered
	StateDisconnected
)

func (s State) String() string {
	switch s {
	case StateConnected:
		return "connected"
	case StateRegistered:
		return "registered"
	case StateDisconnected:
		return "disconnected"
	default:
		return "unknown"
	}
}

// Envelope is the wire format of every message in both directions.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// encodeEnvelope marshals an outbound event.
func encodeEnvelope(event string, data any) ([]byte, error) {
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("error encoding %q payload: %w", event, err)
	}

	return json.Marshal(Envelope{Event: event, Data: raw})
}

// parseUserID turns a register payload into the registry key: strings are
// used verbatim, numbers in their shortest decimal form, so 42, 42.0 and
// "42" all register "42".
func parseUserID(data json.RawMessage) (string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidUserID, err)
	}

	switch value := v.(type) {
	case string:
		if strings.TrimSpace(value) == "" {
			return "", fmt.Errorf("%w: empty string", ErrInvalidUserID)
		}
		return value, nil
	case json.Number:
		f, err := strconv.ParseFloat(value.String(), 64)
		if err != nil {
			return value.String(), nil
		}
		return strconv.FormatFloat(f, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrInvalidUserID, string(data))
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import "errors"

// Sentinel errors of the gateway. Callers can match against them with
// [errors.Is].
var (
	// ErrUserOffline is returned by EmitTo when the user has no live
	// registration.
	ErrUserOffline = errors.New("user is not connected")

	// ErrConnectionGone is returned by EmitTo when the registered connection
	// closed before the event could be queued.
	ErrConnectionGone = errors.New("connection is gone")

	// ErrSendBufferFull is returned by EmitTo when the connection does not
	// drain its outbound queue fast enough.
	ErrSendBufferFull = errors.New("connection send buffer is full")

	// ErrInvalidUserID is returned when a register payload is not a
	// non-empty string or a number.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrGatewayClosed is returned once Shutdown has been called.
	ErrGatewayClosed = errors.New("gateway is shut down")
)

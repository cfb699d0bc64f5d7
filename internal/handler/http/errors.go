// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors of the HTTP edge. Callers can match against them with
// [errors.Is].
var (
	// ErrUnknownArea is returned by NewHandler when a collaborator is
	// registered for an area outside the fixed set.
	ErrUnknownArea = errors.New("unknown route area")

	// ErrNilCollaborator is returned by NewHandler for a nil handler.
	ErrNilCollaborator = errors.New("nil route collaborator")

	// errPanic wraps a recovered non-error panic value.
	errPanic = errors.New("handler panicked")
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package realtime

import "context"

// Pusher delivers an event to the live connection of a user. It is the
// contract route collaborators depend on for outbound notifications.
type Pusher interface {
	EmitTo(userID, event string, data any) error
}

type contextKey string

func (c contextKey) String() string {
	return string(c)
}

var pusherCtxKey = contextKey("realtimePusher")

// NewContext returns a copy of ctx carrying p.
func NewContext(ctx context.Context, p Pusher) context.Context {
	return context.WithValue(ctx, pusherCtxKey, p)
}

// FromContext returns the Pusher stored by NewContext, if any.
func FromContext(ctx context.Context) (Pusher, bool) {
	p, ok := ctx.Value(pusherCtxKey).(Pusher)
	return p, ok
}

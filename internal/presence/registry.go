// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package presence keeps the in-memory mapping from user identifier to the
// identifier of the live connection that user registered on.
//
// A user has at most one entry; a later registration overwrites it. Entries
// are removed only when the owning connection disconnects, and removal is by
// connection identifier, so a user who re-registered on a newer connection
// keeps the newer mapping when the older connection closes.
package presence

import "sync"

// Registry maps user IDs to connection IDs. The zero value is not usable;
// create one with NewRegistry. A Registry is safe for concurrent use.
type Registry struct {
	mu sync.RWMutex

	// byUser is the presence map itself.
	byUser map[string]string
	// byConn is the reverse index used for O(1) disconnect cleanup.
	// Invariant: byConn[c][u] exists iff byUser[u] == c.
	byConn map[string]map[string]struct{}
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		byUser: make(map[string]string),
		byConn: make(map[string]map[string]struct{}),
	}
}

// Register maps userID to connID, replacing any previous mapping of userID.
// Registering the same pair twice is a no-op.
func (r *Registry) Register(userID, connID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.byUser[userID]; ok {
		if prev == connID {
			return
		}
		r.unindex(prev, userID)
	}

	r.byUser[userID] = connID
	users, ok := r.byConn[connID]
	if !ok {
		users = make(map[string]struct{}, 1)
		r.byConn[connID] = users
	}
	users[userID] = struct{}{}
}

// Disconnect removes every entry whose connection is connID and returns the
// user IDs that were removed. Entries of users that have since registered on
// another connection are untouched.
func (r *Registry) Disconnect(connID string) []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, ok := r.byConn[connID]
	if !ok {
		return nil
	}

	removed := make([]string, 0, len(users))
	for userID := range users {
		delete(r.byUser, userID)
		removed = append(removed, userID)
	}
	delete(r.byConn, connID)

	return removed
}

// Lookup returns the connection userID is registered on, if any.
func (r *Registry) Lookup(userID string) (string, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	connID, ok := r.byUser[userID]
	return connID, ok
}

// Len returns the number of registered users.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.byUser)
}

// Snapshot returns a copy of the user → connection mapping.
func (r *Registry) Snapshot() map[string]string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make(map[string]string, len(r.byUser))
	for userID, connID := range r.byUser {
		snapshot[userID] = connID
	}

	return snapshot
}

func (r *Registry) unindex(connID, userID string) {
	users := r.byConn[connID]
	delete(users, userID)
	if len(users) == 0 {
		delete(r.byConn, connID)
	}
}

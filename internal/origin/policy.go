// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package origin decides which cross-origin callers may talk to the HTTP
// edge and the realtime gateway.
//
// Matching is purely textual: an origin is allowed when it is absent, starts
// with the local development origin, or ends with the deployment-platform
// suffix. Hostnames are not parsed, so "http://localhost:5173.evil.com"
// passes the prefix rule.
package origin

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fantasy-league/league-server/internal/config"
)

// ErrNotAllowed is returned by Policy.Check for a rejected origin.
var ErrNotAllowed = errors.New("not allowed by CORS")

// Policy is the origin allow-list of one component. The HTTP edge and the
// realtime gateway each hold their own value.
type Policy struct {
	// AllowedLocalPrefix admits origins starting with it.
	AllowedLocalPrefix string
	// AllowedDeploySuffix admits origins ending with it.
	AllowedDeploySuffix string
}

// NewPolicy builds a Policy from the CORS configuration group.
func NewPolicy(cfg config.CORS) Policy {
	return Policy{
		AllowedLocalPrefix:  cfg.LocalOrigin,
		AllowedDeploySuffix: cfg.DeploySuffix,
	}
}

// Allowed reports whether origin may interact with the server. An empty
// origin (same-origin or non-browser caller) is always allowed; empty policy
// fields never match.
func (p Policy) Allowed(origin string) bool {
	if origin == "" {
		return true
	}
	if p.AllowedLocalPrefix != "" && strings.HasPrefix(origin, p.AllowedLocalPrefix) {
		return true
	}
	if p.AllowedDeploySuffix != "" && strings.HasSuffix(origin, p.AllowedDeploySuffix) {
		return true
	}

	return false
}

// Check is Allowed in error form: it returns an error wrapping ErrNotAllowed
// that names the rejected origin.
func (p Policy) Check(origin string) error {
	if p.Allowed(origin) {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrNotAllowed, origin)
}

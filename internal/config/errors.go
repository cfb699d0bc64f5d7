// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates an out-of-range port or a
	// non-positive shutdown timeout.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidCORSConfigs indicates an empty local origin or deploy suffix.
	ErrInvalidCORSConfigs = errors.New("invalid cors configuration")
	// ErrInvalidRateLimitConfigs indicates a non-positive window or budget.
	ErrInvalidRateLimitConfigs = errors.New("invalid rate limit configuration")
	// ErrInvalidLogConfigs indicates an unknown level or empty sink paths.
	ErrInvalidLogConfigs = errors.New("invalid log configuration")
	// ErrInvalidRealtimeConfigs indicates a relative endpoint path or a
	// non-positive read limit.
	ErrInvalidRealtimeConfigs = errors.New("invalid realtime configuration")
)

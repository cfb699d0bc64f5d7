// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"
)

// knownLogLevels lists the thresholds accepted by the logger.
var knownLogLevels = map[string]struct{}{
	"error":   {},
	"warn":    {},
	"info":    {},
	"http":    {},
	"verbose": {},
	"debug":   {},
	"silly":   {},
}

// validate checks that the final merged [StructuredConfig] satisfies all
// invariants before it is used at startup.
func (cfg *StructuredConfig) validate() error {
	if cfg.Server.Port < 1 || cfg.Server.Port > 65535 {
		return fmt.Errorf("%w: port %d", ErrInvalidServerConfigs, cfg.Server.Port)
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("%w: shutdown timeout %s", ErrInvalidServerConfigs, cfg.Server.ShutdownTimeout)
	}

	if cfg.CORS.LocalOrigin == "" || cfg.CORS.DeploySuffix == "" {
		return ErrInvalidCORSConfigs
	}

	if cfg.RateLimit.Window <= 0 || cfg.RateLimit.MaxRequests <= 0 {
		return ErrInvalidRateLimitConfigs
	}

	if _, ok := knownLogLevels[strings.ToLower(cfg.Log.Level)]; !ok {
		return fmt.Errorf("%w: level %q", ErrInvalidLogConfigs, cfg.Log.Level)
	}
	if cfg.Log.ErrorFile == "" || cfg.Log.CombinedFile == "" {
		return ErrInvalidLogConfigs
	}

	if !strings.HasPrefix(cfg.Realtime.Path, "/") || cfg.Realtime.MaxMessageSize <= 0 {
		return ErrInvalidRealtimeConfigs
	}

	return nil
}

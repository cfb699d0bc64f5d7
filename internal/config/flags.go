// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"fmt"
	"io"
	"time"
)

// ParseFlags parses the configuration flags found in args (usually
// os.Args[1:]). Unset flags leave their field zero so that lower-priority
// sources still apply.
//
// Flags:
//
//	-p port to listen on
//	-host interface to bind to
//	-env environment designation (development, production, test)
//	-c/-config json file path with configs
//	-log-level log threshold
//	-static-dir public directory
//	-realtime-path websocket endpoint path
//	-rate-limit-window sliding window (e.g., "15m")
//	-rate-limit-max requests per window
//	-shutdown-timeout graceful shutdown budget (e.g., "10s")
func ParseFlags(args []string) (*StructuredConfig, error) {
	var port int
	var host string
	var environment string
	var jsonConfigPath string
	var logLevel string
	var staticDir string
	var realtimePath string
	var rateLimitWindow time.Duration
	var rateLimitMax int
	var shutdownTimeout time.Duration

	fs := flag.NewFlagSet("league-server", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.IntVar(&port, "p", 0, "Port to listen on")
	fs.StringVar(&host, "host", "", "Interface to bind to")
	fs.StringVar(&environment, "env", "", "Environment designation")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&logLevel, "log-level", "", "Log threshold")
	fs.StringVar(&staticDir, "static-dir", "", "Public directory")
	fs.StringVar(&realtimePath, "realtime-path", "", "WebSocket endpoint path")
	fs.DurationVar(&rateLimitWindow, "rate-limit-window", 0, "Rate limit window (e.g., 15m)")
	fs.IntVar(&rateLimitMax, "rate-limit-max", 0, "Requests admitted per window")
	fs.DurationVar(&shutdownTimeout, "shutdown-timeout", 0, "Graceful shutdown budget (e.g., 10s)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		Server: Server{
			Port:            port,
			Host:            host,
			Environment:     environment,
			ShutdownTimeout: shutdownTimeout,
		},
		RateLimit: RateLimit{
			Window:      rateLimitWindow,
			MaxRequests: rateLimitMax,
		},
		Log: Log{
			Level: logLevel,
		},
		Static: Static{
			Dir: staticDir,
		},
		Realtime: Realtime{
			Path: realtimePath,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

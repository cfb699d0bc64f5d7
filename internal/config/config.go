// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"net"
	"strconv"
	"time"
)

// Environment designations recognised by the server. Any other value is
// treated like EnvDevelopment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
	EnvTest        = "test"
)

// StructuredConfig is the top-level configuration container of the league
// server. It aggregates all sub-configurations and is populated by merging
// values from a .env file, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Server holds the listening address, the environment designation and
	// the shutdown budget.
	Server Server

	// CORS holds the origin policy shared by the HTTP edge and the realtime
	// gateway.
	CORS CORS `envPrefix:"CORS_"`

	// RateLimit holds the per-client request budget of the HTTP edge.
	RateLimit RateLimit `envPrefix:"RATE_LIMIT_"`

	// Log holds the log threshold and the paths of the durable log sinks.
	Log Log `envPrefix:"LOG_"`

	// Static holds the public directory served verbatim.
	Static Static `envPrefix:"STATIC_"`

	// Realtime holds the WebSocket endpoint settings.
	Realtime Realtime `envPrefix:"REALTIME_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Server holds network settings of the inbound transport layer.
type Server struct {
	// Port is the TCP port the HTTP server listens on.
	// Env: PORT
	Port int `env:"PORT"`

	// Host is the interface the HTTP server binds to.
	// Env: HOST
	Host string `env:"HOST"`

	// Environment is the deployment designation: "production" disables the
	// console log sink, "test" suppresses binding a socket.
	// Env: NODE_ENV
	Environment string `env:"NODE_ENV"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server and
	// the realtime gateway.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT"`
}

// CORS describes which cross-origin callers may talk to the server.
type CORS struct {
	// LocalOrigin is the local development origin; any Origin header that
	// starts with it is allowed.
	// Env: CORS_LOCAL_ORIGIN
	LocalOrigin string `env:"LOCAL_ORIGIN"`

	// DeploySuffix is the deployment-platform domain suffix; any Origin
	// header that ends with it is allowed.
	// Env: CORS_DEPLOY_SUFFIX
	DeploySuffix string `env:"DEPLOY_SUFFIX"`
}

// RateLimit is a sliding-window request budget per client address.
type RateLimit struct {
	// Window is the length of the sliding window.
	// Env: RATE_LIMIT_WINDOW
	Window time.Duration `env:"WINDOW"`

	// MaxRequests is the number of requests admitted per window.
	// Env: RATE_LIMIT_MAX
	MaxRequests int `env:"MAX"`
}

// Log holds logger settings.
type Log struct {
	// Level is the threshold: one of error, warn, info, http, verbose,
	// debug, silly.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`

	// ErrorFile receives error records only.
	// Env: LOG_ERROR_FILE
	ErrorFile string `env:"ERROR_FILE"`

	// CombinedFile receives every admitted record.
	// Env: LOG_COMBINED_FILE
	CombinedFile string `env:"COMBINED_FILE"`
}

// Static holds the public directory settings.
type Static struct {
	// Dir is served verbatim for matching paths.
	// Env: STATIC_DIR
	Dir string `env:"DIR"`
}

// Realtime holds the WebSocket gateway settings.
type Realtime struct {
	// Path is the endpoint the gateway accepts handshakes on.
	// Env: REALTIME_PATH
	Path string `env:"PATH"`

	// MaxMessageSize is the read limit of a single inbound frame in bytes.
	// Env: REALTIME_MAX_MESSAGE_SIZE
	MaxMessageSize int64 `env:"MAX_MESSAGE_SIZE"`
}

// Default returns the configuration used for every field the sources leave
// empty.
func Default() StructuredConfig {
	return StructuredConfig{
		Server: Server{
			Port:            3000,
			Host:            "0.0.0.0",
			Environment:     EnvDevelopment,
			ShutdownTimeout: 10 * time.Second,
		},
		CORS: CORS{
			LocalOrigin:  "http://localhost:5173",
			DeploySuffix: ".vercel.app",
		},
		RateLimit: RateLimit{
			Window:      15 * time.Minute,
			MaxRequests: 200,
		},
		Log: Log{
			Level:        "info",
			ErrorFile:    "error.log",
			CombinedFile: "combined.log",
		},
		Static: Static{
			Dir: "public",
		},
		Realtime: Realtime{
			Path:           "/socket",
			MaxMessageSize: 4096,
		},
	}
}

// Address returns the host:port pair the HTTP server listens on.
func (s Server) Address() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}

// IsProduction reports whether the server runs under the production
// designation.
func (s Server) IsProduction() bool {
	return s.Environment == EnvProduction
}

// IsTest reports whether the server runs under the test designation, in
// which case no socket is bound.
func (s Server) IsTest() bool {
	return s.Environment == EnvTest
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(defaultDotEnvFile).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

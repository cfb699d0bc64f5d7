// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import "github.com/rs/zerolog"

// notAvailable replaces build metadata that was not injected at link time.
const notAvailable = "N/A"

// BuildInfo carries immutable build-time metadata embedded into the binary.
//
// Values are injected by linker flags during CI/CD and shown at startup for
// diagnostics and release traceability.
type BuildInfo struct {
	version string
	date    string
	commit  string
}

// NewBuildInfo constructs [BuildInfo], replacing empty values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		version: orNotAvailable(version),
		date:    orNotAvailable(date),
		commit:  orNotAvailable(commit),
	}
}

func orNotAvailable(s string) string {
	if s == "" {
		return notAvailable
	}
	return s
}

// Version returns the semantic version string of the build.
func (b BuildInfo) Version() string {
	return b.version
}

// Date returns the build timestamp string.
func (b BuildInfo) Date() string {
	return b.date
}

// Commit returns the source-control commit hash used for the build.
func (b BuildInfo) Commit() string {
	return b.commit
}

// MarshalZerologObject lets the build info be logged as a nested object.
func (b BuildInfo) MarshalZerologObject(e *zerolog.Event) {
	e.Str("version", b.version).
		Str("date", b.date).
		Str("commit", b.commit)
}

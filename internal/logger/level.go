// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package logger

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// ErrUnknownLevel is returned by ParseLevel for names outside the level set.
var ErrUnknownLevel = errors.New("unknown log level")

// Severities below info. zerolog has no slot between info and debug, so the
// four of them occupy zerolog's debug and trace values and two custom values
// under trace. Each keeps its own threshold.
const (
	levelHTTP    = zerolog.DebugLevel
	levelVerbose = zerolog.TraceLevel
	levelDebug   = zerolog.TraceLevel - 1
	levelSilly   = zerolog.TraceLevel - 2
)

// levels orders the severities from most to least severe:
// error < warn < info < http < verbose < debug < silly.
var levels = map[string]zerolog.Level{
	"error":   zerolog.ErrorLevel,
	"warn":    zerolog.WarnLevel,
	"info":    zerolog.InfoLevel,
	"http":    levelHTTP,
	"verbose": levelVerbose,
	"debug":   levelDebug,
	"silly":   levelSilly,
}

var levelNames = map[zerolog.Level]string{
	levelHTTP:    "http",
	levelVerbose: "verbose",
	levelDebug:   "debug",
	levelSilly:   "silly",
}

// ParseLevel maps a threshold name onto a zerolog level. The empty name is
// info.
func ParseLevel(name string) (zerolog.Level, error) {
	if name == "" {
		return zerolog.InfoLevel, nil
	}

	level, ok := levels[strings.ToLower(name)]
	if !ok {
		return zerolog.InfoLevel, fmt.Errorf("%w: %q", ErrUnknownLevel, name)
	}

	return level, nil
}

// levelName is the "level" field value of a record.
func levelName(l zerolog.Level) string {
	if name, ok := levelNames[l]; ok {
		return name
	}
	return l.String()
}

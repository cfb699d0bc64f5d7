// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger provides a thin wrapper around zerolog.Logger that adds
// convenience constructors, sink fan-out, and context-aware helpers used
// throughout the league server.
//
// The Logger type embeds zerolog.Logger so all standard zerolog methods
// (Debug, Info, Warn, Error, Fatal, etc.) are available directly on *Logger.
// Application code should pass *Logger by pointer and obtain request-scoped
// loggers via FromContext or FromRequest.
//
// Every record is written as one JSON object per line to two durable sinks:
// an error-only sink and an all-levels sink. Outside production the records
// are mirrored to the console in a colorized single-line form.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"runtime"

	"github.com/fantasy-league/league-server/internal/config"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// TimeLayout is the second-granularity timestamp layout of every record.
const TimeLayout = "2006-01-02 15:04:05"

// Logger is a thin wrapper around zerolog.Logger.
// Embedding zerolog.Logger exposes the full zerolog API while allowing the
// application to add helper methods without modifying the upstream type.
type Logger struct {
	zerolog.Logger
}

// Options selects the threshold and the sinks of a Logger built by New.
// Nil sinks are skipped.
type Options struct {
	// Level is the threshold name, see ParseLevel. Empty means info.
	Level string

	// Production disables the console sink.
	Production bool

	// ErrorSink receives records of error severity and above.
	ErrorSink io.Writer

	// CombinedSink receives every admitted record.
	CombinedSink io.Writer

	// Console receives the human-readable mirror outside production.
	Console io.Writer
}

// New constructs a *Logger for the given role label (e.g. "server",
// "realtime") writing to the sinks in opts.
//
// The logger is configured with:
//   - a "role" field set to role;
//   - a "timestamp" field in TimeLayout added to every log entry;
//   - a "func" caller field that records the fully-qualified function name;
//   - stack marshaling of errors wrapped with github.com/pkg/errors.
//
// An unknown level name falls back to info.
func New(role string, opts Options) *Logger {
	configureGlobals()

	level, err := ParseLevel(opts.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	writers := make([]io.Writer, 0, 3)
	if opts.ErrorSink != nil {
		writers = append(writers, &zerolog.FilteredLevelWriter{
			Writer: zerolog.LevelWriterAdapter{Writer: opts.ErrorSink},
			Level:  zerolog.ErrorLevel,
		})
	}
	if opts.CombinedSink != nil {
		writers = append(writers, opts.CombinedSink)
	}
	if !opts.Production && opts.Console != nil {
		writers = append(writers, zerolog.ConsoleWriter{
			Out:        opts.Console,
			TimeFormat: TimeLayout,
		})
	}

	var out io.Writer = io.Discard
	if len(writers) > 0 {
		out = zerolog.MultiLevelWriter(writers...)
	}

	logger := zerolog.New(out).Level(level).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewFromConfig opens the durable sinks named in cfg in append mode and
// returns a *Logger writing to them, plus the console when environment is
// not production. A sink file that cannot be opened is replaced by stdout so
// that logging never fails the startup.
func NewFromConfig(role string, cfg config.Log, environment string) *Logger {
	return New(role, Options{
		Level:        cfg.Level,
		Production:   environment == config.EnvProduction,
		ErrorSink:    openSink(cfg.ErrorFile),
		CombinedSink: openSink(cfg.CombinedFile),
		Console:      os.Stdout,
	})
}

func openSink(path string) io.Writer {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return os.Stdout // fallback to stdout if file can't be opened
	}

	return file
}

func configureGlobals() {
	zerolog.SetGlobalLevel(levelSilly)
	zerolog.LevelFieldMarshalFunc = levelName
	zerolog.TimeFieldFormat = TimeLayout
	zerolog.TimestampFieldName = "timestamp"
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name() // return function name
	}
	zerolog.CallerFieldName = "func"
}

// Nop returns a *Logger that discards all log output.
// It is intended for use in tests and other contexts where logging is
// undesirable or would produce noise.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a new *Logger that inherits all fields of the
// receiver. The child logger can be enriched with additional context fields
// without affecting the parent logger.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// HTTP starts a record at the http severity, used for access logs.
func (l *Logger) HTTP() *zerolog.Event {
	return l.WithLevel(levelHTTP)
}

// Verbose starts a record at the verbose severity.
func (l *Logger) Verbose() *zerolog.Event {
	return l.WithLevel(levelVerbose)
}

// Debug starts a record at the debug severity, below verbose.
func (l *Logger) Debug() *zerolog.Event {
	return l.WithLevel(levelDebug)
}

// Silly starts a record at the least severe level.
func (l *Logger) Silly() *zerolog.Event {
	return l.WithLevel(levelSilly)
}

// Trace is Silly.
func (l *Logger) Trace() *zerolog.Event {
	return l.Silly()
}

// ErrorWithStack starts an error record for err with a stack trace captured
// at the call site. Called from a deferred recover, the trace includes the
// frames of the panicking function.
func (l *Logger) ErrorWithStack(err error) *zerolog.Event {
	return l.Error().Stack().Err(errors.WithStack(err))
}

// FromRequest extracts the zerolog.Logger stored in the request's context by
// zerolog's log.Ctx helper and returns it as a *Logger.
//
// This is typically used in HTTP middleware that has previously attached a
// request-scoped logger to the context via zerolog's WithContext.
func FromRequest(r *http.Request) *Logger {
	return &Logger{*log.Ctx(r.Context())}
}

// FromContext extracts the zerolog.Logger stored in ctx by zerolog's log.Ctx
// helper and returns it as a *Logger.
//
// If no logger has been attached to ctx, zerolog returns its default
// logger, so this function never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}

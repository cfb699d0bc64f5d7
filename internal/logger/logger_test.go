package logger

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/fantasy-league/league-server/internal/config"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sinks struct {
	errors   bytes.Buffer
	combined bytes.Buffer
	console  bytes.Buffer
}

func newSinkLogger(s *sinks, level string, production bool) *Logger {
	return New("test", Options{
		Level:        level,
		Production:   production,
		ErrorSink:    &s.errors,
		CombinedSink: &s.combined,
		Console:      &s.console,
	})
}

// decodeLines parses every JSON line of buf.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	return entries
}

// TestNew_NotNil verifies that New returns a non-nil *Logger.
func TestNew_NotNil(t *testing.T) {
	l := New("test", Options{})
	require.NotNil(t, l)
}

// TestNew_RoleField verifies that every log entry contains the "role" field.
func TestNew_RoleField(t *testing.T) {
	var s sinks
	l := New("test-role", Options{CombinedSink: &s.combined})

	l.Info().Msg("hello")

	entries := decodeLines(t, &s.combined)
	require.Len(t, entries, 1)
	assert.Equal(t, "test-role", entries[0]["role"])
	assert.Equal(t, "hello", entries[0]["message"])
	assert.Equal(t, "info", entries[0]["level"])
}

// TestNew_TimestampLayout verifies the second-granularity timestamp layout.
func TestNew_TimestampLayout(t *testing.T) {
	var s sinks
	l := New("ts-role", Options{CombinedSink: &s.combined})

	l.Info().Msg("ts check")

	entries := decodeLines(t, &s.combined)
	require.Len(t, entries, 1)
	ts, ok := entries[0]["timestamp"].(string)
	require.True(t, ok, "expected 'timestamp' field in log entry")
	_, err := time.Parse(TimeLayout, ts)
	assert.NoError(t, err)
}

// TestNew_CallerFieldName verifies that the caller field is named "func".
func TestNew_CallerFieldName(t *testing.T) {
	New("caller-role", Options{}) // sets zerolog.CallerFieldName as a side-effect
	assert.Equal(t, "func", zerolog.CallerFieldName)
}

// TestNew_ErrorReachesBothSinks verifies that error records land in the
// error-only sink and in the all-levels sink.
func TestNew_ErrorReachesBothSinks(t *testing.T) {
	var s sinks
	l := newSinkLogger(&s, "info", true)

	l.Error().Msg("boom")

	assert.Contains(t, s.errors.String(), `"message":"boom"`)
	assert.Contains(t, s.combined.String(), `"message":"boom"`)
}

// TestNew_InfoSkipsErrorSink verifies that info records stay out of the
// error-only sink.
func TestNew_InfoSkipsErrorSink(t *testing.T) {
	var s sinks
	l := newSinkLogger(&s, "info", true)

	l.Info().Msg("just info")
	l.Warn().Msg("just warn")

	assert.Empty(t, s.errors.String())
	assert.Len(t, decodeLines(t, &s.combined), 2)
}

// TestNew_ConsoleOutsideProduction verifies the colorized console mirror.
func TestNew_ConsoleOutsideProduction(t *testing.T) {
	var s sinks
	l := newSinkLogger(&s, "info", false)

	l.Info().Msg("mirrored")

	out := s.console.String()
	assert.Contains(t, out, "mirrored")
	assert.False(t, strings.HasPrefix(strings.TrimSpace(out), "{"), "console output must not be JSON")
}

// TestNew_NoConsoleInProduction verifies the console mirror is off in
// production.
func TestNew_NoConsoleInProduction(t *testing.T) {
	var s sinks
	l := newSinkLogger(&s, "info", true)

	l.Info().Msg("not mirrored")

	assert.Empty(t, s.console.String())
	assert.NotEmpty(t, s.combined.String())
}

// TestNew_ThresholdSuppressesLowerSeverities verifies that an info
// threshold admits error/warn/info and suppresses http/debug/silly.
func TestNew_ThresholdSuppressesLowerSeverities(t *testing.T) {
	var s sinks
	l := newSinkLogger(&s, "info", true)

	l.HTTP().Msg("access")
	l.Debug().Msg("debug")
	l.Trace().Msg("silly")
	l.Info().Msg("kept")

	entries := decodeLines(t, &s.combined)
	require.Len(t, entries, 1)
	assert.Equal(t, "kept", entries[0]["message"])
}

// TestNew_SillyAdmitsEverything verifies the most verbose threshold.
func TestNew_SillyAdmitsEverything(t *testing.T) {
	var s sinks
	l := newSinkLogger(&s, "silly", true)

	l.Silly().Msg("silly")
	l.Debug().Msg("debug")
	l.Verbose().Msg("verbose")
	l.HTTP().Msg("access")

	assert.Len(t, decodeLines(t, &s.combined), 4)
}

// TestNew_EachSeverityHasItsOwnThreshold verifies that every threshold below
// info admits its own severity and the ones above it, nothing below.
func TestNew_EachSeverityHasItsOwnThreshold(t *testing.T) {
	tests := []struct {
		threshold string
		want      []string
	}{
		{threshold: "http", want: []string{"info", "http"}},
		{threshold: "verbose", want: []string{"info", "http", "verbose"}},
		{threshold: "debug", want: []string{"info", "http", "verbose", "debug"}},
		{threshold: "silly", want: []string{"info", "http", "verbose", "debug", "silly"}},
	}

	for _, tt := range tests {
		t.Run(tt.threshold, func(t *testing.T) {
			var s sinks
			l := newSinkLogger(&s, tt.threshold, true)

			l.Info().Msg("info")
			l.HTTP().Msg("http")
			l.Verbose().Msg("verbose")
			l.Debug().Msg("debug")
			l.Silly().Msg("silly")

			var got []string
			for _, e := range decodeLines(t, &s.combined) {
				assert.Equal(t, e["message"], e["level"], "level field names the severity")
				got = append(got, e["message"].(string))
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestErrorWithStack_RecordsStack verifies that error records carry the
// error text and a stack trace.
func TestErrorWithStack_RecordsStack(t *testing.T) {
	var s sinks
	l := newSinkLogger(&s, "info", true)

	l.ErrorWithStack(errors.New("kaput")).Msg("handler failed")

	for _, buf := range []*bytes.Buffer{&s.errors, &s.combined} {
		entries := decodeLines(t, buf)
		require.Len(t, entries, 1)
		assert.Equal(t, "kaput", entries[0]["error"])
		stack, ok := entries[0]["stack"].([]any)
		require.True(t, ok, "expected 'stack' array")
		assert.NotEmpty(t, stack)
	}
}

// TestNewFromConfig_WritesFiles verifies that the durable sinks are files.
func TestNewFromConfig_WritesFiles(t *testing.T) {
	dir := t.TempDir()
	cfg := config.Log{
		Level:        "info",
		ErrorFile:    filepath.Join(dir, "error.log"),
		CombinedFile: filepath.Join(dir, "combined.log"),
	}

	l := NewFromConfig("file-role", cfg, config.EnvProduction)
	l.Info().Msg("first")
	l.Error().Msg("second")

	errData, err := os.ReadFile(cfg.ErrorFile)
	require.NoError(t, err)
	combinedData, err := os.ReadFile(cfg.CombinedFile)
	require.NoError(t, err)

	assert.NotContains(t, string(errData), "first")
	assert.Contains(t, string(errData), "second")
	assert.Contains(t, string(combinedData), "first")
	assert.Contains(t, string(combinedData), "second")
}

// TestParseLevel verifies the severity name mapping.
func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    zerolog.Level
		wantErr bool
	}{
		{name: "", want: zerolog.InfoLevel},
		{name: "error", want: zerolog.ErrorLevel},
		{name: "warn", want: zerolog.WarnLevel},
		{name: "INFO", want: zerolog.InfoLevel},
		{name: "http", want: zerolog.DebugLevel},
		{name: "verbose", want: zerolog.TraceLevel},
		{name: "debug", want: zerolog.TraceLevel - 1},
		{name: "silly", want: zerolog.TraceLevel - 2},
		{name: "fatal", want: zerolog.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseLevel(tt.name)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownLevel)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

// TestNop_DiscardsOutput verifies that a Nop logger produces no output.
func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

// TestGetChildLogger_InheritsFields verifies that the child logger inherits
// context fields (e.g. "role") from the parent.
func TestGetChildLogger_InheritsFields(t *testing.T) {
	var s sinks
	parent := New("inherited-role", Options{CombinedSink: &s.combined})

	child := parent.GetChildLogger()
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	entries := decodeLines(t, &s.combined)
	require.Len(t, entries, 1)
	assert.Equal(t, "inherited-role", entries[0]["role"])
}

// TestFromContext_ReturnsAttachedLogger verifies that FromContext returns the
// logger that was previously attached to the context via zerolog.
func TestFromContext_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("ctx-key", "ctx-value").Logger()
	ctx := zl.WithContext(context.Background())

	l := FromContext(ctx)
	require.NotNil(t, l)

	l.Info().Msg("from context")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "ctx-value", entry["ctx-key"])
}

// TestFromRequest_ReturnsAttachedLogger verifies that FromRequest returns the
// logger attached to the request's context.
func TestFromRequest_ReturnsAttachedLogger(t *testing.T) {
	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("req-key", "req-value").Logger()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(zl.WithContext(req.Context()))

	l := FromRequest(req)
	require.NotNil(t, l)

	l.Info().Msg("from request")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "req-value", entry["req-key"])
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fantasy-league/league-server/internal/config"
	"github.com/fantasy-league/league-server/internal/logger"
	"github.com/stretchr/testify/require"
)

type sinks struct {
	errors   bytes.Buffer
	combined bytes.Buffer
}

// newTestHandler creates a Handler with a nop logger.
func newTestHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func testConfig(t *testing.T) *config.StructuredConfig {
	t.Helper()
	cfg := config.Default()
	cfg.Static.Dir = t.TempDir()
	return &cfg
}

// newEdge builds a full handler writing every record to s.
func newEdge(t *testing.T, cfg *config.StructuredConfig, collaborators Collaborators, s *sinks) *Handler {
	t.Helper()
	l := logger.New("test", logger.Options{
		Level:        "silly",
		Production:   true,
		ErrorSink:    &s.errors,
		CombinedSink: &s.combined,
	})
	h, err := NewHandler(collaborators, nil, cfg, l)
	require.NoError(t, err)
	return h
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	scanner := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	scanner.Buffer(make([]byte, 0, 64<<10), 1<<20)
	for scanner.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(scanner.Bytes(), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func findEntry(entries []map[string]any, message string) map[string]any {
	for _, e := range entries {
		if e["message"] == message {
			return e
		}
	}
	return nil
}

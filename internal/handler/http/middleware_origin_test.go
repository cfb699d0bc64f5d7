// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInit_OriginPolicy(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		wantAllowed bool
	}{
		{name: "no origin", origin: "", wantAllowed: true},
		{name: "local dev origin", origin: "http://localhost:5173", wantAllowed: true},
		{name: "local dev origin with path-like tail", origin: "http://localhost:51730", wantAllowed: true},
		{name: "deployment suffix", origin: "https://fantasy-league.vercel.app", wantAllowed: true},
		{name: "foreign origin", origin: "https://evil.example.com", wantAllowed: false},
		{name: "other localhost port", origin: "http://localhost:3001", wantAllowed: false},
		{name: "suffix in the middle", origin: "https://x.vercel.app.evil.com", wantAllowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			users := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				called = true
				w.WriteHeader(http.StatusOK)
			})

			var s sinks
			router := newEdge(t, testConfig(t), Collaborators{AreaUsers: users}, &s).Init()

			req := httptest.NewRequest(http.MethodGet, "/api/usuarios", nil)
			if tt.origin != "" {
				req.Header.Set(originHeader, tt.origin)
			}
			rr := serve(router, req)

			assert.Equal(t, tt.wantAllowed, called)
			if tt.wantAllowed {
				assert.Equal(t, http.StatusOK, rr.Code)
				if tt.origin != "" {
					assert.Equal(t, tt.origin, rr.Header().Get("Access-Control-Allow-Origin"))
					assert.Equal(t, "true", rr.Header().Get("Access-Control-Allow-Credentials"))
				}
				return
			}

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.JSONEq(t, internalBody, rr.Body.String())
			assert.Empty(t, rr.Header().Get("Access-Control-Allow-Origin"))

			entry := findEntry(decodeLines(t, &s.errors), "Blocked by CORS")
			require.NotNil(t, entry, "rejection must be logged at error")
			assert.Contains(t, entry["error"], tt.origin)
		})
	}
}

func TestInit_Preflight(t *testing.T) {
	var s sinks
	router := newEdge(t, testConfig(t), nil, &s).Init()

	req := httptest.NewRequest(http.MethodOptions, "/api/equipos", nil)
	req.Header.Set(originHeader, "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPatch)
	rr := serve(router, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "http://localhost:5173", rr.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rr.Header().Get("Access-Control-Allow-Methods"), http.MethodPatch)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"mime"
	"net/http"

	"github.com/fantasy-league/league-server/internal/app"
	"github.com/fantasy-league/league-server/internal/utils"
)

// maxJSONBody is the largest accepted JSON request body.
const maxJSONBody = 100 << 10

// withJSONBody validates JSON request bodies before they reach a route.
// Only objects and arrays are accepted at the top level. The validated body
// is handed downstream as a fresh reader.
func (h *Handler) withJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Body == nil || r.Body == http.NoBody || !isJSON(r.Header.Get("Content-Type")) {
			next.ServeHTTP(w, r)
			return
		}

		raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxJSONBody))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				utils.WriteError(w, app.MsgBodyTooLarge, http.StatusRequestEntityTooLarge)
				return
			}
			utils.WriteError(w, app.MsgMalformedJSON, http.StatusBadRequest)
			return
		}

		if !validJSONBody(raw) {
			utils.WriteError(w, app.MsgMalformedJSON, http.StatusBadRequest)
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(raw))
		r.ContentLength = int64(len(raw))
		next.ServeHTTP(w, r)
	})
}

func isJSON(contentType string) bool {
	if contentType == "" {
		return false
	}
	mediaType, _, err := mime.ParseMediaType(contentType)
	return err == nil && mediaType == "application/json"
}

// validJSONBody accepts an empty body or a single JSON object or array.
func validJSONBody(raw []byte) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return true
	}
	if trimmed[0] != '{' && trimmed[0] != '[' {
		return false
	}
	return json.Valid(trimmed)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package origin

import (
	"testing"

	"github.com/fantasy-league/league-server/internal/config"
	"github.com/stretchr/testify/assert"
)

func TestPolicy_Allowed(t *testing.T) {
	p := NewPolicy(config.Default().CORS)

	tests := []struct {
		name   string
		origin string
		want   bool
	}{
		{"no origin", "", true},
		{"local dev origin", "http://localhost:5173", true},
		{"local dev origin with path-like tail", "http://localhost:5173/app", true},
		{"prefix trick is admitted", "http://localhost:5173.evil.com", true},
		{"deployment preview", "https://fantasy-git-main.vercel.app", true},
		{"bare suffix", ".vercel.app", true},
		{"other local port", "http://localhost:3000", false},
		{"suffix not at end", "https://x.vercel.app.evil.com", false},
		{"unrelated", "https://evil.com", false},
		{"scheme mismatch", "https://localhost:5173", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, p.Allowed(tt.origin))
		})
	}
}

func TestPolicy_EmptyFieldsNeverMatch(t *testing.T) {
	p := Policy{}

	assert.True(t, p.Allowed(""))
	assert.False(t, p.Allowed("https://anything.example"))
}

func TestPolicy_Check(t *testing.T) {
	p := NewPolicy(config.Default().CORS)

	assert.NoError(t, p.Check("http://localhost:5173"))

	err := p.Check("https://evil.com")
	assert.ErrorIs(t, err, ErrNotAllowed)
	assert.Contains(t, err.Error(), "https://evil.com")
}

// Package http implements the HTTP edge of the league server.
//
// It applies the cross-cutting policy every request goes through before
// reaching a route collaborator: origin check and CORS headers, security
// headers, per-client rate limiting, JSON body validation, and static file
// serving. Domain areas (users, teams, market, ...) are owned by external
// collaborators mounted under /api/<area>. Whatever they fail with is turned
// into one of two fixed JSON bodies: 404 for unmatched routes and 500 for
// errors and panics.
package http

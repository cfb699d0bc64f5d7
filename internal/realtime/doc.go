// Package realtime implements the bidirectional presence channel of the
// league server.
//
// Clients open a WebSocket on the configured path and exchange JSON
// envelopes of the form {"event": "...", "data": ...}. The only inbound
// event is "register", whose data is the user identifier (string or
// number). Closing the socket is the disconnect event. Each connection moves
// through Connected → Registered → Disconnected, and its registrations are
// kept in a [presence.Registry] that route collaborators use, through
// [Gateway.EmitTo], to push events to a user.
package realtime

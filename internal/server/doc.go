// Package server wires and runs the league server's transport.
//
// It owns the HTTP listener lifecycle: binding, the startup announcement,
// signal handling, and graceful shutdown of the HTTP server together with
// the realtime gateway's live connections.
package server

package server

import "context"

// Server defines the lifecycle contract of the transport managed by this
// package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// shutdowner is a component that drains within the deadline of ctx.
type shutdowner interface {
	Shutdown(ctx context.Context) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// league server handlers, middleware, and realtime gateway.
//
// All Msg* constants are human-readable strings written into HTTP response
// bodies. They are the only texts a caller ever sees on failure; internal
// error messages and stack traces stay in the logs.
package app

const (
	// MsgServerRunning is the plaintext liveness answer of GET /.
	MsgServerRunning = "Servidor funcionando correctamente"

	// MsgRouteNotFound is returned for every request that matches no route.
	MsgRouteNotFound = "Ruta no encontrada"

	// MsgInternalServerError is returned whenever an error or panic escapes a
	// handler, and for requests rejected by the origin policy.
	MsgInternalServerError = "Ocurrió un error en el servidor"

	// MsgTooManyRequests is returned when a client exceeds the request budget
	// of the current rate-limit window.
	MsgTooManyRequests = "Demasiadas solicitudes, inténtalo más tarde"

	// MsgMalformedJSON is returned when a JSON request body cannot be parsed.
	MsgMalformedJSON = "JSON mal formado"

	// MsgBodyTooLarge is returned when a JSON request body exceeds the
	// configured size limit.
	MsgBodyTooLarge = "Cuerpo de la solicitud demasiado grande"
)

// ServerStartedFormat is the log line emitted once the HTTP listener is up.
const ServerStartedFormat = "Servidor backend corriendo en el puerto %d"

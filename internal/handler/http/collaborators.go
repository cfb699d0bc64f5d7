// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
)

// Area is a domain area served by one route collaborator.
type Area string

// The fixed set of domain areas. Each is mounted at /api/<area>.
const (
	AreaUsers         Area = "usuarios"
	AreaAuth          Area = "auth"
	AreaTeams         Area = "equipos"
	AreaMarket        Area = "mercado"
	AreaTransfers     Area = "transferencias"
	AreaPlayers       Area = "jugadores"
	AreaLeagues       Area = "ligas"
	AreaMatches       Area = "partidos"
	AreaNotifications Area = "notificaciones"
	AreaNews          Area = "noticias"
	AreaAdmin         Area = "admin"
	AreaReports       Area = "reportes"
	AreaStats         Area = "stats"
	AreaLogs          Area = "logs"
)

// Areas lists every domain area in mounting order.
func Areas() []Area {
	return []Area{
		AreaUsers, AreaAuth, AreaTeams, AreaMarket, AreaTransfers,
		AreaPlayers, AreaLeagues, AreaMatches, AreaNotifications,
		AreaNews, AreaAdmin, AreaReports, AreaStats, AreaLogs,
	}
}

// Prefix returns the path prefix the area is mounted at.
func (a Area) Prefix() string {
	return "/api/" + string(a)
}

func (a Area) valid() bool {
	for _, known := range Areas() {
		if a == known {
			return true
		}
	}
	return false
}

// Collaborators maps domain areas to the handlers that own them. Areas
// without a collaborator answer 404.
type Collaborators map[Area]http.Handler

// ErrorHandlerFunc is a handler that reports failure by returning an error.
// A non-nil error is logged with its stack and answered with the generic 500
// body, unless the handler already started the response.
type ErrorHandlerFunc func(w http.ResponseWriter, r *http.Request) error

func (f ErrorHandlerFunc) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := f(w, r); err != nil {
		Fail(w, r, err)
	}
}

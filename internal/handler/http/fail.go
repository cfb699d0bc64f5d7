// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"

	"github.com/fantasy-league/league-server/internal/app"
	"github.com/fantasy-league/league-server/internal/logger"
	"github.com/fantasy-league/league-server/internal/utils"
)

// headerWriter is implemented by response writers that know whether the
// response has already started.
type headerWriter interface {
	HeaderWritten() bool
}

// Fail logs err with its stack on the request-scoped logger and answers
// with the generic 500 body. The error text never reaches the caller. If the
// response has already started, only the log record is written.
func Fail(w http.ResponseWriter, r *http.Request, err error) {
	fail(w, r, err, "unhandled error")
}

func fail(w http.ResponseWriter, r *http.Request, err error, msg string) {
	logger.FromRequest(r).ErrorWithStack(err).
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Msg(msg)

	if hw, ok := w.(headerWriter); ok && hw.HeaderWritten() {
		return
	}
	utils.WriteError(w, app.MsgInternalServerError, http.StatusInternalServerError)
}

// withRecover converts panics of downstream handlers into the generic 500
// answer. http.ErrAbortHandler is re-raised so the server aborts the
// response as usual.
func (h *Handler) withRecover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			err, ok := rec.(error)
			if !ok {
				err = fmt.Errorf("%w: %v", errPanic, rec)
			}
			fail(w, r, err, "panic recovered")
		}()

		next.ServeHTTP(w, r)
	})
}

func (h *Handler) notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, app.MsgRouteNotFound, http.StatusNotFound)
}

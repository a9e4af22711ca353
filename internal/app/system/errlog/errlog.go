// internal/app/system/errlog/errlog.go

// Package errlog converts unexpected failures into logged 500 responses.
// Handlers call it at their boundary; internal error detail goes to the
// log, never to the caller.
package errlog

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/robilprogramer/portofolio-sub001/internal/app/system/envelope"
)

// Logger writes server errors to the zap log and a generic envelope to
// the client.
type Logger struct {
	log *zap.Logger
}

// New constructs a Logger.
func New(log *zap.Logger) *Logger {
	return &Logger{log: log}
}

// ServerError logs err with request context and writes a 500 envelope
// carrying only publicMsg.
func (l *Logger) ServerError(w http.ResponseWriter, r *http.Request, logMsg string, err error, publicMsg string) {
	l.log.Error(logMsg,
		zap.Error(err),
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path))
	envelope.Fail(w, http.StatusInternalServerError, publicMsg)
}

package http

import (
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
)

// withLogging writes one access-log entry per request. Server errors are
// logged at error level and client errors at warn level.
func withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w}

		next.ServeHTTP(rw, r)

		status := rw.status
		if status == 0 {
			// nothing was written: net/http sends 200
			status = http.StatusOK
		}

		logger.FromRequest(r).WithLevel(accessLogLevel(status)).
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", rw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

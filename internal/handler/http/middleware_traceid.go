package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-sync-hub/internal/utils"
)

const (
	traceIDHeader = "X-Trace-ID"

	// maxTraceIDLength bounds caller-supplied IDs before they reach the logs.
	maxTraceIDLength = 64
)

var traceIDs = utils.NewUUIDGenerator()

// withTraceID reuses a well-formed X-Trace-ID from the caller or generates
// one, echoes it in the response and tags the request logger with it.
// Requests forwarded by the gateways carry the same header upstream.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if !validTraceID(traceID) {
			traceID = traceIDs.Generate()
			r.Header.Set(traceIDHeader, traceID)
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("trace_id", traceID)
		})

		w.Header().Set(traceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(l.WithContext(r.Context())))
	})
}

func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-' || c == '_' || c == '.':
		default:
			return false
		}
	}
	return true
}

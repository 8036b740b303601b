// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// responseWriter decorates an [http.ResponseWriter] to record the status
// code and the number of body bytes, so withLogging can report them after
// the downstream handler returns.
//
// WriteHeader is forwarded at most once. Unwrap exposes the wrapped writer
// to [http.ResponseController], which the reverse proxy relies on for
// flushing streamed responses.
type responseWriter struct {
	http.ResponseWriter

	// status is zero until a header has been written.
	status      int
	wroteHeader bool

	// size is the running total of body bytes.
	size int
}

func (w *responseWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.status = statusCode
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(statusCode)
}

// Write implies WriteHeader(http.StatusOK) when no header was written yet.
func (w *responseWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

func (w *responseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
)

// requestWithLog attaches a buffer-backed logger the way withTraceID does.
func requestWithLog(method, target string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, target, nil)
	return req.WithContext(zerolog.New(buf).WithContext(req.Context()))
}

func accessEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithLogging_Entry(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		status int
		body   string
		level  string
	}{
		{name: "ok", method: http.MethodGet, target: "/api/session", status: http.StatusOK, body: `{"loggedIn":false}`, level: "info"},
		{name: "created", method: http.MethodPost, target: "/api/admin/users", status: http.StatusCreated, body: `{"username":"bob"}`, level: "info"},
		{name: "gateway redirect", method: http.MethodGet, target: "/syncthing", status: http.StatusPermanentRedirect, level: "info"},
		{name: "unauthorized", method: http.MethodPost, target: "/api/login", status: http.StatusUnauthorized, body: `{"error":"invalid credentials"}`, level: "warn"},
		{name: "conflict", method: http.MethodDelete, target: "/api/admin/users?username=admin", status: http.StatusConflict, level: "warn"},
		{name: "server error", method: http.MethodPost, target: "/api/admin/users", status: http.StatusInternalServerError, body: `{"error":"Internal Server Error"}`, level: "error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			rec := httptest.NewRecorder()
			withLogging(next).ServeHTTP(rec, requestWithLog(tt.method, tt.target, &buf))

			assert.Equal(t, tt.status, rec.Code)

			entry := accessEntry(t, &buf)
			assert.Equal(t, tt.level, entry["level"])
			assert.Equal(t, tt.method, entry["method"])
			assert.Equal(t, tt.target, entry["uri"])
			assert.EqualValues(t, tt.status, entry["status"])
			assert.EqualValues(t, len(tt.body), entry["size"])
			assert.Contains(t, entry, "duration")
		})
	}
}

func TestWithLogging_ImplicitStatus(t *testing.T) {
	tests := []struct {
		name string
		next http.HandlerFunc
		size int
	}{
		{name: "nothing written", next: func(http.ResponseWriter, *http.Request) {}, size: 0},
		{name: "body only", next: func(w http.ResponseWriter, _ *http.Request) { _, _ = io.WriteString(w, strings.Repeat("x", 1024)) }, size: 1024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			rec := httptest.NewRecorder()

			withLogging(tt.next).ServeHTTP(rec, requestWithLog(http.MethodGet, "/api/version", &buf))

			entry := accessEntry(t, &buf)
			assert.EqualValues(t, http.StatusOK, entry["status"])
			assert.EqualValues(t, tt.size, entry["size"])
			assert.Equal(t, "info", entry["level"])
		})
	}
}

func TestWithLogging_PanicPropagates(t *testing.T) {
	var buf bytes.Buffer
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) { panic("boom") })

	assert.Panics(t, func() {
		withLogging(next).ServeHTTP(httptest.NewRecorder(), requestWithLog(http.MethodGet, "/api/version", &buf))
	})
	assert.Empty(t, buf.String())
}

func TestWithLogging_NopLogger(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req = req.WithContext(logger.Nop().WithContext(req.Context()))
	rec := httptest.NewRecorder()

	assert.NotPanics(t, func() {
		withLogging(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusAccepted)
		})).ServeHTTP(rec, req)
	})
	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestAccessLogLevel(t *testing.T) {
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusOK))
	assert.Equal(t, zerolog.InfoLevel, accessLogLevel(http.StatusFound))
	assert.Equal(t, zerolog.WarnLevel, accessLogLevel(http.StatusNotFound))
	assert.Equal(t, zerolog.ErrorLevel, accessLogLevel(http.StatusBadGateway))
}

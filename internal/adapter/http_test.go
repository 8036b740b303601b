// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/go-sync-hub/internal/logger"
	"github.com/MKhiriev/go-sync-hub/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// indexFor returns the index whose sync-engine port is the server's port.
func indexFor(t *testing.T, srv *httptest.Server) int {
	t.Helper()
	u, err := url.Parse(srv.URL)
	require.NoError(t, err)
	port, err := strconv.Atoi(u.Port())
	require.NoError(t, err)
	if port < models.BaseWebPort {
		t.Skipf("test server port %d is below the base web port", port)
	}
	return port - models.BaseWebPort
}

func newTestChecker() HealthChecker {
	return NewHTTPHealthChecker("127.0.0.1", time.Second, logger.Nop())
}

// ── SyncEngineHealth ───────────────────────────────────────────────────────

func TestSyncEngineHealth_Healthy(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/rest/noauth/health", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"OK"}`))
	}))
	defer srv.Close()

	index := indexFor(t, srv)
	got, err := newTestChecker().SyncEngineHealth(context.Background(), "alice", index)

	require.NoError(t, err)
	assert.True(t, got.Healthy)
	assert.Equal(t, "OK", got.Status)
	assert.Equal(t, "alice", got.Username)
	assert.Equal(t, models.BaseWebPort+index, got.WebPort)
}

func TestSyncEngineHealth_UnhealthyStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"starting"}`))
	}))
	defer srv.Close()

	got, err := newTestChecker().SyncEngineHealth(context.Background(), "alice", indexFor(t, srv))

	require.NoError(t, err)
	assert.False(t, got.Healthy)
	assert.Contains(t, got.Status, ErrUnhealthy.Error())
}

func TestSyncEngineHealth_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	got, err := newTestChecker().SyncEngineHealth(context.Background(), "alice", indexFor(t, srv))

	require.NoError(t, err)
	assert.False(t, got.Healthy)
	assert.Contains(t, got.Status, "http 500: boom")
}

func TestSyncEngineHealth_Unreachable(t *testing.T) {
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := l.Addr().(*net.TCPAddr).Port
	require.NoError(t, l.Close())
	if port < models.BaseWebPort {
		t.Skipf("free port %d is below the base web port", port)
	}

	got, err := newTestChecker().SyncEngineHealth(context.Background(), "alice", port-models.BaseWebPort)

	require.NoError(t, err)
	assert.False(t, got.Healthy)
	assert.Contains(t, got.Status, ErrUnreachable.Error())
}

func TestSyncEngineHealth_InvalidIndex(t *testing.T) {
	_, err := newTestChecker().SyncEngineHealth(context.Background(), "alice", -1)
	assert.ErrorIs(t, err, ErrInvalidIndex)
}

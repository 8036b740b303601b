package http

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-sync-hub/internal/utils"
	"github.com/MKhiriev/go-sync-hub/models"
)

func manyUsers(n int) models.UsersResponse {
	users := make([]models.PublicUser, 0, n)
	for i := range n {
		users = append(users, models.PublicUser{Username: strings.Repeat("u", 8) + string(rune('a'+i%26)), Index: i + 3})
	}
	return models.UsersResponse{Users: users}
}

func jsonHandler(v any) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = utils.WriteJSON(w, v, http.StatusOK)
	})
}

func gunzip(t *testing.T, body []byte) []byte {
	t.Helper()

	zr, err := gzip.NewReader(bytes.NewReader(body))
	require.NoError(t, err)
	defer zr.Close()

	out, err := io.ReadAll(zr)
	require.NoError(t, err)
	return out
}

func gzipBytes(t *testing.T, data []byte) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write(data)
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestGZip_CompressesLargeJSON(t *testing.T) {
	plain := httptest.NewRecorder()
	jsonHandler(manyUsers(100)).ServeHTTP(plain, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))
	require.Greater(t, plain.Body.Len(), gzipMinSize)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/users", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(jsonHandler(manyUsers(100))).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "gzip", rec.Header().Get("Content-Encoding"))
	assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")
	assert.Empty(t, rec.Header().Get("Content-Length"))
	assert.Less(t, rec.Body.Len(), plain.Body.Len())
	assert.JSONEq(t, plain.Body.String(), string(gunzip(t, rec.Body.Bytes())))
}

func TestGZip_SmallResponseStaysPlain(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/logout", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(jsonHandler(models.OKResponse{OK: true})).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestGZip_ClientWithoutGzip(t *testing.T) {
	rec := httptest.NewRecorder()

	withGZip(jsonHandler(manyUsers(100))).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/admin/users", nil))

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Contains(t, rec.Header().Values("Vary"), "Accept-Encoding")

	var got models.UsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Users, 100)
}

func TestGZip_NonJSONStaysPlain(t *testing.T) {
	text := strings.Repeat("plain text ", 200)
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		_, _ = io.WriteString(w, text)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/version", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Content-Encoding"))
	assert.Equal(t, text, rec.Body.String())
}

func TestGZip_DecodesRequestBody(t *testing.T) {
	payload := []byte(`{"username":"alice","password":"correct horse"}`)

	var received []byte
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var err error
		received, err = io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.Empty(t, r.Header.Get("Content-Encoding"))
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/login", bytes.NewReader(gzipBytes(t, payload)))
	req.Header.Set("Content-Encoding", "gzip")
	rec := httptest.NewRecorder()

	withGZip(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, payload, received)
}

func TestGZip_CorruptRequestBody(t *testing.T) {
	var readErr error
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, readErr = io.ReadAll(r.Body)
		w.WriteHeader(http.StatusBadRequest)
	})

	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader("definitely not gzip"))
	req.Header.Set("Content-Encoding", "gzip")

	withGZip(next).ServeHTTP(httptest.NewRecorder(), req)

	assert.Error(t, readErr)
}

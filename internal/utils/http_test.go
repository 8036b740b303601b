package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	type user struct {
		Username string `json:"username"`
		Index    int    `json:"index"`
	}

	tests := []struct {
		name   string
		value  any
		status int
		body   string
	}{
		{name: "struct", value: user{Username: "alice", Index: 3}, status: http.StatusCreated, body: `{"username":"alice","index":3}`},
		{name: "empty slice", value: []user{}, status: http.StatusOK, body: `[]`},
		{name: "nil", value: nil, status: http.StatusOK, body: `null`},
		{name: "error status", value: map[string]string{"error": "Not Found"}, status: http.StatusNotFound, body: `{"error":"Not Found"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()

			n, err := WriteJSON(rec, tt.value, tt.status)
			require.NoError(t, err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, len(tt.body), n)
			assert.JSONEq(t, tt.body, rec.Body.String())
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.Equal(t, "no-store", rec.Header().Get("Cache-Control"))
		})
	}
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	rec := httptest.NewRecorder()

	_, err := WriteJSON(rec, make(chan int), http.StatusOK)
	require.Error(t, err)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
}

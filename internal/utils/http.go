package utils

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// WriteJSON answers with v encoded as JSON and the given status. API
// responses describe per-user session state, so they are marked no-store.
//
// When v cannot be encoded nothing of it reaches the client: the response
// becomes a bare 500 with {"error":"Internal Server Error"} and the encoding
// error is returned for the caller to log.
func WriteJSON(w http.ResponseWriter, v any, status int) (int, error) {
	body, err := json.Marshal(v)
	if err != nil {
		status = http.StatusInternalServerError
		body = []byte(`{"error":"` + http.StatusText(status) + `"}`)
		err = fmt.Errorf("encoding JSON response: %w", err)
	}

	header := w.Header()
	header.Set("Content-Type", "application/json")
	header.Set("Cache-Control", "no-store")
	w.WriteHeader(status)

	n, writeErr := w.Write(body)
	if err != nil {
		return n, err
	}
	return n, writeErr
}

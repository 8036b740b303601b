package http

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// maxRequestBody bounds JSON bodies of the account API.
const maxRequestBody = 1 << 20

// decodeJSON decodes the request body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: %w", ErrMalformedJSON, err)
	}
	return nil
}

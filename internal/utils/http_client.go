package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().Get("http://127.0.0.1:8387/rest/noauth/health")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient whose requests time out after
// timeout. A zero timeout disables the limit. Each call returns an
// independent client with its own connection pool.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetTimeout(timeout).
		SetHeader("User-Agent", "go-sync-hub")

	return &HTTPClient{Client: client}
}

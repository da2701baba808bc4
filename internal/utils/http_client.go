package utils

import (
	"net/http"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance
// with a default-configured underlying resty.Client.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewHTTPClientFrom builds an HTTPClient on top of an existing *http.Client,
// keeping its transport, TLS settings and cookie jar. A nil hc behaves like
// NewHTTPClient.
func NewHTTPClientFrom(hc *http.Client) *HTTPClient {
	if hc == nil {
		return NewHTTPClient()
	}
	return &HTTPClient{Client: resty.NewWithClient(hc)}
}

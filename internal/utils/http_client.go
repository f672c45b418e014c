package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultRequestTimeout bounds a single outbound request when the caller did
// not configure one.
const DefaultRequestTimeout = 15 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient(5 * time.Second)
//	resp, err := client.R().Get("https://example.com")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates and returns a new HTTPClient instance whose requests
// time out after timeout. A non-positive timeout selects
// DefaultRequestTimeout.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state. The client sends
// "Accept: application/json" and never retries.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	if timeout <= 0 {
		timeout = DefaultRequestTimeout
	}

	cli := resty.New().
		SetTimeout(timeout).
		SetRetryCount(0).
		SetHeader("Accept", "application/json")

	return &HTTPClient{Client: cli}
}

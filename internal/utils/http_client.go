package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// PasswordHeader carries the shared secret on guarded ledger endpoints.
const PasswordHeader = "X-App-Password"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:8000", 10*time.Second)
//	resp, err := client.R().Get("/ping")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates an HTTPClient bound to baseURL. A zero timeout
// leaves requests unbounded.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json")

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}

// SetPassword attaches the shared secret to every subsequent request.
func (c *HTTPClient) SetPassword(password string) *HTTPClient {
	c.SetHeader(PasswordHeader, password)
	return c
}

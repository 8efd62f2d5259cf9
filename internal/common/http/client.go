// Package http wraps the standard client with the per-call timeouts the
// gateway uses for its upstream traffic.
package http

import (
	"net/http"
	"time"
)

// Client is a thin wrapper enforcing a fixed timeout. The gateway keeps two
// of these per backend: a patient one for extraction uploads and a short one
// for liveness probes.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Do executes the request. Deadlines from the request context and the client
// timeout both apply; whichever fires first cancels the call.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	return c.httpClient.Do(req)
}

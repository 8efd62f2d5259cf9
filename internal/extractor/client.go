package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net"
	"net/http"
	"strings"
	"time"

	apperrors "centris-gateway/internal/common/errors"
	httpclient "centris-gateway/internal/common/http"
)

// upstreamResponse mirrors the extraction backend's reply. Each property is
// kept as a raw key/value map because the backend uses display-oriented
// French column names.
type upstreamResponse struct {
	Success         bool                     `json:"success"`
	Filename        string                   `json:"filename"`
	TotalProperties int                      `json:"total_properties"`
	Properties      []map[string]interface{} `json:"properties"`
	Message         string                   `json:"message"`
}

// Client talks to the external extraction backend.
type Client struct {
	baseURL      string
	httpClient   *httpclient.Client
	probeClient  *httpclient.Client
	probeTimeout time.Duration
}

// NewClient returns a client for the given base URL. An empty base URL is
// allowed; callers check Configured before use.
func NewClient(baseURL string, timeout, probeTimeout time.Duration) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		httpClient:   httpclient.NewClient(timeout),
		probeClient:  httpclient.NewClient(probeTimeout),
		probeTimeout: probeTimeout,
	}
}

// Configured reports whether an upstream endpoint was provided.
func (c *Client) Configured() bool {
	return c.baseURL != ""
}

// Extract uploads the document to the backend's extraction endpoint and
// decodes the reply. Transport and status failures come back as
// StandardError values carrying the upstream error codes; the caller
// absorbs them all the same.
func (c *Client) Extract(ctx context.Context, filename string, data []byte) (*upstreamResponse, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	part, err := writer.CreateFormFile("file", filename)
	if err != nil {
		return nil, fmt.Errorf("failed to create form file: %w", err)
	}
	if _, err := part.Write(data); err != nil {
		return nil, fmt.Errorf("failed to write file payload: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/extract-pdf", &body)
	if err != nil {
		return nil, fmt.Errorf("failed to create extraction request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, apperrors.NewUpstreamTimeoutError()
		}
		return nil, apperrors.NewUpstreamUnreachableError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, resp.Body)
		return nil, apperrors.NewUpstreamBadStatusError(resp.StatusCode)
	}

	var decoded upstreamResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode extraction response: %w", err)
	}
	if !decoded.Success {
		return nil, fmt.Errorf("extraction backend reported failure: %s", decoded.Message)
	}

	return &decoded, nil
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// Probe checks backend liveness with a short GET against its health
// endpoint. Any error or non-success status maps to false.
func (c *Client) Probe(ctx context.Context) bool {
	if !c.Configured() {
		return false
	}

	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.probeClient.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	io.Copy(io.Discard, resp.Body)

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// Package api is the HTTP client for the Intercede backend.
//
// The client makes exactly one attempt per call. It enforces no timeout of
// its own; the caller's context is the only way to abandon a request.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/abelbrown/intercede/internal/model"
)

// DefaultBaseURL is the backend address used when nothing is configured.
const DefaultBaseURL = "http://localhost:8000"

// userAgent identifies the client to the backend.
const userAgent = "Intercede/1.0 (terminal client)"

// maxErrorBody bounds how much of a failed response is read for "detail".
const maxErrorBody = 64 << 10

// Client talks to the Intercede backend.
type Client struct {
	base   string
	client *http.Client
}

// NewClient creates a Client for the backend at baseURL. A nil httpClient
// uses a fresh http.Client with no timeout.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		base:   strings.TrimRight(baseURL, "/"),
		client: httpClient,
	}
}

// BaseURL returns the normalized backend address.
func (c *Client) BaseURL() string {
	return c.base
}

type prayersResponse struct {
	Prayers model.Batch `json:"prayers"`
}

// FetchPrayers requests today's prayers. A response without a "prayers"
// field yields an empty batch and no error; deciding whether empty is
// acceptable is the caller's job.
func (c *Client) FetchPrayers(ctx context.Context) (model.Batch, error) {
	var body prayersResponse
	if err := c.getJSON(ctx, "/api/prayers", &body); err != nil {
		return nil, err
	}
	if body.Prayers == nil {
		return model.Batch{}, nil
	}
	return body.Prayers, nil
}

// Health is the backend's /api/health payload.
type Health struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Health probes the backend's health endpoint.
func (c *Client) Health(ctx context.Context) (Health, error) {
	var h Health
	if err := c.getJSON(ctx, "/api/health", &h); err != nil {
		return Health{}, err
	}
	return h, nil
}

func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	url := c.base + path

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &RequestError{
			Status:  resp.StatusCode,
			Message: errorMessage(resp),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	return nil
}

// errorMessage extracts "detail" from an error body. Bodies that are
// missing, not JSON, or carry a non-string detail (FastAPI validation
// errors use a list) fall back to the status line.
func errorMessage(resp *http.Response) string {
	fallback := fmt.Sprintf("Request failed: %d", resp.StatusCode)

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return fallback
	}

	var body struct {
		Detail any `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil {
		return fallback
	}
	if detail, ok := body.Detail.(string); ok && strings.TrimSpace(detail) != "" {
		return detail
	}
	return fallback
}

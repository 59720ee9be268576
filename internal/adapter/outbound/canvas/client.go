// Package canvas provides a minimal read-only client for the Canvas LMS REST
// API (v1). Every call is a single authenticated GET; the client holds no
// state beyond the base URL and bearer token it was constructed with.
package canvas

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultTimeout is applied when no http.Client is injected.
const DefaultTimeout = 30 * time.Second

// Client issues authenticated GETs against {baseURL}/api/v1/{endpoint}.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
	logger     *slog.Logger
}

// New creates a Client bound to one Canvas instance and one API token.
// If client is nil a default client with DefaultTimeout is used.
func New(client *http.Client, baseURL, token string, logger *slog.Logger) *Client {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Client{
		httpClient: client,
		baseURL:    strings.TrimRight(baseURL, "/"),
		token:      token,
		logger:     logger.With("component", "canvas_client"),
	}
}

// Get performs one GET against the given endpoint (e.g. "courses/123/assignments")
// with the given query parameters and decodes the JSON response into out.
// out may be nil to discard the body. Repeated-key parameters such as
// "include[]" are expressed naturally through url.Values.
func (c *Client) Get(ctx context.Context, endpoint string, params url.Values, out any) error {
	reqURL := fmt.Sprintf("%s/api/v1/%s", c.baseURL, endpoint)
	log := c.logger.With(slog.String("endpoint", endpoint))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("canvas: building request for %s: %w", endpoint, err)
	}
	if len(params) > 0 {
		req.URL.RawQuery = params.Encode()
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")

	log.Debug("Executing Canvas request", slog.String("url", req.URL.Redacted()))
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Debug("Canvas request failed", slog.Any("error", err))
		return &UnavailableError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return &UnavailableError{Err: err}
	}

	log.Debug("Received Canvas response", slog.Int("status_code", resp.StatusCode))
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return &DecodeError{Err: err}
	}
	return nil
}

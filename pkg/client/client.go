// Package client is a Go SDK for the Code Hunt REST API
// (https://api.codehunt.com/).
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
)

// DefaultBaseURL is the Code Hunt API root.
const DefaultBaseURL = "https://api.codehunt.com/api"

// DefaultPollInterval is the delay between exploration polls.
const DefaultPollInterval = time.Second

// Client talks to the Code Hunt API with a bearer token obtained once,
// at construction. The token is never refreshed automatically; call
// Authenticate to fetch a new one.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	token        string
	httpClient   *http.Client
	pollInterval time.Duration
}

// Option configures the client
type Option func(*Client)

// WithBaseURL overrides DefaultBaseURL
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout. There is none by default.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithPollInterval sets the delay between polls in Explore with wait.
func WithPollInterval(interval time.Duration) Option {
	return func(c *Client) {
		c.pollInterval = interval
	}
}

// NewClient creates a client and authenticates with the client
// credentials. clientID and clientSecret are issued by the Code Hunt team.
func NewClient(ctx context.Context, clientID, clientSecret string, opts ...Option) (*Client, error) {
	c := &Client{
		baseURL:      DefaultBaseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient:   &http.Client{},
		pollInterval: DefaultPollInterval,
	}

	for _, opt := range opts {
		opt(c)
	}

	if err := c.Authenticate(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// Authenticate exchanges the client credentials for a new bearer token.
func (c *Client) Authenticate(ctx context.Context) error {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {c.clientID},
		"client_secret": {c.clientSecret},
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/token", "application/x-www-form-urlencoded",
		strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(resp, &result); err != nil {
		return fmt.Errorf("failed to unmarshal token response: %w", err)
	}
	if result.AccessToken == "" {
		return fmt.Errorf("failed to authenticate: token response has no access_token")
	}

	c.token = result.AccessToken
	slog.Debug("authenticated with code hunt api", "base_url", c.baseURL)
	return nil
}

// postJSON marshals body and POSTs it to path.
func (c *Client) postJSON(ctx context.Context, path string, body interface{}) ([]byte, error) {
	data, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}
	return c.doRequest(ctx, http.MethodPost, path, "application/json", bytes.NewReader(data))
}

// doRequest performs an HTTP request
func (c *Client) doRequest(ctx context.Context, method, path, contentType string, body io.Reader) ([]byte, error) {
	endpoint := c.baseURL + path

	req, err := http.NewRequestWithContext(ctx, method, endpoint, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", requestID)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	slog.Debug("code hunt api request",
		"method", method,
		"path", path,
		"status", resp.StatusCode,
		"duration_ms", time.Since(start).Milliseconds(),
		"request_id", requestID,
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &APIError{
			Method:     method,
			URL:        endpoint,
			StatusCode: resp.StatusCode,
			Body:       string(respBody),
		}
	}

	return respBody, nil
}

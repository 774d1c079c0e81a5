// Package client provides a Go client for the pastery.net paste API.
//
// Basic usage:
//
//	c := client.New() // uses default https://www.pastery.net
//	url, err := c.Create(ctx, []byte("hello world"), client.CreateOptions{
//		APIKey:   "yourkey",
//		Duration: 1440,
//	})
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	// DefaultBaseURL is the public pastery service URL.
	DefaultBaseURL = "https://www.pastery.net"

	// DefaultTimeout is the default HTTP client timeout.
	DefaultTimeout = 30 * time.Second

	apiPath = "/api/paste/"
)

// Client is a pastery API client.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL sets a custom base URL for the pastery service.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new pastery client with the given options.
func New(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// CreateOptions carries the metadata sent alongside the paste content.
type CreateOptions struct {
	// APIKey authenticates the request. Required.
	APIKey string

	// Title names the paste. Omitted when empty.
	Title string

	// Language selects syntax highlighting, e.g. "python" or
	// "autodetect". Omitted when empty; the service then applies its
	// default.
	Language string

	// Duration is the paste lifetime in minutes.
	Duration int

	// MaxViews deletes the paste after this many views. Omitted when
	// zero.
	MaxViews int
}

// apiResponse covers both response shapes: the service returns {"url":
// ...} on success and {"error_msg": ...} on rejection, at any status.
type apiResponse struct {
	URL      string `json:"url"`
	ErrorMsg string `json:"error_msg"`
}

// Create uploads content as a new paste and returns the paste URL. The
// content travels as the raw request body; all metadata goes in the
// query string, which is the wire format the pastery API expects.
func (c *Client) Create(ctx context.Context, content []byte, opts CreateOptions) (string, error) {
	if opts.APIKey == "" {
		return "", &Error{Code: ErrMissingAPIKey, Message: "API key is required"}
	}

	u, err := url.Parse(c.baseURL + apiPath)
	if err != nil {
		return "", fmt.Errorf("parsing base URL: %w", err)
	}
	q := u.Query()
	q.Set("api_key", opts.APIKey)
	q.Set("duration", strconv.Itoa(opts.Duration))
	if opts.Language != "" {
		q.Set("language", opts.Language)
	}
	if opts.Title != "" {
		q.Set("title", opts.Title)
	}
	if opts.MaxViews > 0 {
		q.Set("max_views", strconv.Itoa(opts.MaxViews))
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.String(), bytes.NewReader(content))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "text/plain; charset=utf-8")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("making request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response: %w", err)
	}

	var parsed apiResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		if resp.StatusCode != http.StatusOK {
			return "", &Error{Code: ErrServer, Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
		}
		return "", &Error{Code: ErrBadResponse, Message: fmt.Sprintf("could not parse response: %v", err)}
	}

	if parsed.ErrorMsg != "" {
		code := ErrRejected
		if resp.StatusCode == http.StatusTooManyRequests {
			code = ErrRateLimited
		}
		return "", &Error{Code: code, Message: parsed.ErrorMsg}
	}

	if resp.StatusCode != http.StatusOK || parsed.URL == "" {
		return "", &Error{Code: ErrServer, Message: fmt.Sprintf("unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))}
	}

	return parsed.URL, nil
}

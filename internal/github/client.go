package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"
)

const (
	// DefaultBaseURL is the public GitHub REST API endpoint.
	DefaultBaseURL   = "https://api.github.com"
	defaultUserAgent = "ghbot/1.0"
)

// Client provides access to the GitHub API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	userAgent  string

	rateMu    sync.Mutex
	rateLimit *RateLimit
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL sets a custom base URL (for GitHub Enterprise).
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithUserAgent overrides the User-Agent header.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// NewClient creates a new GitHub API client. The token is optional; without
// it requests are made anonymously.
func NewClient(token string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		token:      token,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		userAgent:  defaultUserAgent,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// do performs a GET request and decodes the response. target is either a path
// relative to the base URL or an absolute URL, which is used verbatim.
func (c *Client) do(ctx context.Context, target string, result interface{}) error {
	endpoint := target
	if !isAbsoluteURL(target) {
		endpoint = c.baseURL + target
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("X-GitHub-Api-Version", "2022-11-28")
	// The token only goes to the configured API host, never to a host named in a response.
	if c.token != "" && sameHost(req.URL, c.baseURL) {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	c.updateRateLimit(resp)

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		if len(respBody) > 0 {
			_ = json.Unmarshal(respBody, apiErr)
		}
		if resp.StatusCode == http.StatusForbidden && resp.Header.Get("X-RateLimit-Remaining") == "0" {
			return c.rateLimitError(apiErr)
		}
		if apiErr.Message == "" {
			apiErr.Message = fmt.Sprintf("GitHub API error: %s", resp.Status)
		}
		return apiErr
	}

	// Some proxies answer 200 with GitHub's error envelope.
	if isNotFoundBody(respBody) {
		return &APIError{StatusCode: resp.StatusCode, Message: notFoundMessage}
	}

	if result != nil && len(respBody) > 0 {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}

// get performs a GET request.
func (c *Client) get(ctx context.Context, path string, result interface{}) error {
	return c.do(ctx, path, result)
}

// IsNotFound reports whether err means the requested issue or pull request does not exist.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		return false
	}
	return apiErr.Message == notFoundMessage || apiErr.StatusCode == http.StatusNotFound
}

// isNotFoundBody reports whether body is GitHub's "Not Found" error envelope.
func isNotFoundBody(body []byte) bool {
	var envelope struct {
		Message string `json:"message"`
	}
	return json.Unmarshal(body, &envelope) == nil && envelope.Message == notFoundMessage
}

func isAbsoluteURL(target string) bool {
	return strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://")
}

// sameHost reports whether u points at the host of base.
func sameHost(u *url.URL, base string) bool {
	b, err := url.Parse(base)
	if err != nil {
		return false
	}
	return strings.EqualFold(u.Host, b.Host)
}

// updateRateLimit extracts rate limit info from response headers.
func (c *Client) updateRateLimit(resp *http.Response) {
	c.rateMu.Lock()
	defer c.rateMu.Unlock()

	limit := resp.Header.Get("X-RateLimit-Limit")
	remaining := resp.Header.Get("X-RateLimit-Remaining")
	reset := resp.Header.Get("X-RateLimit-Reset")

	if limit == "" || remaining == "" || reset == "" {
		return
	}

	l, _ := strconv.Atoi(limit)
	r, _ := strconv.Atoi(remaining)
	rs, _ := strconv.ParseInt(reset, 10, 64)

	c.rateLimit = &RateLimit{
		Limit:     l,
		Remaining: r,
		Reset:     time.Unix(rs, 0),
	}
}

func (c *Client) rateLimitError(apiErr *APIError) error {
	c.rateMu.Lock()
	defer c.rateMu.Unlock()

	rlErr := &RateLimitError{Err: apiErr}
	if c.rateLimit != nil {
		rlErr.Remaining = c.rateLimit.Remaining
		rlErr.Reset = c.rateLimit.Reset
	}
	return rlErr
}

// GetRateLimit returns the rate limit status seen on the last response.
func (c *Client) GetRateLimit() *RateLimit {
	c.rateMu.Lock()
	defer c.rateMu.Unlock()
	if c.rateLimit == nil {
		return nil
	}
	rl := *c.rateLimit
	return &rl
}

// RateLimitError is returned when GitHub rejects a request because the rate
// limit is exhausted. Requests are never retried.
type RateLimitError struct {
	Remaining int
	Reset     time.Time
	Err       *APIError
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exhausted (%d remaining), resets at %s",
		e.Remaining, e.Reset.Format(time.RFC3339))
}

func (e *RateLimitError) Unwrap() error {
	return e.Err
}

package scrape

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// maxPageBytes caps how much of a recipe page is read.
const maxPageBytes = 5 << 20

// ClientConfig configures the recipe page fetcher.
type ClientConfig struct {
	// Timeout for a single request attempt (default: 15s).
	Timeout time.Duration

	// MaxRetries after the first attempt for retryable failures (default: 2).
	MaxRetries int

	// RateLimit in requests per second across all fetches (default: 2).
	RateLimit float64

	// RateBurst maximum burst size (default: 1).
	RateBurst int

	// UserAgent sent with every request.
	UserAgent string

	// Transport allows injecting a custom HTTP transport (for tests).
	Transport http.RoundTripper
}

// DefaultClientConfig returns a config with the defaults filled in.
func DefaultClientConfig() ClientConfig {
	return ClientConfig{
		Timeout:    15 * time.Second,
		MaxRetries: 2,
		RateLimit:  2,
		RateBurst:  1,
		UserAgent:  "woodpantry-household/1.0 (+recipe import)",
	}
}

var errRequest = errors.New("invalid fetch request")

// Client fetches recipe pages with rate limiting and retry.
type Client struct {
	config     ClientConfig
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a Client. Zero fields in cfg take their defaults;
// a negative MaxRetries disables retries.
func NewClient(cfg ClientConfig) *Client {
	def := DefaultClientConfig()
	if cfg.Timeout == 0 {
		cfg.Timeout = def.Timeout
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = def.MaxRetries
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	if cfg.RateLimit == 0 {
		cfg.RateLimit = def.RateLimit
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = def.RateBurst
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = def.UserAgent
	}
	return &Client{
		config: cfg,
		httpClient: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: cfg.Transport,
		},
		limiter: rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
	}
}

// StatusError is returned when the page responds with a non-2xx status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.URL, e.StatusCode)
}

// Fetch downloads the page at url and returns its body.
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter: %w", err)
	}

	var lastErr error
	for attempt := 0; attempt <= c.config.MaxRetries; attempt++ {
		body, err := c.fetchOnce(ctx, url)
		if err == nil {
			return body, nil
		}
		lastErr = err
		if ctx.Err() != nil || !isRetryable(err) {
			return nil, err
		}
		if attempt == c.config.MaxRetries {
			break
		}

		backoff := time.Duration(1<<uint(attempt)) * 200 * time.Millisecond
		slog.Warn("recipe fetch failed, retrying", "url", url, "attempt", attempt+1, "backoff", backoff, "error", err)
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
	return nil, fmt.Errorf("max retries exceeded: %w", lastErr)
}

func (c *Client) fetchOnce(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errRequest, err)
	}
	req.Header.Set("User-Agent", c.config.UserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxPageBytes)) //nolint:errcheck
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxPageBytes))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", url, err)
	}
	return body, nil
}

// isRetryable reports whether a failed attempt is worth repeating: transport
// errors, 429 and 5xx responses.
func isRetryable(err error) bool {
	if errors.Is(err, errRequest) {
		return false
	}
	var se *StatusError
	if errors.As(err, &se) {
		return se.StatusCode == http.StatusTooManyRequests || se.StatusCode >= 500
	}
	return true
}

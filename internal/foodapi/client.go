// Package foodapi talks to the nutrition HTTP API and hosts the catalog and
// detail loaders that shield the views from fetch failures.
package foodapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rshade/nutrispark/internal/food"
	"github.com/rshade/nutrispark/internal/logging"
)

// API paths.
const (
	allFoodsPath = "/api/foods/all"
	foodPathFmt  = "/api/foods/%s"
)

// maxBodyBytes bounds how much of a response body is read.
const maxBodyBytes = 16 << 20

// DefaultUserAgent is sent when no other user agent is configured.
const DefaultUserAgent = "nutrispark"

// CatalogSource lists every known food.
type CatalogSource interface {
	ListFoods(ctx context.Context) ([]food.Record, error)
}

// DetailSource fetches a single food by identifier.
type DetailSource interface {
	GetFood(ctx context.Context, identifier string) (*food.Record, error)
}

// Client is an HTTP client for the nutrition API. It satisfies both
// CatalogSource and DetailSource.
type Client struct {
	baseURL    *url.URL
	httpClient *http.Client
	userAgent  string
	timeout    time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithTimeout bounds each request. Zero means no timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.userAgent = ua
		}
	}
}

// NewClient creates a client rooted at baseURL, e.g. "http://localhost:3000".
func NewClient(baseURL string, opts ...Option) (*Client, error) {
	u, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parsing API base URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return nil, fmt.Errorf("API base URL %q must include scheme and host", baseURL)
	}

	c := &Client{
		baseURL:    u,
		httpClient: http.DefaultClient,
		userAgent:  DefaultUserAgent,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// BaseURL returns the API root the client was created with.
func (c *Client) BaseURL() string {
	return c.baseURL.String()
}

// ListFoods fetches the full catalog in server order.
func (c *Client) ListFoods(ctx context.Context) ([]food.Record, error) {
	body, err := c.get(ctx, allFoodsPath)
	if err != nil {
		return nil, err
	}

	var records []food.Record
	if err := json.Unmarshal(body, &records); err != nil {
		return nil, fmt.Errorf("decoding food catalog: %w", err)
	}
	return records, nil
}

// GetFood fetches one food. Unknown identifiers yield an error matching
// ErrNotFound.
func (c *Client) GetFood(ctx context.Context, identifier string) (*food.Record, error) {
	if identifier == "" {
		return nil, ErrEmptyIdentifier
	}

	body, err := c.get(ctx, fmt.Sprintf(foodPathFmt, url.PathEscape(identifier)))
	if err != nil {
		return nil, err
	}

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, fmt.Errorf("food %q: %w", identifier, ErrNotFound)
	}

	var record food.Record
	if err := json.Unmarshal(trimmed, &record); err != nil {
		return nil, fmt.Errorf("decoding food %q: %w", identifier, err)
	}
	return &record, nil
}

func (c *Client) get(ctx context.Context, path string) ([]byte, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	endpoint := c.baseURL.String() + path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	log := logging.FromContext(ctx)
	start := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	log.Debug().
		Ctx(ctx).
		Str("component", "foodapi").
		Str("url", endpoint).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request completed")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, &StatusError{URL: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response from %s: %w", endpoint, err)
	}
	return body, nil
}

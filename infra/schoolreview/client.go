// Package schoolreview is the HTTP transport for the school-review API.
package schoolreview

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/gregjones/httpcache"
	"go.uber.org/zap"

	"github.com/CrestNiraj12/schoolreview/domain"
	"github.com/CrestNiraj12/schoolreview/infra/auth"
)

const maxErrorBody = 64 << 10

// Client is a thin HTTP wrapper for the school-review API.
// It handles base URL construction, token injection, GET retries and
// flattening of error bodies.
type Client struct {
	baseURL       string
	tokenProvider auth.TokenProvider
	scheme        string
	http          *http.Client
	retries       uint64
	cache         bool
	log           *zap.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the request logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Client) { c.log = l }
}

// WithAuthScheme sets the Authorization prefix ("Token", "Bearer").
func WithAuthScheme(s string) Option {
	return func(c *Client) { c.scheme = s }
}

// WithRetries sets how many extra attempts a failing GET gets.
func WithRetries(n uint64) Option {
	return func(c *Client) { c.retries = n }
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.http.Timeout = d }
}

// WithHTTPCache enables ETag/Cache-Control aware caching of GET responses.
func WithHTTPCache(enabled bool) Option {
	return func(c *Client) { c.cache = enabled }
}

// WithHTTPClient replaces the underlying http.Client. Used by tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// NewClient creates an API client. tp may be nil for an anonymous viewer.
func NewClient(baseURL string, tp auth.TokenProvider, opts ...Option) *Client {
	if tp == nil {
		tp = auth.Anonymous{}
	}
	c := &Client{
		baseURL:       baseURL,
		tokenProvider: tp,
		scheme:        "Token",
		http:          &http.Client{Timeout: 15 * time.Second},
		retries:       2,
		log:           zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.cache {
		ct := httpcache.NewMemoryCacheTransport()
		if c.http.Transport != nil {
			ct.Transport = c.http.Transport
		}
		hc := *c.http
		hc.Transport = ct
		c.http = &hc
	}
	return c
}

// Response is a successful API response.
type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Decode unmarshals the JSON body into v.
func (r *Response) Decode(v any) error {
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("parsing response: %w", err)
	}
	return nil
}

// Get performs a GET request, retrying network failures and 5xx responses.
func (c *Client) Get(ctx context.Context, path string, authed bool) (*Response, error) {
	var resp *Response
	op := func() error {
		r, err := c.do(ctx, http.MethodGet, path, nil, authed)
		if err != nil {
			if !retryable(err) {
				return backoff.Permanent(err)
			}
			return err
		}
		resp = r
		return nil
	}

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxElapsedTime = 10 * time.Second
	b := backoff.WithContext(backoff.WithMaxRetries(policy, c.retries), ctx)

	notify := func(err error, wait time.Duration) {
		c.log.Debug("retrying request", zap.String("path", path), zap.Duration("wait", wait), zap.Error(err))
	}
	if err := backoff.RetryNotify(op, b, notify); err != nil {
		return nil, err
	}
	return resp, nil
}

// GetOnce performs a GET without retries, for endpoints that mutate state.
func (c *Client) GetOnce(ctx context.Context, path string, authed bool) (*Response, error) {
	return c.do(ctx, http.MethodGet, path, nil, authed)
}

// Post sends payload as JSON. POSTs are never retried.
func (c *Client) Post(ctx context.Context, path string, payload any, authed bool) (*Response, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}
	return c.do(ctx, http.MethodPost, path, body, authed)
}

func (c *Client) do(ctx context.Context, method, path string, body []byte, authed bool) (*Response, error) {
	var token string
	if authed {
		t, err := c.tokenProvider.AccessToken()
		if err != nil {
			return nil, fmt.Errorf("auth: %w", err)
		}
		token = t
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	reqID := uuid.NewString()
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", c.scheme+" "+token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("request_id", reqID),
			zap.Error(err))
		return nil, &domain.TransportError{Method: method, Path: path, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &domain.TransportError{Method: method, Path: path, Status: resp.StatusCode, Err: fmt.Errorf("reading response: %w", err)}
	}

	c.log.Debug("request",
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.String("request_id", reqID),
		zap.Bool("cached", resp.Header.Get(httpcache.XFromCache) != ""),
		zap.Duration("took", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if len(data) > maxErrorBody {
			data = data[:maxErrorBody]
		}
		msgs := flattenErrorBody(data)
		if msgs == nil && len(data) > 0 {
			c.log.Debug("non-JSON error body",
				zap.String("path", path),
				zap.Int("status", resp.StatusCode),
				zap.String("request_id", reqID),
				zap.String("body", errorExcerpt(data)))
		}
		return nil, &domain.TransportError{
			Method:   method,
			Path:     path,
			Status:   resp.StatusCode,
			Messages: msgs,
		}
	}

	return &Response{Status: resp.StatusCode, Header: resp.Header, Body: data}, nil
}

func retryable(err error) bool {
	var te *domain.TransportError
	if !errors.As(err, &te) {
		return false
	}
	if te.Status == 0 {
		return !errors.Is(te.Err, context.Canceled) && !errors.Is(te.Err, context.DeadlineExceeded)
	}
	return te.Status >= 500
}

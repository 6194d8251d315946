package integrations

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

	"go.uber.org/zap"
)

// APIError is returned when a remote API answers with HTTP >= 400
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (%d): %s", e.StatusCode, e.Body)
}

// Response is a fully read HTTP response
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// JSON decodes the response body into v
func (r *Response) JSON(v interface{}) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// RequestOptions carries the optional parts of a request
type RequestOptions struct {
	Params  url.Values
	JSON    interface{}
	Headers map[string]string
}

// BaseClient joins endpoints onto a base URL and performs JSON requests.
// API-specific clients embed it and decide how the API key is sent.
type BaseClient struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
	Logger     *zap.Logger
}

// NewBaseClient creates a BaseClient with a 30s timeout
func NewBaseClient(baseURL, apiKey string, logger *zap.Logger) *BaseClient {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &BaseClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		APIKey:  apiKey,
		HTTPClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		Logger: logger,
	}
}

func (c *BaseClient) Get(ctx context.Context, endpoint string, opts *RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodGet, endpoint, opts)
}

func (c *BaseClient) Post(ctx context.Context, endpoint string, opts *RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPost, endpoint, opts)
}

func (c *BaseClient) Put(ctx context.Context, endpoint string, opts *RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPut, endpoint, opts)
}

func (c *BaseClient) Patch(ctx context.Context, endpoint string, opts *RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodPatch, endpoint, opts)
}

func (c *BaseClient) Delete(ctx context.Context, endpoint string, opts *RequestOptions) (*Response, error) {
	return c.Do(ctx, http.MethodDelete, endpoint, opts)
}

// URL joins endpoint onto the base URL
func (c *BaseClient) URL(endpoint string) string {
	return c.BaseURL + "/" + strings.TrimLeft(endpoint, "/")
}

// Do executes a request. For HTTP >= 400 both the response and an *APIError
// are returned.
func (c *BaseClient) Do(ctx context.Context, method, endpoint string, opts *RequestOptions) (*Response, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	var reqBody io.Reader
	if opts.JSON != nil {
		jsonBytes, err := json.Marshal(opts.JSON)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal body: %w", err)
		}
		reqBody = bytes.NewReader(jsonBytes)
	}

	fullURL := c.URL(endpoint)
	if len(opts.Params) > 0 {
		fullURL += "?" + opts.Params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if opts.JSON != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	for k, v := range opts.Headers {
		req.Header.Set(k, v)
	}

	start := time.Now()
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		c.Logger.Warn("request failed", zap.String("method", method), zap.String("endpoint", endpoint), zap.Error(err))
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.Logger.Debug("request complete",
		zap.String("method", method),
		zap.String("endpoint", endpoint),
		zap.Int("status", resp.StatusCode),
		zap.Duration("latency", time.Since(start)))

	out := &Response{StatusCode: resp.StatusCode, Header: resp.Header, Body: body}
	if resp.StatusCode >= 400 {
		return out, &APIError{StatusCode: resp.StatusCode, Body: string(body)}
	}
	return out, nil
}

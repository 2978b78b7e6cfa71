package clients

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const (
	defaultTimeout  = 15 * time.Second
	maxResponseSize = 1 << 20
	userAgent       = "coursemarket"
)

var ErrResponseTooLarge = errors.New("response body too large")

//go:generate mockgen -source=http_client.go -destination=mock_http_client.go -package=clients

type HTTPClientI interface {
	PostJSON(ctx context.Context, url string, headers http.Header, body []byte) (*Response, error)
}

// Response is a fully read reply of an outbound call.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

func (r *Response) Success() bool {
	return r.StatusCode >= http.StatusOK && r.StatusCode < http.StatusMultipleChoices
}

type Option func(c *HTTPClient)

func WithTimeout(timeout time.Duration) Option {
	return func(c *HTTPClient) { c.client.Timeout = timeout }
}

func WithTransport(transport http.RoundTripper) Option {
	return func(c *HTTPClient) { c.client.Transport = transport }
}

type HTTPClient struct {
	client *http.Client
}

func NewHTTPClient(opts ...Option) *HTTPClient {
	c := &HTTPClient{client: &http.Client{Timeout: defaultTimeout}}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// PostJSON sends body as JSON and reads at most 1MB of the reply.
func (c *HTTPClient) PostJSON(ctx context.Context, url string, headers http.Header, body []byte) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	for key, values := range headers {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}
	if len(data) > maxResponseSize {
		return nil, ErrResponseTooLarge
	}
	return &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       data,
	}, nil
}

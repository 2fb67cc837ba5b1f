// Package http provides an HTTP-based implementation of podnote.Fetcher.
package http

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/podnote"
	"golang.org/x/net/html/charset"
)

// Ensure Fetcher implements podnote.Fetcher at compile time.
var _ podnote.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves episode pages with a single HTTPS request.
// Redirects are not followed and requests are never retried.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
	baseURL string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Zero, the default, leaves timing out to the transport.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithClient sets the underlying HTTP client.
// The client is copied and its redirect policy replaced.
func WithClient(c *http.Client) Option {
	return func(f *Fetcher) {
		f.client = c
	}
}

// WithBaseURL sends every request to baseURL + path instead of the
// request's host. Used to point the fetcher at a test server.
func WithBaseURL(baseURL string) Option {
	return func(f *Fetcher) {
		f.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// NewFetcher creates a new HTTP-based Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		client: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(f)
	}

	client := *f.client
	client.CheckRedirect = func(*http.Request, []*http.Request) error {
		return http.ErrUseLastResponse
	}
	if f.timeout > 0 {
		client.Timeout = f.timeout
	}
	f.client = &client

	return f
}

// Fetch performs the request and returns the body decoded to UTF-8.
// The response status is not inspected; a page without metadata is
// rejected by the extractor.
func (f *Fetcher) Fetch(ctx context.Context, req *podnote.FetchRequest) (string, error) {
	target := req.URL()
	if f.baseURL != "" {
		target = f.baseURL + req.Path
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, target, nil)
	if err != nil {
		return "", podnote.WrapError(podnote.EINVALID, err, "invalid request for %s", req.Host)
	}
	httpReq.Header = req.Header.Clone()

	resp, err := f.client.Do(httpReq)
	if err != nil {
		return "", podnote.WrapError(podnote.ENETWORK, err, "request to %s failed", req.Host)
	}
	defer resp.Body.Close()

	r, err := charset.NewReader(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return "", podnote.WrapError(podnote.ENETWORK, err, "decoding response from %s", req.Host)
	}

	body, err := io.ReadAll(r)
	if err != nil {
		return "", podnote.WrapError(podnote.ENETWORK, err, "reading response from %s", req.Host)
	}

	return string(body), nil
}

// Package http provides an HTTP-based implementation of salience.Fetcher
// for downloading marketing pages.
package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/salience"
	"golang.org/x/net/html/charset"
)

// DefaultTimeout bounds a whole request, body included.
const DefaultTimeout = 10 * time.Second

// DefaultMaxBodySize limits how much of a response body is read.
const DefaultMaxBodySize = 10 << 20

// DefaultUserAgent is sent with every request.
const DefaultUserAgent = "salience/1.0 (+https://github.com/fwojciec/salience)"

// Ensure Fetcher implements salience.Fetcher at compile time.
var _ salience.Fetcher = (*Fetcher)(nil)

// Fetcher downloads pages with a plain GET. Response bodies are decoded to UTF-8 using the declared or sniffed
// charset, so GBK and Windows-1251 pages arrive as readable text.
type Fetcher struct {
	client      *http.Client
	timeout     time.Duration
	maxBodySize int64
	userAgent   string
}

// Option is a functional option for NewFetcher.
type Option func(*Fetcher)

// WithTimeout overrides DefaultTimeout.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithMaxBodySize sets the maximum number of body bytes read.
func WithMaxBodySize(n int64) Option {
	return func(f *Fetcher) {
		f.maxBodySize = n
	}
}

// WithUserAgent sets the User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher returns a Fetcher with default limits unless overridden.
func NewFetcher(opts ...Option) *Fetcher {
	fetcher := &Fetcher{
		timeout:     DefaultTimeout,
		maxBodySize: DefaultMaxBodySize,
		userAgent:   DefaultUserAgent,
	}
	for _, apply := range opts {
		apply(fetcher)
	}
	fetcher.client = &http.Client{Timeout: fetcher.timeout}
	return fetcher
}

// Fetch returns the page at url decoded to UTF-8. Non-200 responses map
// to coded errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", salience.Errorf(salience.EINVALID, "invalid URL %q: %v", url, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", salience.Errorf(salience.EUNAVAILABLE, "fetch %s: %v", url, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusGone:
		return "", salience.Errorf(salience.ENOTFOUND, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests:
		return "", salience.Errorf(salience.EUNAVAILABLE, "HTTP %d for %s", resp.StatusCode, url)
	case resp.StatusCode != http.StatusOK:
		return "", salience.Errorf(salience.EINVALID, "HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := charset.NewReader(io.LimitReader(resp.Body, f.maxBodySize), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", salience.Errorf(salience.EINVALID, "decode body of %s: %v", url, err)
	}

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Close is a no-op.
func (f *Fetcher) Close() error {
	return nil
}

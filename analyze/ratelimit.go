package analyze

import (
	"context"
	"net"
	"strings"
	"sync"

	"github.com/fwojciec/salience"
	"golang.org/x/time/rate"
)

var _ salience.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter spaces out page requests per host. Hosts are compared
// case-insensitively, without port and without a leading "www.", so
// www.acme.example:443 and acme.example share one bucket.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter

	limit     rate.Limit
	burst     int
	overrides map[string]rate.Limit
}

// LimiterOption configures a DomainLimiter.
type LimiterOption func(*DomainLimiter)

// WithBurst lets n requests to a host through back to back before spacing
// kicks in. Values below 1 are treated as 1.
func WithBurst(n int) LimiterOption {
	return func(d *DomainLimiter) {
		d.burst = max(n, 1)
	}
}

// WithHostRate sets the rate for one host. rps <= 0 leaves the host
// unlimited.
func WithHostRate(host string, rps float64) LimiterOption {
	return func(d *DomainLimiter) {
		d.overrides[canonicalHost(host)] = limitOf(rps)
	}
}

// NewDomainLimiter returns a limiter allowing rps requests per second to
// every host. rps <= 0 disables limiting except for hosts given by
// WithHostRate.
func NewDomainLimiter(rps float64, opts ...LimiterOption) *DomainLimiter {
	d := &DomainLimiter{
		buckets:   make(map[string]*rate.Limiter),
		limit:     limitOf(rps),
		burst:     1,
		overrides: make(map[string]rate.Limit),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Wait blocks until a request to domain is allowed or ctx is done.
func (d *DomainLimiter) Wait(ctx context.Context, domain string) error {
	return d.bucket(canonicalHost(domain)).Wait(ctx)
}

func (d *DomainLimiter) bucket(host string) *rate.Limiter {
	d.mu.Lock()
	defer d.mu.Unlock()

	if b, ok := d.buckets[host]; ok {
		return b
	}
	limit, ok := d.overrides[host]
	if !ok {
		limit = d.limit
	}
	b := rate.NewLimiter(limit, d.burst)
	d.buckets[host] = b
	return b
}

func limitOf(rps float64) rate.Limit {
	if rps <= 0 {
		return rate.Inf
	}
	return rate.Limit(rps)
}

func canonicalHost(domain string) string {
	host := strings.ToLower(strings.TrimSpace(domain))
	if h, _, err := net.SplitHostPort(host); err == nil {
		host = h
	}
	return strings.TrimPrefix(host, "www.")
}

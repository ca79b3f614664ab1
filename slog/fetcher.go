// Package slog decorates salience capabilities with structured logging.
package slog

import (
	"context"
	"log/slog"
	"net/url"
	"time"

	"github.com/fwojciec/salience"
)

// Ensure LoggingFetcher implements salience.Fetcher.
var _ salience.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with logging. Pages are logged at debug
// level with their host and size; failures are warnings carrying the
// salience error code, so retries of unavailable hosts stand out from
// missing pages.
type LoggingFetcher struct {
	next   salience.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next salience.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the page.
func (f *LoggingFetcher) Fetch(ctx context.Context, rawURL string) (page string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"host", hostOf(rawURL),
			"url", rawURL,
			"bytes", len(page),
			"duration", time.Since(begin),
		}
		if err != nil {
			attrs = append(attrs, "code", salience.ErrorCode(err), "err", err)
		}
		f.logger.Log(ctx, levelFor(err), "fetch page", attrs...)
	}(time.Now())
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return u.Hostname()
}

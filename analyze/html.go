package analyze

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/fwojciec/salience"
)

// Ensure HTMLSource implements salience.TextExtractor at compile time.
var _ salience.TextExtractor = (*HTMLSource)(nil)

// HTMLSource extracts the text of HTML documents. URLs are fetched, other
// sources are read as files. Boilerplate is removed with Extractor when one
// is set, then the remaining HTML is rendered as text by Converter.
type HTMLSource struct {
	Fetcher   salience.Fetcher
	Files     salience.TextExtractor
	Extractor salience.HTMLExtractor
	Converter salience.Converter

	// RateLimiter spaces out requests to the same domain when set.
	RateLimiter salience.DomainLimiter

	// RetryDelays are the waits between fetch attempts.
	// Defaults to DefaultRetryDelays.
	RetryDelays []time.Duration

	// Logger receives retry messages when set.
	Logger LogFunc
}

// ExtractText returns the text of the HTML document at source.
func (s *HTMLSource) ExtractText(ctx context.Context, source string) (string, error) {
	raw, err := s.load(ctx, source)
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(raw) == "" {
		return "", nil
	}

	html := raw
	if s.Extractor != nil {
		// Pages the extractor cannot handle are converted whole.
		if result, err := s.Extractor.Extract(raw); err == nil && strings.TrimSpace(result.ContentHTML) != "" {
			html = result.ContentHTML
		}
	}

	return s.Converter.Convert(html)
}

func (s *HTMLSource) load(ctx context.Context, source string) (string, error) {
	if !salience.IsURL(source) {
		if s.Files == nil {
			return "", salience.Errorf(salience.EUNAVAILABLE, "reading local HTML files is not configured")
		}
		return s.Files.ExtractText(ctx, source)
	}

	if s.Fetcher == nil {
		return "", salience.Errorf(salience.EUNAVAILABLE, "fetching URLs is not configured")
	}

	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	return FetchWithRetryDelays(ctx, source, s.fetch, s.Logger, delays)
}

func (s *HTMLSource) fetch(ctx context.Context, rawURL string) (string, error) {
	if s.RateLimiter != nil {
		u, err := url.Parse(rawURL)
		if err != nil {
			return "", salience.Errorf(salience.EINVALID, "invalid URL %q: %v", rawURL, err)
		}
		if err := s.RateLimiter.Wait(ctx, u.Host); err != nil {
			return "", err
		}
	}
	return s.Fetcher.Fetch(ctx, rawURL)
}

// Package readability removes page boilerplate using go-readability.
package readability

import (
	"net/url"
	"strings"

	"github.com/fwojciec/salience"
	"github.com/go-shiori/go-readability"
)

// Ensure Extractor implements salience.HTMLExtractor at compile time.
var _ salience.HTMLExtractor = (*Extractor)(nil)

// Extractor keeps the article-like content of a page.
type Extractor struct {
	// PageURL resolves relative links in the extracted content.
	PageURL *url.URL
}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the title and main content of rawHTML. Pages without an
// article-like block are reported as EINVALID.
func (e *Extractor) Extract(rawHTML string) (*salience.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, salience.Errorf(salience.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), e.PageURL)
	if err != nil {
		return nil, salience.Errorf(salience.EINVALID, "extract article: %v", err)
	}

	return &salience.ExtractResult{
		Title:       article.Title,
		ContentHTML: article.Content,
	}, nil
}

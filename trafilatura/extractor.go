// Package trafilatura removes page boilerplate from marketing pages using
// go-trafilatura.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/fwojciec/salience"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements salience.HTMLExtractor at compile time.
var _ salience.HTMLExtractor = (*Extractor)(nil)

// Extractor keeps the main content of a page and drops navigation, footers
// and comment threads.
type Extractor struct {
	// Language, when set, makes extraction fail for pages written in a
	// different language.
	Language salience.Language

	// Precise trades recall for precision. Marketing pages are made of
	// short blocks, so recall is favored by default.
	Precise bool
}

// NewExtractor creates an Extractor that favors recall.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the title and main content of rawHTML.
func (e *Extractor) Extract(rawHTML string) (*salience.ExtractResult, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, salience.Errorf(salience.EINVALID, "empty HTML input")
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), e.options())
	if err != nil {
		return nil, salience.Errorf(salience.EINVALID, "extract main content: %v", err)
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}

	return &salience.ExtractResult{
		Title:       result.Metadata.Title,
		ContentHTML: contentHTML,
	}, nil
}

func (e *Extractor) options() trafilatura.Options {
	opts := trafilatura.Options{
		EnableFallback:  true,
		ExcludeComments: true,
		FavorRecall:     !e.Precise,
		FavorPrecision:  e.Precise,
	}
	if e.Language != "" && e.Language != salience.LanguageOther {
		opts.TargetLanguage = string(e.Language)
	}
	return opts
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", err
	}
	return buf.String(), nil
}

package mock

import (
	"context"

	"github.com/fwojciec/salience"
)

var _ salience.HTMLExtractor = (*HTMLExtractor)(nil)

// HTMLExtractor is a mock implementation of salience.HTMLExtractor.
type HTMLExtractor struct {
	ExtractFn func(html string) (*salience.ExtractResult, error)
}

func (e *HTMLExtractor) Extract(html string) (*salience.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ salience.TextExtractor = (*TextExtractor)(nil)

// TextExtractor is a mock implementation of salience.TextExtractor.
type TextExtractor struct {
	ExtractTextFn func(ctx context.Context, source string) (string, error)
}

func (e *TextExtractor) ExtractText(ctx context.Context, source string) (string, error) {
	return e.ExtractTextFn(ctx, source)
}

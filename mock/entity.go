package mock

import (
	"context"

	"github.com/fwojciec/salience"
)

var _ salience.EntityRecognizer = (*EntityRecognizer)(nil)

// EntityRecognizer is a mock implementation of salience.EntityRecognizer.
type EntityRecognizer struct {
	RecognizeEntitiesFn func(ctx context.Context, text string, lang salience.Language) ([]salience.Entity, error)
}

func (r *EntityRecognizer) RecognizeEntities(ctx context.Context, text string, lang salience.Language) ([]salience.Entity, error) {
	return r.RecognizeEntitiesFn(ctx, text, lang)
}

var _ salience.TokenCounter = (*TokenCounter)(nil)

// TokenCounter is a mock implementation of salience.TokenCounter.
type TokenCounter struct {
	CountTokensFn func(ctx context.Context, text string) (int, error)
}

func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	return tc.CountTokensFn(ctx, text)
}

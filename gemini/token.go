package gemini

import (
	"context"
	"strings"

	"github.com/fwojciec/salience"
	"google.golang.org/genai"
	"google.golang.org/genai/tokenizer"
)

var _ salience.TokenCounter = (*TokenCounter)(nil)

// TokenCounter counts tokens locally with the Gemini tokenizer, without
// calling the API.
type TokenCounter struct {
	tok *tokenizer.LocalTokenizer
}

// NewTokenCounter creates a new TokenCounter for the given model.
func NewTokenCounter(model string) (*TokenCounter, error) {
	tok, err := tokenizer.NewLocalTokenizer(model)
	if err != nil {
		return nil, salience.Errorf(salience.EUNAVAILABLE, "load tokenizer for %s: %v", model, err)
	}
	return &TokenCounter{tok: tok}, nil
}

// CountTokens counts the number of tokens in the given text.
func (tc *TokenCounter) CountTokens(ctx context.Context, text string) (int, error) {
	if text == "" {
		return 0, nil
	}

	result, err := tc.tok.CountTokens([]*genai.Content{genai.NewContentFromText(text, "user")}, nil)
	if err != nil {
		return 0, err
	}

	return int(result.TotalTokens), nil
}

// TruncateToTokens shortens text until counter reports at most maxTokens
// tokens. Text is cut at a line break when one is available so that
// sections stay whole.
func TruncateToTokens(ctx context.Context, counter salience.TokenCounter, text string, maxTokens int) (string, error) {
	for {
		n, err := counter.CountTokens(ctx, text)
		if err != nil {
			return "", err
		}
		if n <= maxTokens {
			return text, nil
		}

		runes := []rune(text)
		keep := len(runes) * maxTokens / n
		if keep >= len(runes) {
			keep = len(runes) - 1
		}
		if keep <= 0 {
			return "", nil
		}

		text = string(runes[:keep])
		if i := strings.LastIndexByte(text, '\n'); i > 0 {
			text = text[:i]
		}
	}
}

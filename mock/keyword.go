package mock

import "github.com/fwojciec/salience"

var _ salience.KeywordExtractor = (*KeywordExtractor)(nil)

// KeywordExtractor is a mock implementation of salience.KeywordExtractor.
type KeywordExtractor struct {
	ExtractKeywordsFn func(text string, lang salience.Language, max int) []string
}

func (k *KeywordExtractor) ExtractKeywords(text string, lang salience.Language, max int) []string {
	return k.ExtractKeywordsFn(text, lang, max)
}

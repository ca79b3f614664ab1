package mock

import "github.com/fwojciec/salience"

var _ salience.LanguageDetector = (*LanguageDetector)(nil)

// LanguageDetector is a mock implementation of salience.LanguageDetector.
type LanguageDetector struct {
	DetectLanguageFn func(text string) (salience.Language, error)
}

func (d *LanguageDetector) DetectLanguage(text string) (salience.Language, error) {
	return d.DetectLanguageFn(text)
}

var _ salience.StopWords = (*StopWords)(nil)

// StopWords is a mock implementation of salience.StopWords.
type StopWords struct {
	IsStopwordFn func(word string, lang salience.Language) bool
}

func (s *StopWords) IsStopword(word string, lang salience.Language) bool {
	return s.IsStopwordFn(word, lang)
}

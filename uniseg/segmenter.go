// Package uniseg segments text into words on Unicode word boundaries
// (UAX #29) using rivo/uniseg.
package uniseg

import (
	"strings"
	"unicode"

	"github.com/fwojciec/salience"
	"github.com/rivo/uniseg"
)

// Ensure Segmenter implements salience.Segmenter at compile time.
var _ salience.Segmenter = (*Segmenter)(nil)

// Segmenter splits text into word tokens. Han ideographs have no word
// boundaries between them in UAX #29 and come out one character per token.
type Segmenter struct {
	// KeepPunctuation keeps punctuation-only segments such as "。" so that
	// sentence splitting can still see them.
	KeepPunctuation bool
}

// NewSegmenter creates a Segmenter that keeps sentence punctuation.
func NewSegmenter() *Segmenter {
	return &Segmenter{KeepPunctuation: true}
}

// Segment returns the word tokens of text in order. Whitespace is dropped.
func (s *Segmenter) Segment(text string) ([]string, error) {
	tokens := []string{}
	state := -1
	rest := text
	for len(rest) > 0 {
		var word string
		word, rest, state = uniseg.FirstWordInString(rest, state)
		if strings.TrimSpace(word) == "" {
			continue
		}
		if !s.KeepPunctuation && isPunctuation(word) {
			continue
		}
		tokens = append(tokens, word)
	}
	return tokens, nil
}

func isPunctuation(word string) bool {
	for _, r := range word {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}

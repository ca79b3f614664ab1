// Package gse segments Chinese text into dictionary words using go-ego/gse,
// a jieba-style segmenter with an embedded dictionary.
package gse

import (
	"strings"
	"sync"

	"github.com/fwojciec/salience"
	"github.com/go-ego/gse"
)

// Ensure Segmenter implements salience.Segmenter at compile time.
var _ salience.Segmenter = (*Segmenter)(nil)

// embeddedDict is loaded once per process and read-only afterwards.
var embeddedDict = sync.OnceValues(func() (*gse.Segmenter, error) {
	seg := &gse.Segmenter{SkipLog: true}
	if err := seg.LoadDictEmbed(); err != nil {
		return nil, err
	}
	return seg, nil
})

// Segmenter splits Chinese text into words found in the dictionary.
// Punctuation such as "。" comes out as its own token; whitespace is
// dropped.
type Segmenter struct {
	// HMM guesses words missing from the dictionary.
	HMM bool

	// Fallback segments text when the dictionary cannot be loaded.
	// Without one such failures are returned as EUNAVAILABLE.
	Fallback salience.Segmenter

	dict func() (*gse.Segmenter, error)
}

// NewSegmenter creates a Segmenter on the embedded dictionary with HMM
// enabled.
func NewSegmenter() *Segmenter {
	return &Segmenter{HMM: true, dict: embeddedDict}
}

// NewSegmenterWithDict creates a Segmenter on the given dictionary files.
// Files are loaded on first use.
func NewSegmenterWithDict(files ...string) *Segmenter {
	return &Segmenter{
		HMM: true,
		dict: sync.OnceValues(func() (*gse.Segmenter, error) {
			seg := &gse.Segmenter{SkipLog: true}
			if err := seg.LoadDict(strings.Join(files, ",")); err != nil {
				return nil, err
			}
			return seg, nil
		}),
	}
}

// Segment returns the words of text in order.
func (s *Segmenter) Segment(text string) ([]string, error) {
	if strings.TrimSpace(text) == "" {
		return []string{}, nil
	}

	dict := s.dict
	if dict == nil {
		dict = embeddedDict
	}
	seg, err := dict()
	if err != nil {
		if s.Fallback != nil {
			return s.Fallback.Segment(text)
		}
		return nil, salience.Errorf(salience.EUNAVAILABLE, "load segmentation dictionary: %v", err)
	}

	tokens := []string{}
	for _, tok := range seg.Cut(text, s.HMM) {
		if strings.TrimSpace(tok) == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	return tokens, nil
}

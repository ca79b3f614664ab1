package salience

import (
	"strings"
	"unicode/utf8"
)

// Segmenter splits text written without word delimiters into word tokens.
type Segmenter interface {
	Segment(text string) ([]string, error)
}

// Tokenizer splits text into sentence-like units and units into words.
type Tokenizer interface {
	// Sentences splits text into sentence-like units. Splitting happens on
	// full stops only; this is an approximation, not boundary detection.
	Sentences(text string) []string

	// Words splits a sentence into word tokens, preserving order.
	Words(sentence string) []string
}

// NewTokenizer returns the tokenization strategy for lang.
// Chinese text is segmented with seg first; every other language is
// whitespace-delimited.
func NewTokenizer(lang Language, seg Segmenter) Tokenizer {
	switch lang {
	case LanguageChinese:
		return &SegmentingTokenizer{Segmenter: seg}
	default:
		return SpaceTokenizer{}
	}
}

// Ensure tokenizers implement Tokenizer at compile time.
var (
	_ Tokenizer = SpaceTokenizer{}
	_ Tokenizer = (*SegmentingTokenizer)(nil)
)

// SpaceTokenizer tokenizes space-delimited languages.
type SpaceTokenizer struct{}

// Sentences splits text on '.'.
func (SpaceTokenizer) Sentences(text string) []string {
	return strings.Split(text, ".")
}

// Words splits a sentence on runs of whitespace.
func (SpaceTokenizer) Words(sentence string) []string {
	return strings.Fields(sentence)
}

// SegmentingTokenizer tokenizes languages written without spaces between
// words. The text is segmented and re-joined with single spaces so that the
// rest of the pipeline sees the same whitespace-delimited form as for
// space-delimited languages.
type SegmentingTokenizer struct {
	Segmenter Segmenter
}

// Sentences segments text, then splits it on '.' and '。'.
// Without a usable segmentation it falls back to SpaceTokenizer.
func (t *SegmentingTokenizer) Sentences(text string) []string {
	if t.Segmenter == nil {
		return SpaceTokenizer{}.Sentences(text)
	}

	tokens, err := t.Segmenter.Segment(text)
	if err != nil || len(tokens) == 0 {
		return SpaceTokenizer{}.Sentences(text)
	}

	return splitFunc(strings.Join(tokens, " "), isFullStop)
}

// Words splits a segmented sentence on runs of whitespace.
func (t *SegmentingTokenizer) Words(sentence string) []string {
	return strings.Fields(sentence)
}

func isFullStop(r rune) bool {
	return r == '.' || r == '。'
}

// splitFunc is like strings.Split but splits on every rune matching f.
// Empty pieces are kept.
func splitFunc(s string, f func(rune) bool) []string {
	var parts []string
	start := 0
	for i, r := range s {
		if f(r) {
			parts = append(parts, s[start:i])
			start = i + utf8.RuneLen(r)
		}
	}
	return append(parts, s[start:])
}

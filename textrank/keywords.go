package textrank

import (
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/fwojciec/salience"
)

// Mode selects the unit that is ranked to find keywords.
type Mode int

const (
	// ModeSentences ranks sentences and emits the words of the top ones.
	ModeSentences Mode = iota

	// ModeWords ranks words over a co-occurrence graph.
	ModeWords
)

// Ensure Extractor implements salience.KeywordExtractor at compile time.
var _ salience.KeywordExtractor = (*Extractor)(nil)

// Extractor extracts keywords from text with TextRank.
//
// All dependencies are optional: without a Detector every text is
// LanguageOther, without a Segmenter Chinese text is tokenized on
// whitespace, and without StopWords nothing is filtered. Capability
// failures degrade to these defaults; they never abort extraction.
type Extractor struct {
	Detector  salience.LanguageDetector
	Segmenter salience.Segmenter
	StopWords salience.StopWords
	Mode      Mode
	Options   Options
}

// NewExtractor creates an Extractor that ranks sentences.
func NewExtractor(detector salience.LanguageDetector, segmenter salience.Segmenter, stopWords salience.StopWords) *Extractor {
	return &Extractor{
		Detector:  detector,
		Segmenter: segmenter,
		StopWords: stopWords,
		Options:   DefaultOptions(),
	}
}

// Extract detects the language of text and extracts its keywords.
func (e *Extractor) Extract(text string, max int) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	return e.ExtractKeywords(text, e.DetectLanguage(text), max)
}

// DetectLanguage returns the language of text, or LanguageOther when it
// cannot be detected.
func (e *Extractor) DetectLanguage(text string) salience.Language {
	if e.Detector == nil {
		return salience.LanguageOther
	}
	lang, err := e.Detector.DetectLanguage(text)
	if err != nil {
		return salience.LanguageOther
	}
	return salience.ParseLanguage(string(lang))
}

// ExtractKeywords extracts the keywords of text written in lang.
//
// In ModeSentences max limits the number of selected sentences, not the
// number of words, so the result may hold more than max keywords.
func (e *Extractor) ExtractKeywords(text string, lang salience.Language, max int) []string {
	if strings.TrimSpace(text) == "" {
		return []string{}
	}
	if max <= 0 {
		max = salience.DefaultMaxKeywords
	}
	lang = salience.ParseLanguage(string(lang))

	units := e.units(text, lang)
	if len(units) == 0 {
		return []string{}
	}

	if e.Mode == ModeWords {
		return e.rankWords(units, lang, max)
	}

	var words []string
	for _, r := range Top(units, max, e.Options) {
		words = append(words, r.Tokens...)
	}
	return e.filter(words, lang)
}

// units tokenizes text into non-empty sentence units.
func (e *Extractor) units(text string, lang salience.Language) [][]string {
	tok := salience.NewTokenizer(lang, e.Segmenter)
	var units [][]string
	for _, sentence := range tok.Sentences(text) {
		if words := tok.Words(sentence); len(words) > 0 {
			units = append(units, words)
		}
	}
	return units
}

// filter trims punctuation and drops empty words, invalid UTF-8,
// stop-words and duplicates. The first occurrence of a word wins.
func (e *Extractor) filter(words []string, lang salience.Language) []string {
	out := []string{}
	seen := make(map[string]bool)
	for _, w := range words {
		w = trimToken(w)
		if w == "" || !utf8.ValidString(w) || seen[w] || e.isStopword(w, lang) {
			continue
		}
		seen[w] = true
		out = append(out, w)
	}
	return out
}

// rankWords ranks the candidate words of units over a co-occurrence graph
// and returns the max best ones in their first-seen surface form.
func (e *Extractor) rankWords(units [][]string, lang salience.Language, max int) []string {
	var keys []string
	surface := make(map[string]string)
	for _, unit := range units {
		for _, tok := range unit {
			w := trimToken(tok)
			if w == "" || !utf8.ValidString(w) || e.isStopword(w, lang) {
				continue
			}
			key := strings.ToLower(w)
			if _, ok := surface[key]; !ok {
				surface[key] = w
			}
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return []string{}
	}

	opts := e.Options.withDefaults()
	g, labels := NewWordGraph(keys, opts.Window)
	scores := g.Scores(opts)

	order := make([]int, len(labels))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		switch {
		case scores[a] > scores[b]:
			return -1
		case scores[a] < scores[b]:
			return 1
		default:
			return 0
		}
	})

	if len(order) > max {
		order = order[:max]
	}
	out := make([]string, 0, len(order))
	for _, i := range order {
		out = append(out, surface[labels[i]])
	}
	return out
}

func (e *Extractor) isStopword(word string, lang salience.Language) bool {
	return e.StopWords != nil && e.StopWords.IsStopword(word, lang)
}

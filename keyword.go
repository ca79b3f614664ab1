package salience

// DefaultMaxKeywords is the number of top-ranked units used for keywords
// when no limit is given.
const DefaultMaxKeywords = 10

// KeywordExtractor extracts salient keywords from text.
type KeywordExtractor interface {
	// ExtractKeywords returns keywords of text ordered by salience, without
	// duplicates and without stop-words of lang. It returns an empty slice,
	// never an error, when nothing can be extracted.
	ExtractKeywords(text string, lang Language, max int) []string
}

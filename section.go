package salience

import (
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"
)

// sectionDelimiterRe splits on newline runs and on runs of two or more
// whitespace characters, so both paragraph-style and column-formatted text
// is segmented. The whitespace class is Unicode-wide: ideographic spaces
// (U+3000) and no-break spaces pad columns as often as ASCII blanks do.
var sectionDelimiterRe = regexp.MustCompile(`\n+|[\s\x0B\x1C-\x1F\x85\p{Z}]{2,}`)

// Section is a contiguous block of document text with its marketing score.
type Section struct {
	Text     string `json:"text"`
	Position int    `json:"position"`
	Score    int    `json:"score"`
}

// SplitSections splits text into sections. Empty sections produced by the
// split are kept so positions match the split output.
func SplitSections(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return []string{}
	}
	return sectionDelimiterRe.Split(text, -1)
}

// ScoreSection scores a section as its length in characters plus the number
// of non-overlapping occurrences of each keyword.
func ScoreSection(section string, keywords []string) int {
	score := utf8.RuneCountInString(section)
	for _, kw := range keywords {
		score += strings.Count(section, kw)
	}
	return score
}

// ScoreSections splits text into sections and returns them ordered by score,
// highest first. Ties keep document order.
// Returns an empty slice for empty text or an empty keyword list.
func ScoreSections(text string, keywords []string) []Section {
	if strings.TrimSpace(text) == "" || len(keywords) == 0 {
		return []Section{}
	}

	parts := SplitSections(text)
	sections := make([]Section, 0, len(parts))
	for i, part := range parts {
		sections = append(sections, Section{
			Text:     part,
			Position: i,
			Score:    ScoreSection(part, keywords),
		})
	}

	slices.SortStableFunc(sections, func(a, b Section) int {
		return b.Score - a.Score
	})

	return sections
}

// RankSections returns the sections of text ordered by score, highest first.
func RankSections(text string, keywords []string) []string {
	sections := ScoreSections(text, keywords)
	ranked := make([]string, len(sections))
	for i, s := range sections {
		ranked[i] = s.Text
	}
	return ranked
}

package salience

import "strings"

// Language identifies the language of a document. The set is closed; every
// code outside of it is treated as LanguageOther.
type Language string

// Supported languages.
const (
	LanguageChinese Language = "zh"
	LanguageEnglish Language = "en"
	LanguageRussian Language = "ru"
	LanguageOther   Language = "other"
)

// Languages returns all supported languages in a fixed order.
func Languages() []Language {
	return []Language{LanguageChinese, LanguageEnglish, LanguageRussian, LanguageOther}
}

// ParseLanguage maps a language code to a Language.
// Unknown and empty codes map to LanguageOther.
func ParseLanguage(code string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case LanguageChinese:
		return LanguageChinese
	case LanguageEnglish:
		return LanguageEnglish
	case LanguageRussian:
		return LanguageRussian
	default:
		return LanguageOther
	}
}

// LanguageDetector identifies the language of a text.
type LanguageDetector interface {
	// DetectLanguage returns the language of text.
	// Implementations return LanguageOther for languages outside the closed set.
	DetectLanguage(text string) (Language, error)
}

// StopWords answers stop-word membership per language.
// Implementations must be safe for concurrent use.
type StopWords interface {
	IsStopword(word string, lang Language) bool
}

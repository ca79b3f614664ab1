// Package whatlang detects the language of text using whatlanggo.
package whatlang

import (
	"strings"

	"github.com/RadhiFadlillah/whatlanggo"
	"github.com/fwojciec/salience"
)

// Ensure Detector implements salience.LanguageDetector at compile time.
var _ salience.LanguageDetector = (*Detector)(nil)

// Detector maps whatlanggo trigram detection onto the supported languages.
// Languages other than Mandarin, English and Russian are reported as
// salience.LanguageOther.
type Detector struct {
	// Whitelist restricts detection to these languages when non-empty.
	Whitelist []whatlanggo.Lang
}

// NewDetector creates a Detector that considers every language whatlanggo
// knows.
func NewDetector() *Detector {
	return &Detector{}
}

// DetectLanguage returns the language of text.
func (d *Detector) DetectLanguage(text string) (salience.Language, error) {
	if strings.TrimSpace(text) == "" {
		return salience.LanguageOther, salience.Errorf(salience.EINVALID, "cannot detect language of empty text")
	}

	var info whatlanggo.Info
	if len(d.Whitelist) > 0 {
		whitelist := make(map[whatlanggo.Lang]bool, len(d.Whitelist))
		for _, l := range d.Whitelist {
			whitelist[l] = true
		}
		info = whatlanggo.DetectWithOptions(text, whatlanggo.Options{Whitelist: whitelist})
	} else {
		info = whatlanggo.Detect(text)
	}

	return fromLang(info.Lang), nil
}

func fromLang(l whatlanggo.Lang) salience.Language {
	switch l {
	case whatlanggo.Cmn:
		return salience.LanguageChinese
	case whatlanggo.Eng:
		return salience.LanguageEnglish
	case whatlanggo.Rus:
		return salience.LanguageRussian
	default:
		return salience.LanguageOther
	}
}

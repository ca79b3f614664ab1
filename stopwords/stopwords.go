// Package stopwords provides per-language stop-word sets.
//
// Lists are plain text files named after the language code (en.txt, ru.txt,
// zh.txt), one word per line, with '#' starting a comment line. The default
// set is built once from the lists embedded in this package and is never
// modified afterwards, so it can be shared by concurrent callers.
package stopwords

import (
	"bufio"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"sync"

	"github.com/fwojciec/salience"
)

//go:embed lists/*.txt
var lists embed.FS

// Ensure Set implements salience.StopWords at compile time.
var _ salience.StopWords = (*Set)(nil)

// Set holds lower-cased stop-words per language.
type Set struct {
	words map[salience.Language]map[string]struct{}
}

// Default returns the set built from the embedded lists.
// The set is built on first use and shared afterwards.
var Default = sync.OnceValue(func() *Set {
	sub, err := fs.Sub(lists, "lists")
	if err != nil {
		panic(fmt.Sprintf("stopwords: embedded lists: %v", err))
	}
	s, err := Load(sub)
	if err != nil {
		panic(fmt.Sprintf("stopwords: embedded lists: %v", err))
	}
	return s
})

// New creates a Set from in-memory word lists.
func New(words map[salience.Language][]string) *Set {
	s := &Set{words: make(map[salience.Language]map[string]struct{}, len(words))}
	for lang, list := range words {
		set := make(map[string]struct{}, len(list))
		for _, w := range list {
			if w = normalize(w); w != "" {
				set[w] = struct{}{}
			}
		}
		s.words[lang] = set
	}
	return s
}

// Load creates a Set from <code>.txt files in fsys.
// Languages without a file get no stop-words.
func Load(fsys fs.FS) (*Set, error) {
	s := &Set{words: make(map[salience.Language]map[string]struct{})}
	for _, lang := range salience.Languages() {
		set, err := loadList(fsys, string(lang)+".txt")
		if errors.Is(err, fs.ErrNotExist) {
			continue
		} else if err != nil {
			return nil, fmt.Errorf("load %s stop-words: %w", lang, err)
		}
		s.words[lang] = set
	}
	return s, nil
}

func loadList(fsys fs.FS, name string) (map[string]struct{}, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	set := make(map[string]struct{})
	scan := bufio.NewScanner(f)
	for scan.Scan() {
		line := strings.TrimSpace(scan.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		set[normalize(line)] = struct{}{}
	}
	if err := scan.Err(); err != nil {
		return nil, err
	}
	return set, nil
}

// IsStopword reports whether word is a stop-word of lang.
// The comparison is case-insensitive.
func (s *Set) IsStopword(word string, lang salience.Language) bool {
	if s == nil {
		return false
	}
	set, ok := s.words[lang]
	if !ok {
		return false
	}
	_, ok = set[normalize(word)]
	return ok
}

// Len returns the number of stop-words of lang.
func (s *Set) Len(lang salience.Language) int {
	if s == nil {
		return 0
	}
	return len(s.words[lang])
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

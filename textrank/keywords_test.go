package textrank_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/salience"
	"github.com/fwojciec/salience/mock"
	"github.com/fwojciec/salience/stopwords"
	"github.com/fwojciec/salience/textrank"
	"github.com/stretchr/testify/assert"
)

func detectorFor(lang salience.Language) *mock.LanguageDetector {
	return &mock.LanguageDetector{
		DetectLanguageFn: func(string) (salience.Language, error) {
			return lang, nil
		},
	}
}

const marketingText = "The cloud is fast. The cloud is cheap. Data is king."

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("returns empty slice for empty text", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(nil, nil, stopwords.Default())

		keywords := ext.Extract("", 10)

		assert.NotNil(t, keywords)
		assert.Empty(t, keywords)
	})

	t.Run("returns empty slice for whitespace-only text", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(nil, nil, stopwords.Default())

		assert.Empty(t, ext.Extract(" \n\t ", 10))
	})

	t.Run("returns empty slice for text without words", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(nil, nil, stopwords.Default())

		keywords := ext.Extract("...", 10)

		assert.NotNil(t, keywords)
		assert.Empty(t, keywords)
	})

	t.Run("emits words of top sentences without stop-words", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(detectorFor(salience.LanguageEnglish), nil, stopwords.Default())

		keywords := ext.Extract(marketingText, 10)

		assert.Equal(t, []string{"cloud", "fast", "cheap", "Data", "king"}, keywords)
	})

	t.Run("limits selected sentences rather than words", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(detectorFor(salience.LanguageEnglish), nil, stopwords.Default())

		assert.Equal(t, []string{"cloud", "fast"}, ext.Extract(marketingText, 1))
		assert.Equal(t, []string{"cloud", "fast", "cheap"}, ext.Extract(marketingText, 2))
	})

	t.Run("never returns duplicates or stop-words", func(t *testing.T) {
		t.Parallel()

		text := "Our brand is the best brand. The best brand wins. " +
			"Customers love the brand and the product. The product is new."
		stop := stopwords.Default()
		ext := textrank.NewExtractor(detectorFor(salience.LanguageEnglish), nil, stop)

		keywords := ext.Extract(text, 10)

		seen := make(map[string]bool)
		for _, kw := range keywords {
			assert.False(t, seen[kw], "duplicate keyword %q", kw)
			assert.False(t, stop.IsStopword(kw, salience.LanguageEnglish), "stop-word %q", kw)
			seen[kw] = true
		}
		assert.NotEmpty(t, keywords)
	})

	t.Run("falls back to other when detection fails", func(t *testing.T) {
		t.Parallel()

		detector := &mock.LanguageDetector{
			DetectLanguageFn: func(string) (salience.Language, error) {
				return "", errors.New("detector unavailable")
			},
		}
		ext := textrank.NewExtractor(detector, nil, stopwords.Default())

		keywords := ext.Extract("the cloud.", 10)

		// No stop-word list exists for other, so nothing is filtered.
		assert.Equal(t, []string{"the", "cloud"}, keywords)
	})

	t.Run("treats unknown language codes as other", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(detectorFor("de"), nil, stopwords.Default())

		assert.Equal(t, salience.LanguageOther, ext.DetectLanguage("der die das"))
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		text := "Cloud platforms scale. Data platforms grow. Cloud data is everywhere. " +
			"Marketing teams love data. Brands win with cloud marketing."
		ext := textrank.NewExtractor(detectorFor(salience.LanguageEnglish), nil, stopwords.Default())

		assert.Equal(t, ext.Extract(text, 3), ext.Extract(text, 3))
	})
}

func TestExtractor_ExtractKeywords(t *testing.T) {
	t.Parallel()

	t.Run("segments Chinese text before ranking", func(t *testing.T) {
		t.Parallel()

		seg := &mock.Segmenter{
			SegmentFn: func(text string) ([]string, error) {
				return []string{"云计算", "的", "未来", "。", "云计算", "很", "重要"}, nil
			},
		}
		ext := textrank.NewExtractor(nil, seg, stopwords.Default())

		keywords := ext.ExtractKeywords("云计算的未来。云计算很重要", salience.LanguageChinese, 10)

		assert.Equal(t, []string{"云计算", "未来", "重要"}, keywords)
	})

	t.Run("falls back to whitespace tokenization when segmentation fails", func(t *testing.T) {
		t.Parallel()

		seg := &mock.Segmenter{
			SegmentFn: func(text string) ([]string, error) {
				return nil, errors.New("no dictionary")
			},
		}
		ext := textrank.NewExtractor(nil, seg, stopwords.Default())

		keywords := ext.ExtractKeywords("云计算 未来. 重要", salience.LanguageChinese, 10)

		assert.Equal(t, []string{"云计算", "未来", "重要"}, keywords)
	})

	t.Run("does not consult the detector", func(t *testing.T) {
		t.Parallel()

		detector := &mock.LanguageDetector{
			DetectLanguageFn: func(string) (salience.Language, error) {
				t.Fatal("detector must not be called")
				return "", nil
			},
		}
		ext := textrank.NewExtractor(detector, nil, stopwords.Default())

		keywords := ext.ExtractKeywords("The cloud.", salience.LanguageEnglish, 10)

		assert.Equal(t, []string{"cloud"}, keywords)
	})

	t.Run("uses default limit when max is not positive", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(nil, nil, nil)

		keywords := ext.ExtractKeywords("a. b. c. d. e. f. g. h. i. j. k. l.", salience.LanguageOther, 0)

		assert.Len(t, keywords, salience.DefaultMaxKeywords)
	})

	t.Run("trims punctuation from words", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(nil, nil, nil)

		keywords := ext.ExtractKeywords(`"Cloud", (scale)!`, salience.LanguageOther, 10)

		assert.Equal(t, []string{"Cloud", "scale"}, keywords)
	})

	t.Run("drops invalid UTF-8", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(nil, nil, nil)

		keywords := ext.ExtractKeywords("Cloud \xff \xfe scale. \xc3", salience.LanguageOther, 10)

		assert.Equal(t, []string{"Cloud", "scale"}, keywords)
	})

	t.Run("drops invalid UTF-8 in Chinese text", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(nil, nil, nil)

		keywords := ext.ExtractKeywords("\xff\xfe。\xc3", salience.LanguageChinese, 10)

		assert.Empty(t, keywords)
	})

	t.Run("ranks words in word mode", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(nil, nil, stopwords.Default())
		ext.Mode = textrank.ModeWords

		keywords := ext.ExtractKeywords("cloud data cloud growth. data cloud", salience.LanguageEnglish, 10)

		assert.Equal(t, []string{"cloud", "data", "growth"}, keywords)
	})

	t.Run("limits words in word mode", func(t *testing.T) {
		t.Parallel()

		ext := textrank.NewExtractor(nil, nil, stopwords.Default())
		ext.Mode = textrank.ModeWords

		keywords := ext.ExtractKeywords("the cloud and the data. cloud data growth", salience.LanguageEnglish, 2)

		assert.Len(t, keywords, 2)
		assert.NotContains(t, keywords, "the")
		assert.NotContains(t, keywords, "and")
	})
}

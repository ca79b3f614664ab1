package stopwords_test

import (
	"sync"
	"testing"
	"testing/fstest"

	"github.com/fwojciec/salience"
	"github.com/fwojciec/salience/stopwords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	t.Run("contains English stop-words", func(t *testing.T) {
		t.Parallel()

		s := stopwords.Default()

		assert.True(t, s.IsStopword("the", salience.LanguageEnglish))
		assert.True(t, s.IsStopword("is", salience.LanguageEnglish))
		assert.False(t, s.IsStopword("cloud", salience.LanguageEnglish))
	})

	t.Run("is case-insensitive", func(t *testing.T) {
		t.Parallel()

		s := stopwords.Default()

		assert.True(t, s.IsStopword("The", salience.LanguageEnglish))
		assert.True(t, s.IsStopword("И", salience.LanguageRussian))
	})

	t.Run("contains Russian and Chinese stop-words", func(t *testing.T) {
		t.Parallel()

		s := stopwords.Default()

		assert.True(t, s.IsStopword("это", salience.LanguageRussian))
		assert.True(t, s.IsStopword("的", salience.LanguageChinese))
	})

	t.Run("contains multi-character Chinese words", func(t *testing.T) {
		t.Parallel()

		s := stopwords.Default()

		for _, w := range []string{"我们", "这个", "因为", "因此", "并且"} {
			assert.True(t, s.IsStopword(w, salience.LanguageChinese), w)
		}
		assert.False(t, s.IsStopword("人工智能", salience.LanguageChinese))
	})

	t.Run("does not filter languages without a list", func(t *testing.T) {
		t.Parallel()

		s := stopwords.Default()

		assert.False(t, s.IsStopword("the", salience.LanguageOther))
		assert.Zero(t, s.Len(salience.LanguageOther))
	})

	t.Run("lists are per language", func(t *testing.T) {
		t.Parallel()

		s := stopwords.Default()

		assert.False(t, s.IsStopword("the", salience.LanguageRussian))
	})

	t.Run("returns the same set to concurrent callers", func(t *testing.T) {
		t.Parallel()

		var wg sync.WaitGroup
		sets := make([]*stopwords.Set, 8)
		for i := range sets {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sets[i] = stopwords.Default()
				_ = sets[i].IsStopword("and", salience.LanguageEnglish)
			}()
		}
		wg.Wait()

		for _, s := range sets {
			assert.Same(t, sets[0], s)
		}
	})
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads lists named after language codes", func(t *testing.T) {
		t.Parallel()

		fsys := fstest.MapFS{
			"en.txt": {Data: []byte("# comment\nFoo\n\n bar \n")},
		}

		s, err := stopwords.Load(fsys)

		require.NoError(t, err)
		assert.True(t, s.IsStopword("foo", salience.LanguageEnglish))
		assert.True(t, s.IsStopword("bar", salience.LanguageEnglish))
		assert.False(t, s.IsStopword("# comment", salience.LanguageEnglish))
		assert.Equal(t, 2, s.Len(salience.LanguageEnglish))
	})

	t.Run("missing lists yield empty sets", func(t *testing.T) {
		t.Parallel()

		s, err := stopwords.Load(fstest.MapFS{})

		require.NoError(t, err)
		assert.False(t, s.IsStopword("the", salience.LanguageEnglish))
		assert.Zero(t, s.Len(salience.LanguageRussian))
	})
}

func TestNew(t *testing.T) {
	t.Parallel()

	s := stopwords.New(map[salience.Language][]string{
		salience.LanguageEnglish: {"Alpha", "", "beta"},
	})

	assert.True(t, s.IsStopword("ALPHA", salience.LanguageEnglish))
	assert.True(t, s.IsStopword("beta", salience.LanguageEnglish))
	assert.Equal(t, 2, s.Len(salience.LanguageEnglish))
}

func TestSet_Nil(t *testing.T) {
	t.Parallel()

	var s *stopwords.Set

	assert.False(t, s.IsStopword("the", salience.LanguageEnglish))
	assert.Zero(t, s.Len(salience.LanguageEnglish))
}

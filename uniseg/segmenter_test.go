package uniseg_test

import (
	"testing"

	"github.com/fwojciec/salience/uniseg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSegmenter_Segment(t *testing.T) {
	t.Parallel()

	t.Run("splits Han text per character and keeps full stops", func(t *testing.T) {
		t.Parallel()

		tokens, err := uniseg.NewSegmenter().Segment("云计算。很好")

		require.NoError(t, err)
		assert.Equal(t, []string{"云", "计", "算", "。", "很", "好"}, tokens)
	})

	t.Run("splits space-delimited words and drops whitespace", func(t *testing.T) {
		t.Parallel()

		tokens, err := uniseg.NewSegmenter().Segment("Big  data\tdrives growth")

		require.NoError(t, err)
		assert.Equal(t, []string{"Big", "data", "drives", "growth"}, tokens)
	})

	t.Run("drops punctuation when configured", func(t *testing.T) {
		t.Parallel()

		s := &uniseg.Segmenter{}
		tokens, err := s.Segment("Cloud, data. 云。")

		require.NoError(t, err)
		assert.Equal(t, []string{"Cloud", "data", "云"}, tokens)
	})

	t.Run("returns empty slice for empty text", func(t *testing.T) {
		t.Parallel()

		tokens, err := uniseg.NewSegmenter().Segment("")

		require.NoError(t, err)
		assert.Empty(t, tokens)
	})
}

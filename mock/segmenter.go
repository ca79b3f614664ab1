package mock

import "github.com/fwojciec/salience"

var _ salience.Segmenter = (*Segmenter)(nil)

// Segmenter is a mock implementation of salience.Segmenter.
type Segmenter struct {
	SegmentFn func(text string) ([]string, error)
}

func (s *Segmenter) Segment(text string) ([]string, error) {
	return s.SegmentFn(text)
}

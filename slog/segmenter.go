package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/salience"
)

// Ensure LoggingSegmenter implements salience.Segmenter.
var _ salience.Segmenter = (*LoggingSegmenter)(nil)

// LoggingSegmenter wraps a Segmenter with logging.
type LoggingSegmenter struct {
	next   salience.Segmenter
	logger *slog.Logger
}

// NewLoggingSegmenter creates a new LoggingSegmenter.
func NewLoggingSegmenter(next salience.Segmenter, logger *slog.Logger) *LoggingSegmenter {
	return &LoggingSegmenter{next: next, logger: logger}
}

// Segment delegates to the wrapped segmenter and logs the token count.
func (s *LoggingSegmenter) Segment(text string) (tokens []string, err error) {
	defer func(begin time.Time) {
		s.logger.Log(context.Background(), levelFor(err), "segment",
			"tokens", len(tokens),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Segment(text)
}

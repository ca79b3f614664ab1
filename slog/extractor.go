package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/salience"
)

// Ensure LoggingTextExtractor implements salience.TextExtractor.
var _ salience.TextExtractor = (*LoggingTextExtractor)(nil)

// LoggingTextExtractor wraps a TextExtractor with logging.
type LoggingTextExtractor struct {
	next   salience.TextExtractor
	format salience.Format
	logger *slog.Logger
}

// NewLoggingTextExtractor creates a new LoggingTextExtractor for extractors
// of the given format.
func NewLoggingTextExtractor(next salience.TextExtractor, format salience.Format, logger *slog.Logger) *LoggingTextExtractor {
	return &LoggingTextExtractor{next: next, format: format, logger: logger}
}

// ExtractText delegates to the wrapped extractor and logs the operation.
func (e *LoggingTextExtractor) ExtractText(ctx context.Context, source string) (text string, err error) {
	defer func(begin time.Time) {
		e.logger.Info("extract text",
			"source", source,
			"format", e.format,
			"chars", len([]rune(text)),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return e.next.ExtractText(ctx, source)
}

package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/salience"
)

// Ensure LoggingEntityRecognizer implements salience.EntityRecognizer.
var _ salience.EntityRecognizer = (*LoggingEntityRecognizer)(nil)

// LoggingEntityRecognizer wraps an EntityRecognizer with logging.
type LoggingEntityRecognizer struct {
	next   salience.EntityRecognizer
	logger *slog.Logger
}

// NewLoggingEntityRecognizer creates a new LoggingEntityRecognizer.
func NewLoggingEntityRecognizer(next salience.EntityRecognizer, logger *slog.Logger) *LoggingEntityRecognizer {
	return &LoggingEntityRecognizer{next: next, logger: logger}
}

// RecognizeEntities delegates to the wrapped recognizer and logs the
// operation.
func (r *LoggingEntityRecognizer) RecognizeEntities(ctx context.Context, text string, lang salience.Language) (entities []salience.Entity, err error) {
	defer func(begin time.Time) {
		r.logger.Info("recognize entities",
			"lang", lang,
			"count", len(entities),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.RecognizeEntities(ctx, text, lang)
}

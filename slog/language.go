package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/salience"
)

// Ensure LoggingLanguageDetector implements salience.LanguageDetector.
var _ salience.LanguageDetector = (*LoggingLanguageDetector)(nil)

// LoggingLanguageDetector wraps a LanguageDetector with logging. Successful
// detections are logged at debug level, failures as warnings.
type LoggingLanguageDetector struct {
	next   salience.LanguageDetector
	logger *slog.Logger
}

// NewLoggingLanguageDetector creates a new LoggingLanguageDetector.
func NewLoggingLanguageDetector(next salience.LanguageDetector, logger *slog.Logger) *LoggingLanguageDetector {
	return &LoggingLanguageDetector{next: next, logger: logger}
}

// DetectLanguage delegates to the wrapped detector and logs the result.
func (d *LoggingLanguageDetector) DetectLanguage(text string) (lang salience.Language, err error) {
	defer func(begin time.Time) {
		d.logger.Log(context.Background(), levelFor(err), "detect language",
			"lang", lang,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return d.next.DetectLanguage(text)
}

// levelFor returns the level for frequent operations: debug unless err is
// set.
func levelFor(err error) slog.Level {
	if err != nil {
		return slog.LevelWarn
	}
	return slog.LevelDebug
}

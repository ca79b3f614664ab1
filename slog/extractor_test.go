package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/fwojciec/salience"
	"github.com/fwojciec/salience/mock"
	salienceslog "github.com/fwojciec/salience/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingTextExtractor_ExtractText(t *testing.T) {
	t.Parallel()

	t.Run("logs source, format and character count", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextExtractor{
			ExtractTextFn: func(ctx context.Context, source string) (string, error) {
				return "云计算 cloud", nil
			},
		}

		ext := salienceslog.NewLoggingTextExtractor(inner, salience.FormatPDF, logger)
		text, err := ext.ExtractText(context.Background(), "brochure.pdf")

		require.NoError(t, err)
		assert.Equal(t, "云计算 cloud", text)
		output := buf.String()
		assert.Contains(t, output, "extract text")
		assert.Contains(t, output, "source=brochure.pdf")
		assert.Contains(t, output, "format=pdf")
		assert.Contains(t, output, "chars=9")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs error on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.TextExtractor{
			ExtractTextFn: func(ctx context.Context, source string) (string, error) {
				return "", salience.Errorf(salience.ENOTFOUND, "file not found: %s", source)
			},
		}

		ext := salienceslog.NewLoggingTextExtractor(inner, salience.FormatDOCX, logger)
		_, err := ext.ExtractText(context.Background(), "missing.docx")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "err=\"file not found: missing.docx\"")
	})
}

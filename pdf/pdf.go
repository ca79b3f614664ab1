// Package pdf extracts text from PDF documents using ledongthuc/pdf.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/fwojciec/salience"
	"github.com/ledongthuc/pdf"
)

// Ensure Extractor implements salience.TextExtractor at compile time.
var _ salience.TextExtractor = (*Extractor)(nil)

// Extractor extracts the plain text of PDF files page by page. Scanned
// documents without a text layer produce empty text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// ExtractText returns the text of the PDF at path, one page after another.
func (e *Extractor) ExtractText(ctx context.Context, path string) (text string, err error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// The parser panics on some malformed files.
	defer func() {
		if r := recover(); r != nil {
			text, err = "", salience.Errorf(salience.EINVALID, "malformed PDF: %s: %v", path, r)
		}
	}()

	f, r, err := pdf.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", salience.Errorf(salience.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return "", salience.Errorf(salience.EINVALID, "open PDF: %s: %v", path, err)
	}
	defer f.Close()

	pages := make([]string, 0, r.NumPage())
	for i := 1; i <= r.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		p := r.Page(i)
		if p.V.IsNull() {
			continue
		}
		content, err := p.GetPlainText(nil)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		pages = append(pages, strings.TrimSpace(content))
	}

	return strings.Join(pages, "\n"), nil
}

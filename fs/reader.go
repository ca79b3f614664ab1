// Package fs reads documents from and writes reports to the local file
// system.
package fs

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"unicode/utf8"

	"github.com/fwojciec/salience"
)

// Ensure Reader implements salience.TextExtractor at compile time.
var _ salience.TextExtractor = (*Reader)(nil)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Reader reads UTF-8 text files. It serves plain-text documents and the
// raw markup of local HTML files.
type Reader struct{}

// NewReader creates a new Reader.
func NewReader() *Reader {
	return &Reader{}
}

// ExtractText returns the content of the file at path.
func (r *Reader) ExtractText(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", salience.Errorf(salience.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return "", err
	}

	data = bytes.TrimPrefix(data, utf8BOM)
	if !utf8.Valid(data) {
		return "", salience.Errorf(salience.EINVALID, "file is not valid UTF-8: %s", path)
	}

	return string(data), nil
}

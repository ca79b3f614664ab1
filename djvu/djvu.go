// Package djvu extracts the hidden text layer of DjVu documents by running
// the djvutxt tool from DjVuLibre.
package djvu

import (
	"bytes"
	"context"
	"errors"
	"io/fs"
	"os"
	"os/exec"
	"strings"

	"github.com/fwojciec/salience"
)

// DefaultBinary is the djvutxt executable looked up on PATH.
const DefaultBinary = "djvutxt"

// Ensure Extractor implements salience.TextExtractor at compile time.
var _ salience.TextExtractor = (*Extractor)(nil)

// Extractor extracts text from DjVu files.
type Extractor struct {
	// Binary is the djvutxt executable. Defaults to DefaultBinary.
	Binary string
}

// NewExtractor creates an Extractor that runs DefaultBinary.
func NewExtractor() *Extractor {
	return &Extractor{Binary: DefaultBinary}
}

// ExtractText returns the text layer of the DjVu file at path.
// A missing djvutxt executable is reported as EUNAVAILABLE.
func (e *Extractor) ExtractText(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return "", salience.Errorf(salience.ENOTFOUND, "file not found: %s", path)
	} else if err != nil {
		return "", err
	}

	binary := e.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, path)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return "", salience.Errorf(salience.EUNAVAILABLE, "%s not found; install DjVuLibre to read DjVu files", binary)
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return "", salience.Errorf(salience.EINVALID, "%s failed for %s: %s", binary, path, strings.TrimSpace(stderr.String()))
		}
		return "", err
	}

	return stdout.String(), nil
}

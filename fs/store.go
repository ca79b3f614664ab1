package fs

import (
	"context"
	"encoding/json"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/salience"
)

// ReportPath converts a report source to a relative file path.
// Example: https://example.com/products/ → example.com/products/index.json
// Example: docs/brochure.pdf → docs/brochure.pdf.json
func ReportPath(source string) (string, error) {
	if salience.IsURL(source) {
		u, err := url.Parse(source)
		if err != nil {
			return "", salience.Errorf(salience.EINVALID, "invalid URL: %v", err)
		}
		path := strings.TrimPrefix(u.Path, "/")
		if path == "" || strings.HasSuffix(path, "/") {
			path += "index"
		}
		return filepath.Join(u.Host, filepath.FromSlash(path)) + ".json", nil
	}

	path := filepath.ToSlash(filepath.Clean(source))
	path = strings.TrimPrefix(path, filepath.VolumeName(source))
	for {
		trimmed := strings.TrimPrefix(strings.TrimPrefix(path, "/"), "../")
		if trimmed == path {
			break
		}
		path = trimmed
	}
	if path == "" || path == "." || path == ".." {
		return "", salience.Errorf(salience.EINVALID, "invalid report source: %q", source)
	}
	return filepath.FromSlash(path) + ".json", nil
}

// Ensure ReportStore implements salience.ReportStore at compile time.
var _ salience.ReportStore = (*ReportStore)(nil)

// ReportStore writes reports as JSON files with atomic update semantics.
// Reports are saved to a temporary directory, then moved atomically on Commit.
type ReportStore struct {
	baseDir string
	name    string
}

// NewReportStore creates a new ReportStore.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved to baseDir/name on Commit.
func NewReportStore(baseDir, name string) *ReportStore {
	return &ReportStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *ReportStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *ReportStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes r below the temporary directory.
func (s *ReportStore) Save(ctx context.Context, r *salience.Report) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := ReportPath(r.Source)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(s.tempDir(), relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(fullPath, append(data, '\n'), 0644)
}

// Commit replaces the output directory with the saved reports.
func (s *ReportStore) Commit() error {
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

// Abort discards the saved reports.
func (s *ReportStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}

package salience

import (
	"path/filepath"
	"strings"
)

// Format identifies a document format.
type Format string

// Supported document formats.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
	FormatHTML Format = "html"
	FormatDjVu Format = "djvu"
	FormatText Format = "txt"
)

// Formats returns all supported formats in a fixed order.
func Formats() []Format {
	return []Format{FormatPDF, FormatDOCX, FormatHTML, FormatDjVu, FormatText}
}

// IsURL reports whether source is an http(s) URL.
func IsURL(source string) bool {
	s := strings.ToLower(source)
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// DetectFormat returns the format of source based on its file extension.
// HTTP(S) URLs are treated as HTML.
func DetectFormat(source string) (Format, error) {
	if IsURL(source) {
		return FormatHTML, nil
	}

	switch strings.ToLower(filepath.Ext(source)) {
	case ".pdf":
		return FormatPDF, nil
	// Legacy .doc files go to the DOCX extractor, which rejects
	// non-zip binaries as invalid.
	case ".docx", ".doc":
		return FormatDOCX, nil
	case ".html", ".htm":
		return FormatHTML, nil
	case ".djvu", ".djv":
		return FormatDjVu, nil
	case ".txt", ".text", ".md":
		return FormatText, nil
	default:
		return "", Errorf(EINVALID, "unsupported format: %q", filepath.Ext(source))
	}
}

package salience

import "context"

// TextExtractor recovers plain UTF-8 text from a document source.
// There is one implementation per document format.
type TextExtractor interface {
	// ExtractText returns the text of the document at source.
	// A failed extraction is reported as an error, never as a panic.
	ExtractText(ctx context.Context, source string) (string, error)
}

// ExtractResult is the main content of a marketing page.
type ExtractResult struct {
	Title string

	// ContentHTML keeps the markup of the main content only. Menus,
	// footers and cookie banners are gone.
	ContentHTML string
}

// HTMLExtractor separates the main content of a page from its chrome.
type HTMLExtractor interface {
	Extract(html string) (*ExtractResult, error)
}

package salience

import "context"

// Report is the analysis of a single document.
type Report struct {
	Source   string    `json:"source"`
	Format   Format    `json:"format"`
	Language Language  `json:"language"`
	Keywords []string  `json:"keywords"`
	Brands   []string  `json:"brands"`
	Sections []Section `json:"sections"`

	// Hash identifies the analyzed text.
	Hash string `json:"hash"`

	// Error is set when the document could not be analyzed.
	Error string `json:"error,omitempty"`
}

// Failed reports whether the document could not be analyzed.
func (r *Report) Failed() bool {
	return r.Error != ""
}

// ReportStore persists reports. Saved reports become visible together on
// Commit; Abort discards them.
type ReportStore interface {
	Save(ctx context.Context, r *Report) error
	Commit() error
	Abort() error
}

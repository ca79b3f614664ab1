package salience

// Converter renders HTML as text.
type Converter interface {
	// Convert transforms HTML content into text.
	// Block-level elements end up on separate lines so that the result can
	// be split into sections.
	Convert(html string) (string, error)
}

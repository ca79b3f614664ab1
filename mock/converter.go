package mock

import "github.com/fwojciec/salience"

var _ salience.Converter = (*Converter)(nil)

// Converter is a mock implementation of salience.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}

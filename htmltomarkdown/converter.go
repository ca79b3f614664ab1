// Package htmltomarkdown renders HTML as Markdown using html-to-markdown.
// Markdown keeps headings and list markers, so ranked sections still show
// where on the page they came from.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/salience"
)

// Ensure Converter implements salience.Converter at compile time.
var _ salience.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown.
type Converter struct {
	conv *converter.Converter
}

// Option configures a Converter.
type Option func(*options)

type options struct {
	tables bool
}

// WithTables controls whether HTML tables are rendered as Markdown tables.
// Pricing grids are common on marketing pages; without the table plugin
// their cells end up as plain lines. Defaults to true.
func WithTables(enabled bool) Option {
	return func(o *options) {
		o.tables = enabled
	}
}

// NewConverter creates a new Converter.
func NewConverter(opts ...Option) *Converter {
	o := options{tables: true}
	for _, opt := range opts {
		opt(&o)
	}

	plugins := []converter.Plugin{
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
	}
	if o.tables {
		plugins = append(plugins, table.NewTablePlugin())
	}

	return &Converter{conv: converter.NewConverter(converter.WithPlugins(plugins...))}
}

// Convert transforms HTML content into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", salience.Errorf(salience.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", salience.Errorf(salience.EINVALID, "convert HTML to markdown: %v", err)
	}

	return strings.TrimSpace(result), nil
}

package main

import (
	"io"

	"github.com/fwojciec/salience"
)

// readText returns the text of source. "-" reads plain text from stdin.
func readText(deps *Dependencies, source string) (string, error) {
	if source == "-" {
		data, err := io.ReadAll(deps.Stdin)
		if err != nil {
			return "", err
		}
		return salience.NormalizeText(string(data)), nil
	}

	format, err := salience.DetectFormat(source)
	if err != nil {
		return "", err
	}
	extractor, ok := deps.Analyzer.Extractors[format]
	if !ok || extractor == nil {
		return "", salience.Errorf(salience.ENOTIMPLEMENTED, "no extractor for %s documents", format)
	}

	text, err := extractor.ExtractText(deps.Ctx, source)
	if err != nil {
		return "", err
	}
	return salience.NormalizeText(text), nil
}

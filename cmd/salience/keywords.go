package main

import (
	"fmt"

	"github.com/fwojciec/salience"
)

// Run executes the keywords command.
func (c *KeywordsCmd) Run(deps *Dependencies) error {
	text, err := readText(deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", salience.ErrorMessage(err))
		return err
	}

	report := deps.Analyzer.AnalyzeText(deps.Ctx, c.Source, text)
	for _, kw := range report.Keywords {
		fmt.Fprintln(deps.Stdout, kw)
	}
	return nil
}

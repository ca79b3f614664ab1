package main

import (
	"fmt"

	"github.com/fwojciec/salience"
)

// Run executes the sections command.
func (c *SectionsCmd) Run(deps *Dependencies) error {
	text, err := readText(deps, c.Source)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", salience.ErrorMessage(err))
		return err
	}

	for _, s := range salience.ScoreSections(text, c.Keywords) {
		fmt.Fprintf(deps.Stdout, "%d\t%s\n", s.Score, s.Text)
	}
	return nil
}

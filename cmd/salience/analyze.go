package main

import (
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/fwojciec/salience"
	"github.com/fwojciec/salience/analyze"
	salfs "github.com/fwojciec/salience/fs"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	if c.Concurrency > 0 {
		deps.Analyzer.Concurrency = c.Concurrency
	}
	if c.Out != "" {
		dir := filepath.Clean(c.Out)
		deps.Analyzer.Store = salfs.NewReportStore(filepath.Dir(dir), filepath.Base(dir))
	}

	progress := func(event analyze.ProgressEvent) {
		if event.Type == analyze.ProgressFailed {
			fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.Source, event.Error)
		}
	}

	result, err := deps.Analyzer.AnalyzeAll(deps.Ctx, c.Sources, progress)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error analyzing: %v\n", err)
		return err
	}

	if c.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.Reports); err != nil {
			return err
		}
	} else {
		fmt.Fprint(deps.Stdout, salience.FormatReports(result.Reports, c.Top))
	}

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d documents failed", result.Failed, len(c.Sources))
	}
	return nil
}

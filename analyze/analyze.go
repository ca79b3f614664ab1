// Package analyze provides document analysis orchestration.
// It coordinates text extraction, language detection, keyword extraction,
// entity recognition and section ranking for batches of documents.
package analyze

import (
	"context"
	"sync"

	"github.com/fwojciec/salience"
	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency is the number of documents analyzed in parallel.
const DefaultConcurrency = 4

// Analyzer turns documents into salience reports.
type Analyzer struct {
	// Extractors holds one text extractor per supported format.
	Extractors map[salience.Format]salience.TextExtractor

	Detector salience.LanguageDetector
	Keywords salience.KeywordExtractor

	// Recognizer finds brand names. Reports have no brands when nil.
	Recognizer salience.EntityRecognizer

	// Store receives every report of AnalyzeAll when set.
	Store salience.ReportStore

	// Language, when set, skips detection.
	Language salience.Language

	MaxKeywords int
	Concurrency int
}

// Result holds the outcome of a batch analysis.
type Result struct {
	// Reports are in input order. Failed documents have Error set.
	Reports  []*salience.Report
	Analyzed int
	Failed   int
}

// ProgressEvent reports progress during a batch analysis.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Source    string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting analysis progress.
type ProgressFunc func(event ProgressEvent)

// AnalyzeText analyzes already extracted text. It never fails: capabilities
// that are missing or fail leave their part of the report empty.
func (a *Analyzer) AnalyzeText(ctx context.Context, source, text string) *salience.Report {
	text = salience.NormalizeText(text)
	lang := a.detectLanguage(text)

	keywords := []string{}
	if a.Keywords != nil && text != "" {
		keywords = a.Keywords.ExtractKeywords(text, lang, a.maxKeywords())
	}

	return &salience.Report{
		Source:   source,
		Language: lang,
		Keywords: keywords,
		Brands:   a.brands(ctx, text, lang),
		Sections: salience.ScoreSections(text, keywords),
		Hash:     ComputeHash(text),
	}
}

// Analyze extracts the text of source with the extractor for its format and
// analyzes it. Extraction failures are returned as errors.
func (a *Analyzer) Analyze(ctx context.Context, source string) (*salience.Report, error) {
	format, err := salience.DetectFormat(source)
	if err != nil {
		return nil, err
	}

	extractor, ok := a.Extractors[format]
	if !ok || extractor == nil {
		return nil, salience.Errorf(salience.ENOTIMPLEMENTED, "no extractor for %s documents", format)
	}

	text, err := extractor.ExtractText(ctx, source)
	if err != nil {
		return nil, err
	}

	report := a.AnalyzeText(ctx, source, text)
	report.Format = format
	return report, nil
}

// AnalyzeAll analyzes sources concurrently. A failed source yields a report
// with Error set and does not stop the others. The progress callback, if
// provided, receives events as analysis proceeds.
func (a *Analyzer) AnalyzeAll(ctx context.Context, sources []string, progress ProgressFunc) (*Result, error) {
	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	total := len(sources)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	reports := make([]*salience.Report, total)

	// mu serializes progress callbacks and counters.
	var mu sync.Mutex
	var completed, failed int

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, source := range sources {
		g.Go(func() error {
			report, err := a.Analyze(gctx, source)
			if err != nil {
				if ctxErr := gctx.Err(); ctxErr != nil {
					return ctxErr
				}
				format, _ := salience.DetectFormat(source)
				report = &salience.Report{Source: source, Format: format, Error: err.Error()}
			}
			reports[i] = report

			mu.Lock()
			defer mu.Unlock()
			completed++
			event := ProgressEvent{Type: ProgressCompleted, Completed: completed, Total: total, Source: source}
			if err != nil {
				failed++
				event.Type = ProgressFailed
				event.Error = err
			}
			if progress != nil {
				progress(event)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		a.abort()
		return nil, err
	}

	if err := a.save(ctx, reports); err != nil {
		return nil, err
	}

	result := &Result{
		Reports:  reports,
		Analyzed: total - failed,
		Failed:   failed,
	}
	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}
	return result, nil
}

func (a *Analyzer) detectLanguage(text string) salience.Language {
	if a.Language != "" {
		return a.Language
	}
	if a.Detector == nil || text == "" {
		return salience.LanguageOther
	}

	lang, err := a.Detector.DetectLanguage(text)
	if err != nil {
		return salience.LanguageOther
	}
	return salience.ParseLanguage(string(lang))
}

func (a *Analyzer) brands(ctx context.Context, text string, lang salience.Language) []string {
	if a.Recognizer == nil || text == "" {
		return []string{}
	}

	entities, err := a.Recognizer.RecognizeEntities(ctx, text, lang)
	if err != nil {
		return []string{}
	}
	return salience.FilterEntities(entities, salience.EntityOrganization, salience.EntityProduct)
}

func (a *Analyzer) maxKeywords() int {
	if a.MaxKeywords <= 0 {
		return salience.DefaultMaxKeywords
	}
	return a.MaxKeywords
}

func (a *Analyzer) save(ctx context.Context, reports []*salience.Report) error {
	if a.Store == nil {
		return nil
	}

	for _, r := range reports {
		if err := a.Store.Save(ctx, r); err != nil {
			a.abort()
			return err
		}
	}
	return a.Store.Commit()
}

func (a *Analyzer) abort() {
	if a.Store != nil {
		_ = a.Store.Abort()
	}
}

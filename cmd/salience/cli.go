package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/salience"
	"github.com/fwojciec/salience/analyze"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdin    io.Reader
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	Analyzer *analyze.Analyzer
}

// HTML handling modes.
const (
	htmlModeText        = "text"
	htmlModeMarkdown    = "markdown"
	htmlModeTrafilatura = "trafilatura"
	htmlModeReadability = "readability"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Lang         string             `default:"auto" enum:"auto,zh,en,ru,other" env:"SALIENCE_LANG" help:"Document language (${enum})"`
	MaxKeywords  int                `default:"10" help:"Number of top-ranked sentences used for keywords"`
	HTMLMode     string             `name:"html-mode" default:"text" enum:"text,markdown,trafilatura,readability" help:"How HTML is turned into text (${enum})"`
	Stopwords    string             `type:"path" env:"SALIENCE_STOPWORDS" placeholder:"DIR" help:"Directory with <lang>.txt stop-word lists"`
	Timeout      time.Duration      `default:"30s" help:"Fetch timeout per URL"`
	Rate         float64            `default:"1" help:"Requests per second per domain, 0 disables limiting"`
	Burst        int                `default:"1" help:"Requests let through back to back per domain"`
	HostRate     map[string]float64 `name:"host-rate" placeholder:"HOST=RPS" help:"Per-host request rate overriding --rate (repeatable)"`
	LogLevel     string             `default:"warn" enum:"debug,info,warn,error" env:"SALIENCE_LOG_LEVEL" help:"Log level (${enum})"`
	GeminiAPIKey string             `name:"gemini-api-key" env:"GEMINI_API_KEY" help:"Gemini API key, enables brand recognition"`

	Analyze  AnalyzeCmd  `cmd:"" help:"Analyze documents and report keywords, brands and top sections"`
	Keywords KeywordsCmd `cmd:"" help:"Print the keywords of a document"`
	Sections SectionsCmd `cmd:"" help:"Rank the sections of a document by keywords"`
}

// language returns the forced document language, or "" to detect it.
func (c *CLI) language() salience.Language {
	if c.Lang == "" || c.Lang == "auto" {
		return ""
	}
	return salience.ParseLanguage(c.Lang)
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	Sources     []string `arg:"" help:"Files or URLs to analyze"`
	Top         int      `short:"n" default:"5" help:"Number of top sections to show"`
	JSON        bool     `name:"json" help:"Print reports as JSON"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent document limit"`
	Out         string   `type:"path" placeholder:"DIR" help:"Also write one JSON report per document under DIR"`
}

// KeywordsCmd is the "keywords" subcommand.
type KeywordsCmd struct {
	Source string `arg:"" help:"File or URL, - reads plain text from stdin"`
}

// SectionsCmd is the "sections" subcommand.
type SectionsCmd struct {
	Source   string   `arg:"" help:"File or URL, - reads plain text from stdin"`
	Keywords []string `name:"keyword" short:"k" required:"" help:"Keyword to score sections with (repeatable)"`
}

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/salience"
	"github.com/fwojciec/salience/analyze"
	"github.com/fwojciec/salience/djvu"
	"github.com/fwojciec/salience/etree"
	salfs "github.com/fwojciec/salience/fs"
	"github.com/fwojciec/salience/gemini"
	"github.com/fwojciec/salience/goquery"
	"github.com/fwojciec/salience/gse"
	"github.com/fwojciec/salience/htmltomarkdown"
	salhttp "github.com/fwojciec/salience/http"
	"github.com/fwojciec/salience/pdf"
	"github.com/fwojciec/salience/readability"
	salslog "github.com/fwojciec/salience/slog"
	"github.com/fwojciec/salience/stopwords"
	"github.com/fwojciec/salience/textrank"
	"github.com/fwojciec/salience/trafilatura"
	"github.com/fwojciec/salience/uniseg"
	"github.com/fwojciec/salience/whatlang"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"google.golang.org/genai"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// EnvFile is loaded into the environment before parsing flags.
	// Empty disables loading.
	EnvFile string

	// Stdin is read by commands given "-" as their source.
	Stdin io.Reader

	// Analyzer is the wired analyzer, set by Run for end-to-end testing.
	Analyzer *analyze.Analyzer
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		EnvFile: ".env",
		Stdin:   os.Stdin,
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if err := m.loadEnv(); err != nil {
		return err
	}

	deps := &Dependencies{
		Ctx:    ctx,
		Stdin:  m.Stdin,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("salience"),
		kong.Description("Find the keywords, brands and key sections of documents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'salience --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	logger, err := newLogger(stderr, cli.LogLevel)
	if err != nil {
		return err
	}
	deps.Logger = logger

	stopWords, err := loadStopWords(cli.Stopwords)
	if err != nil {
		fmt.Fprintln(stderr, "Hint: the stop-word directory holds en.txt, ru.txt and zh.txt")
		return err
	}

	detector := salslog.NewLoggingLanguageDetector(whatlang.NewDetector(), logger)
	// uniseg takes over when the gse dictionary cannot be loaded.
	zh := gse.NewSegmenter()
	zh.Fallback = uniseg.NewSegmenter()
	segmenter := salslog.NewLoggingSegmenter(zh, logger)

	fetcher := salslog.NewLoggingFetcher(salhttp.NewFetcher(salhttp.WithTimeout(cli.Timeout)), logger)
	defer fetcher.Close()

	deps.Analyzer = &analyze.Analyzer{
		Extractors:  newExtractors(cli, fetcher, logger),
		Detector:    detector,
		Keywords:    textrank.NewExtractor(nil, segmenter, stopWords),
		Language:    cli.language(),
		MaxKeywords: cli.MaxKeywords,
	}

	// Brand recognition needs Gemini; without a key reports carry no brands.
	if cmd == "analyze" && cli.GeminiAPIKey != "" {
		recognizer, err := newRecognizer(ctx, cli.GeminiAPIKey, logger)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}
		deps.Analyzer.Recognizer = salslog.NewLoggingEntityRecognizer(recognizer, logger)
	}

	m.Analyzer = deps.Analyzer

	return kongCtx.Run(deps)
}

func (m *Main) loadEnv() error {
	if m.EnvFile == "" {
		return nil
	}
	if err := godotenv.Load(m.EnvFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load %s: %w", m.EnvFile, err)
	}
	return nil
}

// recognizerTokenLimit bounds the text sent to Gemini per document.
const recognizerTokenLimit = 100_000

func newRecognizer(ctx context.Context, apiKey string, logger *slog.Logger) (*gemini.Recognizer, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}

	var opts []gemini.Option
	counter, err := gemini.NewTokenCounter(gemini.DefaultModel)
	if err != nil {
		logger.Warn("token counting unavailable, sending full text", "error", err)
	} else {
		opts = append(opts, gemini.WithTokenLimit(counter, recognizerTokenLimit))
	}

	return gemini.NewRecognizer(client, opts...), nil
}

// newExtractors returns the text extractor for each supported format.
func newExtractors(cli *CLI, fetcher salience.Fetcher, logger *slog.Logger) map[salience.Format]salience.TextExtractor {
	files := salfs.NewReader()

	html := &analyze.HTMLSource{
		Fetcher:   fetcher,
		Files:     files,
		Converter: goquery.NewTextConverter(),
		Logger: func(format string, args ...any) {
			logger.Warn(fmt.Sprintf(format, args...))
		},
	}
	if cli.Rate > 0 || len(cli.HostRate) > 0 {
		opts := []analyze.LimiterOption{analyze.WithBurst(cli.Burst)}
		for host, rps := range cli.HostRate {
			opts = append(opts, analyze.WithHostRate(host, rps))
		}
		html.RateLimiter = analyze.NewDomainLimiter(cli.Rate, opts...)
	}

	switch cli.HTMLMode {
	case htmlModeMarkdown:
		html.Converter = htmltomarkdown.NewConverter()
	case htmlModeTrafilatura:
		extractor := trafilatura.NewExtractor()
		extractor.Language = cli.language()
		html.Extractor = extractor
	case htmlModeReadability:
		html.Extractor = readability.NewExtractor()
	}

	extractors := map[salience.Format]salience.TextExtractor{
		salience.FormatPDF:  pdf.NewExtractor(),
		salience.FormatDOCX: etree.NewDocxExtractor(),
		salience.FormatDjVu: djvu.NewExtractor(),
		salience.FormatHTML: html,
		salience.FormatText: files,
	}
	for format, e := range extractors {
		extractors[format] = salslog.NewLoggingTextExtractor(e, format, logger)
	}
	return extractors
}

// newLogger returns a text logger on w tagged with a per-run ID.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With("run", uuid.NewString()), nil
}

func loadStopWords(dir string) (salience.StopWords, error) {
	if dir == "" {
		return stopwords.Default(), nil
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("stop-word directory %s not found", dir)
	}
	set, err := stopwords.Load(os.DirFS(dir))
	if err != nil {
		return nil, fmt.Errorf("failed to load stop-words from %s: %w", dir, err)
	}
	return set, nil
}

package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/bookfetch"
	"github.com/fwojciec/bookfetch/calibre"
	"github.com/fwojciec/bookfetch/fs"
	"github.com/fwojciec/bookfetch/goquery"
	bookhttp "github.com/fwojciec/bookfetch/http"
	bookslog "github.com/fwojciec/bookfetch/slog"
	"github.com/fwojciec/bookfetch/yaml"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("bookfetch"),
		kong.Description("Download an online book page by page and convert it to an e-book"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{
			"config_file":          yaml.DefaultConfigFile,
			"default_output":       bookfetch.DefaultOutputFile,
			"default_mobi":         bookfetch.DefaultMobiFile,
			"default_max_pages":    strconv.Itoa(bookfetch.DefaultMaxPages),
			"default_strike_limit": strconv.Itoa(bookfetch.DefaultStrikeLimit),
			"default_timeout":      bookfetch.DefaultTimeout.String(),
			"default_marker":       bookfetch.DefaultMarkerSelector,
			"default_converter":    bookfetch.DefaultConverterBin,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	_, err = parser.Parse(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cli)
	if err != nil {
		fmt.Fprintf(stderr, "error: %s\n", bookfetch.ErrorMessage(err))
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		CreateWriter: func(path string) (bookfetch.BookWriter, error) {
			return fs.CreateBookFile(path)
		},
	}

	fetcher := bookhttp.NewFetcher(
		bookhttp.WithTimeout(cfg.Timeout),
		bookhttp.WithUserAgent(cfg.UserAgent),
		bookhttp.WithRateLimit(cfg.RateLimit),
	)
	defer fetcher.Close()

	deps.Fetcher = fetcher
	deps.Extractor = goquery.NewExtractor(goquery.WithMarkerSelector(cfg.MarkerSelector))
	deps.Converter = calibre.NewConverter(
		calibre.WithBin(cfg.ConverterBin),
		calibre.WithOutput(stdout),
	)

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		deps.Fetcher = bookslog.NewLoggingFetcher(deps.Fetcher, logger)
		deps.Extractor = bookslog.NewLoggingExtractor(deps.Extractor, logger)
		deps.Converter = bookslog.NewLoggingConverter(deps.Converter, logger)
	}

	cmd := &FetchCmd{
		Config:      cfg,
		SkipConvert: cli.SkipConvert,
	}

	return cmd.Run(deps)
}

// loadConfig layers the config file and command-line flags over defaults.
func loadConfig(cli *CLI) (bookfetch.Config, error) {
	cfg := bookfetch.DefaultConfig()

	path := yaml.FindConfigFile(cli.Config)
	if path == "" && cli.Config != "" {
		return bookfetch.Config{}, bookfetch.Errorf(bookfetch.EINVALID, "config file %q not found", cli.Config)
	}
	if path != "" {
		fileCfg, err := yaml.LoadConfig(path)
		if err != nil {
			return bookfetch.Config{}, err
		}
		cfg = cfg.Merge(fileCfg)
	}

	cfg = cli.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return bookfetch.Config{}, err
	}
	return cfg, nil
}

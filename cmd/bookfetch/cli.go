package main

import (
	"context"
	"io"
	"time"

	"github.com/fwojciec/bookfetch"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Fetcher   bookfetch.Fetcher
	Extractor bookfetch.Extractor
	Converter bookfetch.Converter

	// CreateWriter opens the output document at path.
	CreateWriter func(path string) (bookfetch.BookWriter, error)
}

// CLI defines the command-line interface structure for Kong.
// Zero-valued flags fall back to the config file, then to defaults.
// Rate is a pointer so that --rate 0 overrides the config file.
type CLI struct {
	Config      string        `short:"c" help:"YAML config file (default: ${config_file} in current or home directory)"`
	URL         string        `short:"u" env:"BOOKFETCH_URL" help:"Page URL template with a {page} placeholder"`
	Output      string        `short:"o" env:"BOOKFETCH_OUTPUT" help:"Output text file (default: ${default_output})"`
	Mobi        string        `short:"m" env:"BOOKFETCH_MOBI" help:"Converted e-book file (default: ${default_mobi})"`
	MaxPages    int           `short:"n" env:"BOOKFETCH_MAX_PAGES" help:"Maximum number of pages to fetch (default: ${default_max_pages})"`
	StrikeLimit int           `env:"BOOKFETCH_STRIKE_LIMIT" help:"Consecutive empty or repeated pages that end the book (default: ${default_strike_limit})"`
	Timeout     time.Duration `short:"t" env:"BOOKFETCH_TIMEOUT" help:"Fetch timeout per page (default: ${default_timeout})"`
	Rate        *float64      `short:"r" env:"BOOKFETCH_RATE" help:"Maximum requests per second, 0 for no limit"`
	UserAgent   string        `env:"BOOKFETCH_USER_AGENT" help:"User-Agent header for page requests"`
	Marker      string        `env:"BOOKFETCH_MARKER" help:"CSS selector for page marker elements (default: ${default_marker})"`
	Converter   string        `env:"BOOKFETCH_CONVERTER" help:"E-book converter executable (default: ${default_converter})"`
	SkipConvert bool          `help:"Only assemble the text file"`
	Verbose     bool          `short:"v" help:"Log fetch, extract and convert details to stderr"`
}

// apply layers the settings given on the command line over cfg.
func (c *CLI) apply(cfg bookfetch.Config) bookfetch.Config {
	cfg = cfg.Merge(bookfetch.Config{
		URL:            bookfetch.PageURL(c.URL),
		OutputFile:     c.Output,
		MobiFile:       c.Mobi,
		MaxPages:       c.MaxPages,
		StrikeLimit:    c.StrikeLimit,
		Timeout:        c.Timeout,
		UserAgent:      c.UserAgent,
		MarkerSelector: c.Marker,
		ConverterBin:   c.Converter,
	})
	if c.Rate != nil {
		cfg.RateLimit = *c.Rate
	}
	return cfg
}

// FetchCmd assembles the book and converts it.
type FetchCmd struct {
	Config      bookfetch.Config
	SkipConvert bool
}

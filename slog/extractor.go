package slog

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/bookfetch"
)

// Ensure LoggingExtractor implements bookfetch.Extractor.
var _ bookfetch.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging. Besides the
// paragraph count it logs a digest of the whole-page text, so repeated
// pages are easy to spot in the log.
type LoggingExtractor struct {
	next   bookfetch.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next bookfetch.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the operation.
func (e *LoggingExtractor) Extract(html string, page int) (block *bookfetch.ContentBlock, err error) {
	defer func(begin time.Time) {
		attrs := []any{"page", page}
		if block != nil {
			attrs = append(attrs,
				"paragraphs", len(block.Paragraphs),
				"text_hash", TextHash(block.Text),
			)
		}
		attrs = append(attrs, "duration", time.Since(begin), "err", err)
		e.logger.Info("extract", attrs...)
	}(time.Now())
	return e.next.Extract(html, page)
}

// TextHash returns the xxhash digest of text in hex.
func TextHash(text string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(text))
}

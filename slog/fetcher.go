// Package slog provides logging decorators for bookfetch services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookfetch"
)

// Ensure LoggingFetcher implements bookfetch.Fetcher.
var _ bookfetch.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with debug logging.
type LoggingFetcher struct {
	next   bookfetch.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next bookfetch.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher and logs the operation. A missing
// page is an expected stop signal and is logged at info level with its
// code and message; any other failure is logged at error level.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (html string, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"url", url,
			"bytes", len(html),
			"duration", time.Since(begin),
		}
		switch {
		case err == nil:
			f.logger.Info("fetch", attrs...)
		case bookfetch.ErrorCode(err) == bookfetch.ENOTFOUND:
			attrs = append(attrs, "code", bookfetch.ENOTFOUND, "message", bookfetch.ErrorMessage(err))
			f.logger.Info("fetch", attrs...)
		default:
			attrs = append(attrs, "err", err)
			f.logger.Error("fetch", attrs...)
		}
	}(time.Now())
	return f.next.Fetch(ctx, url)
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}

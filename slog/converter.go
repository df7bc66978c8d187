package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/bookfetch"
)

// Ensure LoggingConverter implements bookfetch.Converter.
var _ bookfetch.Converter = (*LoggingConverter)(nil)

// LoggingConverter wraps a Converter with logging.
type LoggingConverter struct {
	next   bookfetch.Converter
	logger *slog.Logger
}

// NewLoggingConverter creates a new LoggingConverter.
func NewLoggingConverter(next bookfetch.Converter, logger *slog.Logger) *LoggingConverter {
	return &LoggingConverter{next: next, logger: logger}
}

// Convert delegates to the wrapped converter and logs the operation.
// Failures are logged at error level.
func (c *LoggingConverter) Convert(ctx context.Context, sourcePath, destPath string) (err error) {
	defer func(begin time.Time) {
		level := slog.LevelInfo
		if err != nil {
			level = slog.LevelError
		}
		c.logger.Log(ctx, level, "convert",
			"src", sourcePath,
			"dst", destPath,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Convert(ctx, sourcePath, destPath)
}

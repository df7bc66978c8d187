package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/bookfetch"
	"github.com/fwojciec/bookfetch/mock"
	bookslog "github.com/fwojciec/bookfetch/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pageURL = "http://books.test/read.php?book=38&page=12"

func newLoggingFetcher(buf *bytes.Buffer, fetch func(ctx context.Context, url string) (string, error)) *bookslog.LoggingFetcher {
	logger := slog.New(slog.NewTextHandler(buf, nil))
	return bookslog.NewLoggingFetcher(&mock.Fetcher{FetchFn: fetch}, logger)
}

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs page size for a fetched page", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fetcher := newLoggingFetcher(&buf, func(context.Context, string) (string, error) {
			return `<img src="p.gif">12<p>Text</p>`, nil
		})

		html, err := fetcher.Fetch(context.Background(), pageURL)

		require.NoError(t, err)
		assert.Equal(t, `<img src="p.gif">12<p>Text</p>`, html)
		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, `url="`+pageURL+`"`)
		assert.Contains(t, output, "bytes=30")
		assert.Contains(t, output, "duration=")
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs missing page as info with code and message", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fetcher := newLoggingFetcher(&buf, func(_ context.Context, url string) (string, error) {
			return "", bookfetch.Errorf(bookfetch.ENOTFOUND, "HTTP 404 for %s", url)
		})

		_, err := fetcher.Fetch(context.Background(), pageURL)

		// The error is passed through unchanged so the assembler can stop.
		require.Error(t, err)
		assert.Equal(t, bookfetch.ENOTFOUND, bookfetch.ErrorCode(err))

		output := buf.String()
		assert.Contains(t, output, "level=INFO")
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, "code=not_found")
		assert.Contains(t, output, `message="HTTP 404 for `+pageURL+`"`)
		assert.NotContains(t, output, "err=")
	})

	t.Run("logs transport failure as error", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		fetcher := newLoggingFetcher(&buf, func(context.Context, string) (string, error) {
			return "", errors.New("dial tcp: connection refused")
		})

		_, err := fetcher.Fetch(context.Background(), pageURL)

		require.Error(t, err)
		output := buf.String()
		assert.Contains(t, output, "level=ERROR")
		assert.Contains(t, output, "bytes=0")
		assert.Contains(t, output, `err="dial tcp: connection refused"`)
		assert.NotContains(t, output, "code=not_found")
	})
}

func TestLoggingFetcher_Close(t *testing.T) {
	t.Parallel()

	var closed bool
	fetcher := bookslog.NewLoggingFetcher(&mock.Fetcher{
		CloseFn: func() error {
			closed = true
			return nil
		},
	}, slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)))

	require.NoError(t, fetcher.Close())
	assert.True(t, closed)
}
